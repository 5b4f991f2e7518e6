// Package server implements the SysPulse HTTP API surface.
//
// Owns:
//   - HTTP routing, handlers, and request/response contracts
//   - The freshness policy: serve stored samples only when recent enough,
//     substitute synthetic data for history reads
//   - API-level invariants and behavior
//
// Does not own:
//   - Storage internals (Store implementations)
//   - Agent-side metric collection
//
// Invariants:
//   - JSON responses are consistent via writeJSON
//   - Sample tables are append-only; the latest row is the first of the
//     timestamp-descending ordering
//   - /api/metrics/history always answers 200 with a well-formed payload
package server
