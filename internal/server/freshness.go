package server

import (
	"errors"
	"time"

	"syspulse/internal/shared"
)

const (
	// FreshnessWindow is the maximum age of the latest CPU sample for the
	// real-time endpoint to serve stored data.
	FreshnessWindow = 10 * time.Second

	// HistoryMinimum is the row count per kind below which stored history is
	// considered insufficient for charting.
	HistoryMinimum = 5

	DefaultHistoryLimit = 30
)

var (
	ErrProfileNotFound = errors.New("profile not found")

	// ErrStaleMetrics means no sample of every required kind exists, or the
	// latest CPU sample fell outside the freshness window.
	ErrStaleMetrics = errors.New("no recent metrics available")
)

// Policy decides whether stored samples are served or synthetic data is
// substituted. It owns no state beyond the store handle; a zero Now falls
// back to the wall clock.
type Policy struct {
	Store Store
	Now   func() time.Time
}

func (p *Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// LiveSnapshot returns the four latest rows merged into one snapshot. It
// fails with ErrStaleMetrics unless a latest row exists for every kind and
// the CPU row is within the freshness window, and with ErrProfileNotFound
// when the profile itself is missing.
func (p *Policy) LiveSnapshot(profileID int64) (*shared.Snapshot, error) {
	profile, err := p.Store.GetProfile(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	cpu, err := p.Store.LatestCPU(profileID)
	if err != nil {
		return nil, err
	}
	mem, err := p.Store.LatestMemory(profileID)
	if err != nil {
		return nil, err
	}
	bat, err := p.Store.LatestBattery(profileID)
	if err != nil {
		return nil, err
	}
	net, err := p.Store.LatestNetwork(profileID)
	if err != nil {
		return nil, err
	}

	if cpu == nil || mem == nil || bat == nil || net == nil {
		return nil, ErrStaleMetrics
	}
	if p.now().UnixMilli()-cpu.Timestamp > FreshnessWindow.Milliseconds() {
		return nil, ErrStaleMetrics
	}

	snap := shared.Snapshot{
		CPU:     cpu.Info(),
		Memory:  mem.Info(),
		Battery: bat.Info(),
		Network: net.Info(),
	}
	return &snap, nil
}

// HistorySource tells tests and callers apart the real-data path from the
// synthetic one; the external payload shape is identical either way.
type HistorySource string

const (
	HistoryFresh    HistorySource = "fresh"
	HistoryFallback HistorySource = "fallback"
)

type HistoryResult struct {
	Data   shared.HistoricalData
	Source HistorySource
}

// History returns chart-ready series for CPU, memory and network. Stored rows
// are used only when all three kinds have at least HistoryMinimum rows and
// every row transforms cleanly; otherwise the whole payload is synthetic.
// History never fails: any store or parse error degrades to synthetic data.
func (p *Policy) History(profileID int64, limit int) HistoryResult {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	cpuRows, err := p.Store.ListCPU(profileID, limit)
	if err != nil {
		return fallbackHistory()
	}
	memRows, err := p.Store.ListMemory(profileID, limit)
	if err != nil {
		return fallbackHistory()
	}
	netRows, err := p.Store.ListNetwork(profileID, limit)
	if err != nil {
		return fallbackHistory()
	}

	if len(cpuRows) < HistoryMinimum || len(memRows) < HistoryMinimum || len(netRows) < HistoryMinimum {
		return fallbackHistory()
	}

	data, err := buildHistory(cpuRows, memRows, netRows)
	if err != nil {
		return fallbackHistory()
	}
	return HistoryResult{Data: data, Source: HistoryFresh}
}

func fallbackHistory() HistoryResult {
	return HistoryResult{Data: SyntheticHistory(), Source: HistoryFallback}
}
