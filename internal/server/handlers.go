package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"syspulse/internal/shared"
)

type API struct {
	Store  Store
	Policy *Policy
	Cfg    Config

	// DB is only used by the health probe; all data access goes through Store.
	DB *sql.DB
}

func NewAPI(store Store, cfg Config) *API {
	return &API{
		Store:  store,
		Policy: &Policy{Store: store},
		Cfg:    cfg,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, 2<<20))
}

// profileID resolves the profile from the query string, falling back to the
// configured default when omitted or malformed.
func (a *API) profileID(r *http.Request) int64 {
	if v := r.URL.Query().Get("profileId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			return id
		}
	}
	return a.Cfg.DefaultProfileID
}

// Initialize ensures the demo user and its default profile exist and reports
// the profile ID. Unguarded: two concurrent first-time calls can race and
// both create rows.
func (a *API) Initialize(w http.ResponseWriter, r *http.Request) {
	user, err := a.Store.GetUserByUsername(a.Cfg.DemoUsername)
	if err != nil {
		writeJSON(w, 500, shared.InitializeResponse{Success: false, Message: "db error"})
		return
	}
	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Cfg.DemoUsername), bcrypt.DefaultCost)
		if err != nil {
			writeJSON(w, 500, shared.InitializeResponse{Success: false, Message: "failed to create user"})
			return
		}
		user, err = a.Store.CreateUser(a.Cfg.DemoUsername, string(hash))
		if err != nil {
			writeJSON(w, 500, shared.InitializeResponse{Success: false, Message: "failed to create user"})
			return
		}
	}

	profiles, err := a.Store.GetProfilesByUser(user.ID)
	if err != nil {
		writeJSON(w, 500, shared.InitializeResponse{Success: false, Message: "db error"})
		return
	}
	if len(profiles) > 0 {
		writeJSON(w, 200, shared.InitializeResponse{
			Success:   true,
			Message:   "profile already exists",
			ProfileID: profiles[0].ID,
		})
		return
	}

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}
	profile, err := a.Store.CreateProfile(SystemProfile{
		UserID:    user.ID,
		Name:      "Default System",
		Hostname:  hostname,
		OSName:    runtime.GOOS,
		OSVersion: "unknown",
		OSArch:    runtime.GOARCH,
	})
	if err != nil {
		writeJSON(w, 500, shared.InitializeResponse{Success: false, Message: "failed to create profile"})
		return
	}

	log.Printf("initialized default profile id=%d for user %s", profile.ID, user.Username)
	writeJSON(w, 200, shared.InitializeResponse{
		Success:   true,
		Message:   "profile created",
		ProfileID: profile.ID,
	})
}

// GetMetrics serves the real-time snapshot or a structured staleness error.
func (a *API) GetMetrics(w http.ResponseWriter, r *http.Request) {
	profileID := a.profileID(r)

	snap, err := a.Policy.LiveSnapshot(profileID)
	switch {
	case err == nil:
		writeJSON(w, 200, snap)
	case errors.Is(err, ErrProfileNotFound):
		writeJSON(w, 404, map[string]any{
			"error":   "profile_not_found",
			"message": "profile " + strconv.FormatInt(profileID, 10) + " does not exist; call /api/initialize first",
		})
	case errors.Is(err, ErrStaleMetrics):
		staleSnapshotMisses.Inc()
		writeJSON(w, 404, map[string]any{
			"error":   "no_recent_metrics",
			"message": "no recent metrics available; run the sp-agent to push live data",
		})
	default:
		log.Printf("metrics read failed: %v", err)
		writeJSON(w, 500, map[string]any{"error": "db error"})
	}
}

// PostMetrics validates and persists an agent payload: one append per
// supplied kind, no update-in-place.
func (a *API) PostMetrics(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeJSON(w, 400, map[string]any{"error": "bad body"})
		return
	}

	var payload shared.MetricsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, 400, map[string]any{"error": "bad json"})
		return
	}

	if msg := validatePayload(&payload); msg != "" {
		writeJSON(w, 400, map[string]any{"error": msg})
		return
	}

	profileID := a.Cfg.DefaultProfileID
	if payload.ProfileID != nil && *payload.ProfileID > 0 {
		profileID = *payload.ProfileID
	}

	if err := a.Store.InsertCPU(CPUSample{
		ProfileID: profileID,
		Usage:     *payload.CPU.Usage,
		Cores:     *payload.CPU.Cores,
		Threads:   *payload.CPU.Threads,
		Speed:     *payload.CPU.Speed,
		Model:     payload.CPU.Model,
	}); err != nil {
		log.Printf("insert cpu sample: %v", err)
		writeJSON(w, 500, map[string]any{"error": "failed to persist cpu metrics"})
		return
	}
	samplesIngested.WithLabelValues("cpu").Inc()

	if err := a.Store.InsertMemory(MemorySample{
		ProfileID:      profileID,
		UsedPercentage: *payload.Memory.UsedPercentage,
		Used:           *payload.Memory.Used,
		Total:          *payload.Memory.Total,
	}); err != nil {
		log.Printf("insert memory sample: %v", err)
		writeJSON(w, 500, map[string]any{"error": "failed to persist memory metrics"})
		return
	}
	samplesIngested.WithLabelValues("memory").Inc()

	if payload.Battery != nil {
		if err := a.Store.InsertBattery(BatterySample{
			ProfileID:     profileID,
			Level:         payload.Battery.Level,
			Status:        payload.Battery.Status,
			TimeRemaining: payload.Battery.TimeRemaining,
		}); err != nil {
			log.Printf("insert battery sample: %v", err)
			writeJSON(w, 500, map[string]any{"error": "failed to persist battery metrics"})
			return
		}
		samplesIngested.WithLabelValues("battery").Inc()
	}

	if payload.Network != nil {
		if err := a.Store.InsertNetwork(NetworkSample{
			ProfileID:  profileID,
			Status:     payload.Network.Status,
			Download:   payload.Network.Download,
			Upload:     payload.Network.Upload,
			IP:         payload.Network.IP,
			Interfaces: payload.Network.Interfaces,
		}); err != nil {
			log.Printf("insert network sample: %v", err)
			writeJSON(w, 500, map[string]any{"error": "failed to persist network metrics"})
			return
		}
		samplesIngested.WithLabelValues("network").Inc()
	}

	writeJSON(w, 200, shared.IngestResponse{Success: true, Message: "metrics recorded"})
}

// validatePayload checks required sub-objects and fields with explicit nil
// checks, so legitimate zero values (0% usage) pass.
func validatePayload(p *shared.MetricsPayload) string {
	if p.CPU == nil {
		return "cpu metrics are required"
	}
	if p.Memory == nil {
		return "memory metrics are required"
	}
	switch {
	case p.CPU.Usage == nil:
		return "cpu.usage is required"
	case p.CPU.Cores == nil:
		return "cpu.cores is required"
	case p.CPU.Threads == nil:
		return "cpu.threads is required"
	case p.CPU.Speed == nil:
		return "cpu.speed is required"
	}
	switch {
	case p.Memory.UsedPercentage == nil:
		return "memory.usedPercentage is required"
	case p.Memory.Used == nil:
		return "memory.used is required"
	case p.Memory.Total == nil:
		return "memory.total is required"
	}
	return ""
}

// GetHistory always answers 200 with well-formed series; insufficient or
// unreadable stored data degrades to synthetic series.
func (a *API) GetHistory(w http.ResponseWriter, r *http.Request) {
	res := a.Policy.History(a.profileID(r), DefaultHistoryLimit)
	if res.Source == HistoryFallback {
		historyFallbacks.Inc()
	}
	writeJSON(w, 200, res.Data)
}

// GetProcesses serves the latest stored process list, generating and
// persisting a mock list when none exists yet.
func (a *API) GetProcesses(w http.ResponseWriter, r *http.Request) {
	profileID := a.profileID(r)

	sample, err := a.Store.LatestProcesses(profileID)
	if err != nil {
		log.Printf("process read failed: %v", err)
		writeJSON(w, 500, map[string]any{"message": "failed to load processes"})
		return
	}
	if sample != nil {
		writeJSON(w, 200, map[string]any{"processes": sample.Processes})
		return
	}

	procs := SyntheticProcesses()
	if err := a.Store.InsertProcesses(ProcessSample{ProfileID: profileID, Processes: procs}); err != nil {
		log.Printf("persist mock processes failed: %v", err)
		writeJSON(w, 500, map[string]any{"message": "failed to store processes"})
		return
	}
	writeJSON(w, 200, map[string]any{"processes": procs})
}

// GetSystem serves the composite profile/hardware/network/storage view.
func (a *API) GetSystem(w http.ResponseWriter, r *http.Request) {
	profileID := a.profileID(r)

	profile, err := a.Store.GetProfile(profileID)
	if err != nil {
		log.Printf("profile read failed: %v", err)
		writeJSON(w, 500, map[string]any{"message": "db error"})
		return
	}
	if profile == nil {
		writeJSON(w, 404, map[string]any{"message": "profile not found"})
		return
	}

	details, err := BuildSystemDetails(a.Store, profile)
	if err != nil {
		log.Printf("system details failed: %v", err)
		writeJSON(w, 500, map[string]any{"message": "db error"})
		return
	}
	writeJSON(w, 200, details)
}

// Health is a liveness probe; it pings the database when a handle is set.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if a.DB != nil {
		if err := a.DB.Ping(); err != nil {
			writeJSON(w, 500, map[string]any{"status": "degraded", "error": err.Error()})
			return
		}
	}
	writeJSON(w, 200, map[string]any{"status": "ok"})
}
