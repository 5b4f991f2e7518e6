package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"syspulse/internal/shared"
)

var upgrader = websocket.Upgrader{
	// The dashboard is served from a separate dev origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveMetrics streams snapshot payloads over a websocket on a fixed cadence.
// When no fresh stored data exists a synthetic snapshot is sent instead, so
// the stream never starves the dashboard.
func (a *API) LiveMetrics(w http.ResponseWriter, r *http.Request) {
	profileID := a.profileID(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(a.Cfg.LivePushInterval())
	defer ticker.Stop()

	for {
		var payload shared.Snapshot
		if snap, err := a.Policy.LiveSnapshot(profileID); err == nil {
			payload = *snap
		} else {
			payload = SyntheticSnapshot()
		}

		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(payload); err != nil {
			return
		}

		select {
		case <-ticker.C:
		case <-r.Context().Done():
			return
		}
	}
}
