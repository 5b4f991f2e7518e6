// Package agent collects host metrics and pushes them to a SysPulse server,
// replacing the legacy Python client.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"syspulse/internal/shared"
)

type Agent struct {
	Cfg    *shared.AgentConfig
	Client *http.Client
}

func New(configPath string) (*Agent, error) {
	cfg, err := shared.LoadAgentConfig(configPath)
	if err != nil {
		return nil, err
	}
	return &Agent{
		Cfg:    cfg,
		Client: &http.Client{Timeout: 20 * time.Second},
	}, nil
}

// CollectPayload gathers one sample set. CPU and memory must collect;
// battery and network are attached best-effort.
func (a *Agent) CollectPayload() (*shared.MetricsPayload, error) {
	cpu, err := CollectCPU()
	if err != nil {
		return nil, fmt.Errorf("collect cpu: %w", err)
	}
	mem, err := CollectMemory()
	if err != nil {
		return nil, fmt.Errorf("collect memory: %w", err)
	}

	payload := &shared.MetricsPayload{CPU: cpu, Memory: mem}
	if a.Cfg.ProfileID > 0 {
		id := a.Cfg.ProfileID
		payload.ProfileID = &id
	}

	payload.Battery = CollectBattery()

	if net, err := CollectNetwork(); err == nil {
		payload.Network = net
	} else {
		log.Printf("network collection skipped: %v", err)
	}

	return payload, nil
}

// Push sends one payload to the server's ingestion endpoint.
func (a *Agent) Push(ctx context.Context, payload *shared.MetricsPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := strings.TrimRight(a.Cfg.ServerURL, "/") + "/api/metrics"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server rejected metrics: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}

// Run pushes a sample set on the configured cadence until ctx is done.
// Collection or push failures are logged and the loop keeps going.
func (a *Agent) Run(ctx context.Context) error {
	interval := time.Duration(a.Cfg.IntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("sp-agent pushing to %s every %s", a.Cfg.ServerURL, interval)

	for {
		payload, err := a.CollectPayload()
		if err != nil {
			log.Printf("collect error: %v", err)
		} else if err := a.Push(ctx, payload); err != nil {
			log.Printf("push error: %v", err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
