package shared

import (
	"encoding/json"
	"os"
)

type AgentConfig struct {
	ServerURL       string `json:"server_url"`
	ProfileID       int64  `json:"profile_id"`
	IntervalSeconds int    `json:"interval_seconds"`
}

func LoadAgentConfig(path string) (*AgentConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c AgentConfig
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if c.ServerURL == "" {
		c.ServerURL = "http://localhost:5000"
	}
	if c.IntervalSeconds <= 0 {
		c.IntervalSeconds = 3
	}
	return &c, nil
}

func SaveAgentConfig(path string, c *AgentConfig) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}
