package server

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds server settings. Defaults suit local development; a YAML file
// overrides the defaults and SP_* environment variables override the file.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`
	// DefaultProfileID is used by endpoints when no profileId is supplied.
	DefaultProfileID int64 `yaml:"default_profile_id"`
	// DemoUsername owns the default profile created by /api/initialize.
	DemoUsername string `yaml:"demo_username"`
	// LivePushSeconds is the cadence of the websocket snapshot stream.
	LivePushSeconds int `yaml:"live_push_seconds"`
}

func DefaultConfig() Config {
	return Config{
		Addr:             ":5000",
		DBPath:           "./data/syspulse.db",
		DefaultProfileID: 1,
		DemoUsername:     "demo",
		LivePushSeconds:  3,
	}
}

// LoadConfig reads an optional YAML file at path (empty path skips the file)
// and applies environment overrides on top.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("SP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SP_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SP_DEFAULT_PROFILE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.DefaultProfileID = n
		}
	}

	if cfg.DefaultProfileID <= 0 {
		cfg.DefaultProfileID = 1
	}
	if cfg.DemoUsername == "" {
		cfg.DemoUsername = "demo"
	}
	if cfg.LivePushSeconds <= 0 {
		cfg.LivePushSeconds = 3
	}
	return cfg, nil
}

func (c Config) LivePushInterval() time.Duration {
	return time.Duration(c.LivePushSeconds) * time.Second
}
