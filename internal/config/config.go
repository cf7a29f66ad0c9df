// Package config loads the plugin configuration from environment
// variables. Munin passes per-plugin settings through the environment,
// so the env block in the munin plugin-conf is the single source of
// configuration for one invocation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jakeobsen/monitoring-plugins/internal/models"
)

// Config holds everything one invocation needs. It is built once in
// main and passed down read-only; the plugin is single-shot so nothing
// here is ever mutated after Load.
type Config struct {
	Sensor struct {
		// Host is the TemPageR address as host or host:port.
		// Port 80 is assumed when none is given.
		Host string
		// Timeout bounds the whole dial+read cycle.
		Timeout time.Duration
	}

	Graph struct {
		Title    string
		Warning  float64
		Critical float64
		Scale    models.Scale
	}

	Log struct {
		Level  string
		Format string
		// File is an optional log destination, e.g.
		// /var/log/munin/tempager.log. Empty means stderr.
		// Rotation is left to logrotate.
		File string
	}
}

// Load reads the configuration from the environment, applying defaults
// matching the original plugin deployment.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Sensor.Host = getEnv("TEMPAGER_HOST", "")
	if cfg.Sensor.Host == "" {
		return nil, fmt.Errorf("TEMPAGER_HOST is required")
	}

	timeoutStr := getEnv("TEMPAGER_TIMEOUT", "10")
	if v, err := strconv.Atoi(timeoutStr); err == nil && v > 0 {
		cfg.Sensor.Timeout = time.Duration(v) * time.Second
	} else {
		cfg.Sensor.Timeout = 10 * time.Second
	}

	cfg.Graph.Title = getEnv("GRAPH_TITLE", "Server Room Temperatures")

	var err error
	cfg.Graph.Warning, err = getEnvFloat("TEMP_WARNING", 28)
	if err != nil {
		return nil, err
	}
	cfg.Graph.Critical, err = getEnvFloat("TEMP_CRITICAL", 30)
	if err != nil {
		return nil, err
	}
	cfg.Graph.Scale = models.ParseScale(getEnv("TEMP_SCALE", "celsius"))

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")
	cfg.Log.File = getEnv("LOG_FILE", "")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return v, nil
}
