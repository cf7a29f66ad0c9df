package config

import (
	"os"
	"testing"
	"time"

	"github.com/jakeobsen/monitoring-plugins/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("TEMPAGER_HOST", "10.0.0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Sensor.Host)
	assert.Equal(t, 10*time.Second, cfg.Sensor.Timeout)
	assert.Equal(t, "Server Room Temperatures", cfg.Graph.Title)
	assert.Equal(t, 28.0, cfg.Graph.Warning)
	assert.Equal(t, 30.0, cfg.Graph.Critical)
	assert.Equal(t, models.ScaleCelsius, cfg.Graph.Scale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Clearenv()
	os.Setenv("TEMPAGER_HOST", "sensor.example.com:8080")
	os.Setenv("TEMPAGER_TIMEOUT", "3")
	os.Setenv("GRAPH_TITLE", "Lab Temperatures")
	os.Setenv("TEMP_WARNING", "26.5")
	os.Setenv("TEMP_CRITICAL", "29")
	os.Setenv("TEMP_SCALE", "fahrenheit")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_FILE", "/var/log/munin/tempager.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sensor.example.com:8080", cfg.Sensor.Host)
	assert.Equal(t, 3*time.Second, cfg.Sensor.Timeout)
	assert.Equal(t, "Lab Temperatures", cfg.Graph.Title)
	assert.Equal(t, 26.5, cfg.Graph.Warning)
	assert.Equal(t, 29.0, cfg.Graph.Critical)
	assert.Equal(t, models.ScaleFahrenheit, cfg.Graph.Scale)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/var/log/munin/tempager.log", cfg.Log.File)
}

func TestLoad_MissingHost(t *testing.T) {
	os.Clearenv()

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	os.Clearenv()
	os.Setenv("TEMPAGER_HOST", "10.0.0.5")
	os.Setenv("TEMP_WARNING", "hot")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("TEMPAGER_HOST", "10.0.0.5")
	os.Setenv("TEMPAGER_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Sensor.Timeout)
}
