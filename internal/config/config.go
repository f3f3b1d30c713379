package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	CurvePath           string
	DefaultMaxVolumeMCM float64
	SimulationStartYear int

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Baseline scenario recomputed by the risk monitor on each cycle.
	MonitorInterval           time.Duration
	MonitorReservoirID        string
	MonitorYears              int
	MonitorRainfallMultiplier float64
	MonitorTempIncrease       float64
	MonitorStableMode         bool
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	monitorInterval, err := parseDuration("MONITOR_INTERVAL", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	defaultMax, err := parseFloat("DEFAULT_MAX_VOLUME_MCM", 100.0)
	if err != nil {
		return nil, err
	}

	startYear, err := parseInt("SIMULATION_START_YEAR", 2024)
	if err != nil {
		return nil, err
	}

	monitorYears, err := parseInt("MONITOR_YEARS", 1)
	if err != nil {
		return nil, err
	}

	monitorRainMult, err := parseFloat("MONITOR_RAINFALL_MULTIPLIER", 1.0)
	if err != nil {
		return nil, err
	}

	monitorTemp, err := parseFloat("MONITOR_TEMP_INCREASE", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CurvePath:           envOrDefault("CURVE_PATH", "data_cache/volume_curve.json"),
		DefaultMaxVolumeMCM: defaultMax,
		SimulationStartYear: startYear,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		MonitorInterval:           monitorInterval,
		MonitorReservoirID:        envOrDefault("MONITOR_RESERVOIR_ID", "res-chembarambakkam"),
		MonitorYears:              monitorYears,
		MonitorRainfallMultiplier: monitorRainMult,
		MonitorTempIncrease:       monitorTemp,
		MonitorStableMode:         os.Getenv("MONITOR_STABLE_MODE") == "true",
	}

	if cfg.CurvePath == "" {
		return nil, errors.New("CURVE_PATH is required")
	}
	if cfg.DefaultMaxVolumeMCM <= 0 {
		return nil, errors.New("DEFAULT_MAX_VOLUME_MCM must be positive")
	}
	if cfg.MonitorYears < 1 {
		return nil, errors.New("MONITOR_YEARS must be at least 1")
	}
	if cfg.MonitorRainfallMultiplier <= 0 {
		return nil, errors.New("MONITOR_RAINFALL_MULTIPLIER must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return f, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
