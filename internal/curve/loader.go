package curve

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/ELANGKATHIR11/Hydro-AI/internal/domain"
)

// LoadFile builds an Engine from a persisted curve table, the JSON array of
// {elevation_m, area_sqkm, volume_mcm} triples written by cmd/gencurve.
//
// A missing, unreadable, or undersized table is not fatal: the problem is
// logged and the returned engine runs in approximation mode, so callers
// always get a usable engine.
func LoadFile(path string, logger *slog.Logger, opts ...Option) *Engine {
	samples, err := ReadSamples(path)
	if err != nil {
		if logger != nil {
			logger.Warn("volume curve load failed, degrading to approximation mode",
				"path", path, "error", err)
		}
		return New(nil, opts...)
	}

	e := New(samples, opts...)
	e.LogStatus(logger)
	return e
}

// ReadSamples parses a curve table file into samples.
func ReadSamples(path string) ([]domain.CurveSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curve table: %w", err)
	}

	var samples []domain.CurveSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse curve table: %w", err)
	}
	if len(samples) < 2 {
		return nil, fmt.Errorf("curve table has %d samples, need at least 2", len(samples))
	}
	return samples, nil
}
