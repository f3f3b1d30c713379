package curve_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ELANGKATHIR11/Hydro-AI/internal/curve"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCurveFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "volume_curve.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		path := writeCurveFile(t, `[
			{"elevation_m": 0, "area_sqkm": 1, "volume_mcm": 0},
			{"elevation_m": 10, "area_sqkm": 5, "volume_mcm": 50},
			{"elevation_m": 20, "area_sqkm": 10, "volume_mcm": 100}
		]`)

		e := curve.LoadFile(path, discardLogger())

		require.True(t, e.Ready())
		assert.InDelta(t, 100.0, e.MaxVolume(), 1e-9)
		assert.InDelta(t, 15.0, e.Level(75), 1e-9)
	})

	t.Run("missing file degrades to approximation mode", func(t *testing.T) {
		e := curve.LoadFile(filepath.Join(t.TempDir(), "nope.json"), discardLogger())

		require.False(t, e.Ready())
		assert.InDelta(t, 100.0, e.MaxVolume(), 1e-9)
		assert.InDelta(t, 10.0, e.Level(50), 1e-9)
	})

	t.Run("malformed JSON degrades to approximation mode", func(t *testing.T) {
		path := writeCurveFile(t, `{not json`)

		e := curve.LoadFile(path, discardLogger())

		require.False(t, e.Ready())
	})

	t.Run("undersized table degrades to approximation mode", func(t *testing.T) {
		path := writeCurveFile(t, `[{"elevation_m": 10, "area_sqkm": 5, "volume_mcm": 50}]`)

		e := curve.LoadFile(path, discardLogger())

		require.False(t, e.Ready())
	})

	t.Run("nil logger is tolerated", func(t *testing.T) {
		e := curve.LoadFile(filepath.Join(t.TempDir(), "nope.json"), nil)

		require.False(t, e.Ready())
	})
}

func TestReadSamples(t *testing.T) {
	t.Run("parses all fields", func(t *testing.T) {
		path := writeCurveFile(t, `[
			{"elevation_m": 12.5, "area_sqkm": 3.2, "volume_mcm": 41.7},
			{"elevation_m": 14, "area_sqkm": 4.1, "volume_mcm": 55.3}
		]`)

		samples, err := curve.ReadSamples(path)

		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.InDelta(t, 12.5, samples[0].ElevationM, 1e-9)
		assert.InDelta(t, 3.2, samples[0].AreaSqKm, 1e-9)
		assert.InDelta(t, 41.7, samples[0].VolumeMCM, 1e-9)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeCurveFile(t, `{not json`)

		_, err := curve.ReadSamples(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse curve table")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := curve.ReadSamples(filepath.Join(t.TempDir(), "nope.json"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read curve table")
	})
}
