// Package curve derives water level, surface area, and storage volume from
// bathymetric survey samples by piecewise-linear interpolation.
//
// An Engine is immutable after construction and safe for unsynchronized
// concurrent reads. When fewer than two distinct elevations are available
// the engine stays in approximation mode: lookups degrade to fixed
// proportional formulas scaled by the default capacity instead of failing.
package curve

import (
	"log/slog"
	"math"
	"sort"

	"github.com/ELANGKATHIR11/Hydro-AI/internal/domain"
)

// DefaultMaxVolumeMCM is the assumed full-reservoir storage when no curve
// is loaded. It approximates the Chembarambakkam tank capacity; override
// it per reservoir with WithDefaultMaxVolume.
const DefaultMaxVolumeMCM = 100.0

// fallbackMaxLevelM and fallbackMaxAreaSqKm anchor the proportional
// approximations used in approximation mode: a full reservoir is assumed
// to stand 20 m deep with a 25 km² waterspread.
const (
	fallbackMaxLevelM   = 20.0
	fallbackMaxAreaSqKm = 25.0
)

// Engine converts between elevation, storage volume, and surface area.
type Engine struct {
	volumeToLevel interpolator
	levelToVolume interpolator
	levelToArea   interpolator
	maxVolume     float64
	defaultMax    float64
	ready         bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithDefaultMaxVolume overrides the capacity assumed when no usable curve
// is loaded.
func WithDefaultMaxVolume(mcm float64) Option {
	return func(e *Engine) {
		if mcm > 0 {
			e.defaultMax = mcm
		}
	}
}

// New builds an Engine from survey samples. The samples may arrive in any
// order; they are sorted by elevation ascending. Fewer than two distinct
// elevations leaves the engine in approximation mode.
func New(samples []domain.CurveSample, opts ...Option) *Engine {
	e := &Engine{defaultMax: DefaultMaxVolumeMCM}
	for _, opt := range opts {
		opt(e)
	}

	sorted := make([]domain.CurveSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ElevationM < sorted[j].ElevationM })

	elevations := make([]float64, 0, len(sorted))
	areas := make([]float64, 0, len(sorted))
	volumes := make([]float64, 0, len(sorted))
	for _, s := range sorted {
		// Collapse repeated elevation levels; the survey occasionally
		// carries duplicate contour rows.
		if len(elevations) > 0 && s.ElevationM == elevations[len(elevations)-1] {
			continue
		}
		elevations = append(elevations, s.ElevationM)
		areas = append(areas, s.AreaSqKm)
		volumes = append(volumes, s.VolumeMCM)
	}

	if len(elevations) < 2 {
		return e
	}

	e.volumeToLevel = interpolator{xs: volumes, ys: elevations}
	e.levelToVolume = interpolator{xs: elevations, ys: volumes}
	e.levelToArea = interpolator{xs: elevations, ys: areas}
	e.maxVolume = volumes[len(volumes)-1]
	for _, v := range volumes {
		if v > e.maxVolume {
			e.maxVolume = v
		}
	}
	e.ready = true
	return e
}

// Ready reports whether a usable curve is loaded. When false, lookups use
// the proportional approximations.
func (e *Engine) Ready() bool { return e.ready }

// MaxVolume returns the largest sampled storage volume in MCM, or the
// configured default capacity in approximation mode.
func (e *Engine) MaxVolume() float64 {
	if !e.ready {
		return e.defaultMax
	}
	return e.maxVolume
}

// Level returns the water surface elevation in meters for a storage volume.
// Volumes outside the sampled range are linearly extrapolated along the
// nearest segment; negative volumes are treated as an empty reservoir.
func (e *Engine) Level(volumeMCM float64) float64 {
	volumeMCM = math.Max(0, volumeMCM)
	if !e.ready {
		return volumeMCM / e.defaultMax * fallbackMaxLevelM
	}
	return e.volumeToLevel.at(volumeMCM)
}

// SurfaceArea returns the waterspread area in km² for a storage volume,
// derived through the level at that volume.
func (e *Engine) SurfaceArea(volumeMCM float64) float64 {
	volumeMCM = math.Max(0, volumeMCM)
	if !e.ready {
		return volumeMCM / e.defaultMax * fallbackMaxAreaSqKm
	}
	return e.levelToArea.at(e.volumeToLevel.at(volumeMCM))
}

// Volume returns the storage volume in MCM impounded at a water surface
// elevation.
func (e *Engine) Volume(elevationM float64) float64 {
	if !e.ready {
		return elevationM / fallbackMaxLevelM * e.defaultMax
	}
	return e.levelToVolume.at(elevationM)
}

// LogStatus emits a one-line summary of the curve state.
func (e *Engine) LogStatus(logger *slog.Logger) {
	if logger == nil {
		return
	}
	if !e.ready {
		logger.Warn("volume curve unavailable, using proportional approximations",
			"default_max_volume_mcm", e.defaultMax)
		return
	}
	logger.Info("volume curve loaded",
		"samples", len(e.levelToVolume.xs),
		"max_volume_mcm", e.maxVolume,
		"min_elevation_m", e.levelToVolume.xs[0],
		"max_elevation_m", e.levelToVolume.xs[len(e.levelToVolume.xs)-1],
	)
}

// interpolator is a piecewise-linear map over monotonically increasing xs.
// Inputs beyond either end extrapolate along the adjacent segment's slope
// rather than clamping, so the curve keeps a physical gradient past the
// surveyed range.
type interpolator struct {
	xs []float64
	ys []float64
}

func (in interpolator) at(x float64) float64 {
	n := len(in.xs)
	// Pick the segment: the last one whose left endpoint is at or below x,
	// with the outermost segments reused for extrapolation.
	i := sort.SearchFloat64s(in.xs, x)
	switch {
	case i <= 0:
		i = 1
	case i >= n:
		i = n - 1
	}
	x0, x1 := in.xs[i-1], in.xs[i]
	y0, y1 := in.ys[i-1], in.ys[i]
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
