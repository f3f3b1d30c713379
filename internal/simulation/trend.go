package simulation

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ELANGKATHIR11/Hydro-AI/internal/domain"
)

// TrendEstimator is a single-layer linear predictor of next-month storage.
//
// The stepper computes its estimate every month for diagnostics, but the
// authoritative mass balance does not blend it in: whether the omission is
// deliberate (the physics alone was judged sufficient) or a dropped
// integration was never settled, so the estimator stays a wired-but-inert
// extension point rather than being silently merged.
type TrendEstimator struct {
	weights *mat.VecDense
}

// Physics-guided weights: storage decays, rainfall adds, warming removes,
// and the season index carries the monsoon swing.
const (
	weightVolume   = -0.01
	weightRainfall = 0.05
	weightTemp     = -0.1
	weightSeason   = 0.2
)

// NewTrendEstimator returns an estimator with the fixed physics-guided
// weights.
func NewTrendEstimator() *TrendEstimator {
	return &TrendEstimator{
		weights: mat.NewVecDense(4, []float64{weightVolume, weightRainfall, weightTemp, weightSeason}),
	}
}

// Predict returns the estimated next-month volume: the current volume plus
// the weighted feature delta.
func (t *TrendEstimator) Predict(volumeMCM, rainfallMM, tempIncrease float64, season domain.Season) float64 {
	features := mat.NewVecDense(4, []float64{volumeMCM, rainfallMM, tempIncrease, float64(season.Index())})
	return volumeMCM + mat.Dot(t.weights, features)
}
