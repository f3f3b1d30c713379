package domain

import "time"

// CurveSample is one row of the bathymetric survey table relating a water
// surface elevation to the waterspread area and cumulative storage volume
// at that level.
type CurveSample struct {
	ElevationM float64 `json:"elevation_m"`
	AreaSqKm   float64 `json:"area_sqkm"`
	VolumeMCM  float64 `json:"volume_mcm"`
}

// SimulationRequest describes one long-term projection scenario.
//
// RainfallMultiplier scales the climatological baseline (1.0 = normal,
// 2.0 = double rainfall). TempIncrease is the warming offset in °C applied
// on top of the reference climate. StableMode suppresses all risk signals
// and clamps storage into a safe operating band, for baseline and
// calibration runs.
type SimulationRequest struct {
	ReservoirID        string  `json:"reservoir_id,omitempty"`
	Years              int     `json:"years"`
	RainfallMultiplier float64 `json:"rainfall_multiplier"`
	TempIncrease       float64 `json:"temp_increase"`
	StableMode         bool    `json:"stable_mode"`
}

// MonthlyRecord is one emitted month of a simulation run. Values are
// rounded for presentation: volume to 2 decimals, rainfall and risk
// probabilities to 1. FloodProb and DroughtProb are percentages in [0,100]
// and mutually exclusive: at most one of them is non-zero.
type MonthlyRecord struct {
	Month       time.Month `json:"month"`
	Year        int        `json:"year"`
	VolumeMCM   float64    `json:"volume"`
	RainfallMM  float64    `json:"rainfall"`
	FloodProb   float64    `json:"flood_prob"`
	DroughtProb float64    `json:"drought_prob"`
}

// Summary aggregates a simulated series into headline risk figures.
type Summary struct {
	MaxFloodRisk   float64 `json:"max_flood_risk"`
	MaxDroughtRisk float64 `json:"max_drought_risk"`
	YearsProjected int     `json:"years_projected"`
}

// SimulationResult is the chronological monthly series (length = years×12)
// plus the derived summary. GeneratedAt is stamped from the package clock.
type SimulationResult struct {
	Records     []MonthlyRecord `json:"simulation"`
	Summary     Summary         `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}
