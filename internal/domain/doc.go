// Package domain models the reservoir quantities shared by the volume-curve
// and simulation engines.
//
// # Units
//
// Volumes are in MCM (million cubic meters), the standard unit for Tamil
// Nadu reservoir storage reporting. Surface areas are in square kilometers
// and water levels in meters above the survey datum. Rainfall is in
// millimeters per month.
//
// # Bathymetric curve data
//
// Curve samples originate from the waterspread-detection geodatabase:
// contour rings are polygonized per elevation level, their areas
// accumulated by trapezoidal integration into cumulative storage, and the
// resulting {elevation_m, area_sqkm, volume_mcm} triples persisted as JSON
// (see cmd/gencurve). Elevation is non-decreasing along the table; at
// least two distinct elevations are needed before interpolation is
// meaningful, otherwise consumers fall back to fixed proportional
// approximations.
//
// # Seasons
//
// The four-season calendar follows the Tamil Nadu hydrological year:
//
//	Jan–Feb  Winter        (dry, cool)
//	Mar–Jun  Summer        (dry, hot)
//	Jul–Sep  Monsoon       (southwest monsoon, wettest)
//	Oct–Dec  Post-Monsoon  (northeast monsoon, cyclonic)
//
// Season integer indices (Winter=0 .. Post-Monsoon=3) double as the
// categorical feature encoding used by the trend estimator.
//
// # Risk probabilities
//
// Flood and drought probabilities are percentages in [0,100] and are
// mutually exclusive on every monthly record: a month with a non-zero
// flood probability always reports zero drought probability, and vice
// versa. Rain-surplus scenarios (rainfall multiplier above 1.0) never
// report drought at all.
package domain
