package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// risk monitor and its simulation runs.
type Metrics struct {
	SimulationsRun     prometheus.Counter
	SimulationDuration prometheus.Histogram
	MonitorRunning     prometheus.Gauge

	// Projected state from the latest monitor cycle.
	ProjectedFloodRisk   prometheus.Gauge
	ProjectedDroughtRisk prometheus.Gauge
	ProjectedVolume      prometheus.Gauge
	ProjectedLevel       prometheus.Gauge
	ProjectedSurfaceArea prometheus.Gauge

	// Curve engine state at startup.
	CurveReady prometheus.Gauge
}

// NewMetrics creates and registers all monitor metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SimulationsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydro_ai",
			Name:      "simulations_run_total",
			Help:      "Total long-term simulation runs completed.",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hydro_ai",
			Name:      "simulation_duration_seconds",
			Help:      "Duration of a complete simulation run.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		MonitorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_ai",
			Name:      "monitor_running",
			Help:      "1 when the risk monitor loop is active, 0 when shut down.",
		}),
		ProjectedFloodRisk: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_ai",
			Name:      "projected_flood_risk_pct",
			Help:      "Peak flood probability over the monitored scenario horizon.",
		}),
		ProjectedDroughtRisk: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_ai",
			Name:      "projected_drought_risk_pct",
			Help:      "Peak drought probability over the monitored scenario horizon.",
		}),
		ProjectedVolume: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_ai",
			Name:      "projected_volume_mcm",
			Help:      "Storage volume at the end of the monitored scenario horizon.",
		}),
		ProjectedLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_ai",
			Name:      "projected_water_level_m",
			Help:      "Water level at the end of the monitored scenario horizon.",
		}),
		ProjectedSurfaceArea: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_ai",
			Name:      "projected_surface_area_sqkm",
			Help:      "Waterspread area at the end of the monitored scenario horizon.",
		}),
		CurveReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_ai",
			Name:      "curve_ready",
			Help:      "1 when a bathymetric curve is loaded, 0 in approximation mode.",
		}),
	}

	prometheus.MustRegister(
		m.SimulationsRun,
		m.SimulationDuration,
		m.MonitorRunning,
		m.ProjectedFloodRisk,
		m.ProjectedDroughtRisk,
		m.ProjectedVolume,
		m.ProjectedLevel,
		m.ProjectedSurfaceArea,
		m.CurveReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SimulationsRun:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydro_ai", Name: "simulations_run_total"}),
		SimulationDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "hydro_ai", Name: "simulation_duration_seconds"}),
		MonitorRunning:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_ai", Name: "monitor_running"}),
		ProjectedFloodRisk:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_ai", Name: "projected_flood_risk_pct"}),
		ProjectedDroughtRisk: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_ai", Name: "projected_drought_risk_pct"}),
		ProjectedVolume:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_ai", Name: "projected_volume_mcm"}),
		ProjectedLevel:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_ai", Name: "projected_water_level_m"}),
		ProjectedSurfaceArea: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_ai", Name: "projected_surface_area_sqkm"}),
		CurveReady:           prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_ai", Name: "curve_ready"}),
	}
}
