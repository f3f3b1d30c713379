// Command hydroaid is the long-running reservoir risk monitor. It loads the
// bathymetric volume curve once at startup, then re-projects the configured
// baseline scenario on a schedule and exports the results over Prometheus.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/ELANGKATHIR11/Hydro-AI/internal/adapter/http"
	"github.com/ELANGKATHIR11/Hydro-AI/internal/config"
	"github.com/ELANGKATHIR11/Hydro-AI/internal/curve"
	"github.com/ELANGKATHIR11/Hydro-AI/internal/domain"
	"github.com/ELANGKATHIR11/Hydro-AI/internal/monitor"
	"github.com/ELANGKATHIR11/Hydro-AI/internal/observability"
	"github.com/ELANGKATHIR11/Hydro-AI/internal/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	curveEngine := curve.LoadFile(cfg.CurvePath, logger,
		curve.WithDefaultMaxVolume(cfg.DefaultMaxVolumeMCM))
	if curveEngine.Ready() {
		metrics.CurveReady.Set(1)
	}

	engine := simulation.New(curveEngine,
		simulation.WithLogger(logger),
		simulation.WithStartYear(cfg.SimulationStartYear),
	)

	scenario := domain.SimulationRequest{
		ReservoirID:        cfg.MonitorReservoirID,
		Years:              cfg.MonitorYears,
		RainfallMultiplier: cfg.MonitorRainfallMultiplier,
		TempIncrease:       cfg.MonitorTempIncrease,
		StableMode:         cfg.MonitorStableMode,
	}

	mon := monitor.New(engine, curveEngine, scenario, cfg.MonitorInterval, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, mon, curveEngine, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := mon.Run(ctx); err != nil {
			logger.Error("monitor error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
