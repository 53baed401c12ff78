// Package main Subgroup List Evaluation API
// @title Subgroup List Evaluation API
// @version 1.0
// @description Evaluates subgroup-list reports: recomputes subgroup coverage against a dataset and aggregates list quality and dataset coverage
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/DjordjeVuckovic/sublist-eval/docs"
	"github.com/DjordjeVuckovic/sublist-eval/internal/api/metrics"
	"github.com/DjordjeVuckovic/sublist-eval/internal/api/router"
	"github.com/DjordjeVuckovic/sublist-eval/internal/api/server"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval"
	"github.com/DjordjeVuckovic/sublist-eval/internal/store/factory"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	ds, err := dataset.LoadCSV(cfg.DatasetPath)
	if err != nil {
		slog.Error("Failed to load dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}

	target, err := eval.ResolveTarget(ds, cfg.TargetAttribute, cfg.TargetValue)
	if err != nil {
		slog.Error("Failed to resolve target", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := server.New(sCfg)

	backend, err := factory.NewBackend(s.Context(), &cfg.StoreConfig)
	if err != nil {
		slog.Error("Failed to create store", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	s.SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health", backend.HealthChecker).
		SetupMetrics("/metrics", reg).
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Subgroup List Evaluation API is running")
	})

	evalRouter := router.NewEvaluationRouter(s.Echo, ds, target, backend.Store, metrics.New(reg))
	evalRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	slog.Info("Serving evaluations", "dataset", cfg.DatasetPath, "target", target.String(), "rows", ds.Len(), "store", cfg.StoreConfig.Type)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
