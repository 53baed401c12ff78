// Command sleval evaluates subgroup-list reports against their dataset,
// optionally running the miner first.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/report"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/runner"
	"github.com/DjordjeVuckovic/sublist-eval/internal/mining"
	"github.com/DjordjeVuckovic/sublist-eval/internal/quality"
)

func main() {
	cfg := parseFlags()
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Mode {
	case "eval":
		os.Exit(runEval(ctx, cfg))
	case "measures":
		for _, name := range quality.Names() {
			fmt.Println(name)
		}
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func runEval(ctx context.Context, cfg cliConfig) int {
	es, err := cfg.loadSpec()
	if err != nil {
		slog.Error("Failed to load spec", "error", err)
		return 1
	}

	ds, err := dataset.LoadCSV(es.Dataset)
	if err != nil {
		slog.Error("Failed to load dataset", "path", es.Dataset, "error", err)
		return 1
	}

	var miner mining.Miner
	if es.Miner != nil {
		cm, err := mining.NewCommandMiner(es.Miner.Command, es.Miner.Dir)
		if err != nil {
			slog.Error("Failed to create miner", "error", err)
			return 1
		}
		miner = cm
	}

	r := runner.New(cfg.runnerConfig(), miner)
	result, err := r.RunAll(ctx, es, ds)
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		return 1
	}

	rpt := report.Generate(result)
	report.WriteTable(rpt, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			return 1
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if es.LogDir != "" {
		if err := report.WriteRunLogs(es.LogDir, result); err != nil {
			slog.Error("Failed to write run logs", "error", err)
			return 1
		}
		slog.Info("Run logs written", "dir", es.LogDir)
	}

	if failed := result.FailedRuns(); failed > 0 {
		slog.Warn("Some runs failed", "failed", failed, "total", len(result.Runs))
		return 2
	}
	return 0
}
