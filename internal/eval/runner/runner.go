package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/spec"
	"github.com/DjordjeVuckovic/sublist-eval/internal/mining"
	"github.com/DjordjeVuckovic/sublist-eval/internal/parser"
	"github.com/DjordjeVuckovic/sublist-eval/internal/quality"
)

type Runner struct {
	config Config
	miner  mining.Miner
}

// New returns a runner. miner may be nil, in which case every report must
// already exist.
func New(cfg Config, miner mining.Miner) *Runner {
	return &Runner{config: cfg, miner: miner}
}

// RunAll evaluates every run of the spec in order. A failing run is
// recorded with its error and never replaced by default figures; only setup
// failures abort the whole evaluation.
func (r *Runner) RunAll(ctx context.Context, es *spec.EvalSpec, ds *dataset.Dataset) (*EvaluationResult, error) {
	measure, err := quality.ByName(es.QualityMeasure)
	if err != nil {
		return nil, err
	}
	target, err := eval.ResolveTarget(ds, es.Target.Attribute, es.Target.Value)
	if err != nil {
		return nil, err
	}
	ev, err := eval.NewEvaluator(ds, target, measure, parser.Options{Strict: es.Strict})
	if err != nil {
		return nil, fmt.Errorf("create evaluator: %w", err)
	}

	tp, fp := ev.Populations()
	er := &EvaluationResult{
		ID:      uuid.New(),
		Dataset: es.Dataset,
		Target:  target,
		Measure: measure.Name(),
		Rows:    ds.Len(),
		TP:      tp,
		FP:      fp,
	}
	slog.Info("Evaluation started", "target", target.String(), "rows", er.Rows, "tp", tp, "fp", fp, "measure", er.Measure)

	for _, run := range es.Expand() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rr := r.RunOne(ctx, es, ev, run)
		er.Runs = append(er.Runs, rr)

		if rr.Failed() {
			slog.Warn("Run failed", "run", rr.Name, "report", rr.Report, "error", rr.Error)
			continue
		}
		slog.Info("Run evaluated",
			"run", rr.Name,
			"lists", len(rr.Result.Lists),
			"quality", rr.Result.MeanQuality,
			"coverage", rr.Result.CoverageFraction,
		)
	}

	return er, nil
}

// RunOne mines the report when needed and evaluates it.
func (r *Runner) RunOne(ctx context.Context, es *spec.EvalSpec, ev *eval.Evaluator, run spec.Run) *RunResult {
	rr := &RunResult{
		ID:        uuid.New(),
		Name:      run.Name,
		Report:    run.Report,
		Params:    es.MiningParams(run.Params),
		StartedAt: time.Now(),
	}
	defer func() { rr.FinishedAt = time.Now() }()

	if r.shouldMine(run.Report) {
		start := time.Now()
		err := r.miner.Mine(ctx, mining.Request{
			DatasetPath: es.Dataset,
			Target:      ev.Target(),
			Params:      rr.Params,
			OutputPath:  run.Report,
		})
		rr.MiningTime = time.Since(start)
		if err != nil {
			rr.Error = fmt.Errorf("mine: %w", err)
			return rr
		}
		rr.Mined = true
	}

	start := time.Now()
	res, err := ev.EvaluateFile(run.Report)
	rr.EvaluateTime = time.Since(start)
	if err != nil {
		rr.Error = err
		return rr
	}
	rr.Result = res
	return rr
}

func (r *Runner) shouldMine(report string) bool {
	if r.miner == nil || r.config.SkipMining {
		return false
	}
	if r.config.ForceMine {
		return true
	}
	_, err := os.Stat(report)
	return errors.Is(err, fs.ErrNotExist)
}
