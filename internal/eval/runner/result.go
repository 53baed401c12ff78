package runner

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sublist-eval/internal/aggregate"
	"github.com/DjordjeVuckovic/sublist-eval/internal/mining"
	"github.com/DjordjeVuckovic/sublist-eval/internal/rule"
)

type RunResult struct {
	ID     uuid.UUID
	Name   string
	Report string
	Params mining.Params
	Mined  bool

	Result *aggregate.Result

	StartedAt    time.Time
	FinishedAt   time.Time
	MiningTime   time.Duration
	EvaluateTime time.Duration

	Error error
}

func (r *RunResult) Failed() bool {
	return r.Error != nil
}

type EvaluationResult struct {
	ID      uuid.UUID
	Dataset string
	Target  rule.Target
	Measure string
	Rows    int
	TP      int
	FP      int
	Runs    []*RunResult
}

// FailedRuns counts the runs that ended with an error.
func (er *EvaluationResult) FailedRuns() int {
	n := 0
	for _, r := range er.Runs {
		if r.Failed() {
			n++
		}
	}
	return n
}
