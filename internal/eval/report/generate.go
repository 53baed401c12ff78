package report

import (
	"time"

	"github.com/DjordjeVuckovic/sublist-eval/internal/aggregate"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/runner"
)

func Generate(er *runner.EvaluationResult) *Report {
	r := &Report{
		Meta: Meta{
			EvaluationID: er.ID.String(),
			Timestamp:    time.Now(),
			Dataset:      er.Dataset,
			Target:       er.Target.String(),
			Measure:      er.Measure,
			Rows:         er.Rows,
			TP:           er.TP,
			FP:           er.FP,
			Environment:  NewEnvironmentInfo(),
		},
	}

	for _, rr := range er.Runs {
		entry := RunEntry{
			ID:                 rr.ID.String(),
			Name:               rr.Name,
			Report:             rr.Report,
			Beta:               rr.Params.Beta,
			MaxPositiveOverlap: rr.Params.MaxPositiveOverlap,
			MaxNegativeOverlap: rr.Params.MaxNegativeOverlap,
			Mined:              rr.Mined,
			StartedAt:          rr.StartedAt,
			FinishedAt:         rr.FinishedAt,
			MiningTime:         rr.MiningTime,
			EvaluateTime:       rr.EvaluateTime,
		}
		if rr.Error != nil {
			entry.Error = rr.Error.Error()
		}
		if rr.Result != nil {
			entry.MeanQuality = rr.Result.MeanQuality
			entry.CoverageFraction = rr.Result.CoverageFraction
			entry.Lists = ListEntries(rr.Result)
		}
		r.Runs = append(r.Runs, entry)
	}

	return r
}

// ListEntries flattens the lists of an aggregation result.
func ListEntries(res *aggregate.Result) []ListEntry {
	entries := make([]ListEntry, 0, len(res.Lists))
	for i, l := range res.Lists {
		le := ListEntry{Coverage: l.Coverage().Count()}
		if i < len(res.ListQualities) {
			le.Quality = res.ListQualities[i]
		}
		for _, s := range l.Subgroups() {
			le.Subgroups = append(le.Subgroups, SubgroupEntry{
				Description: s.Rule.Description.String(),
				Target:      s.Rule.Target.String(),
				TP:          s.TPCount(),
				FP:          s.FPCount(),
			})
		}
		entries = append(entries, le)
	}
	return entries
}
