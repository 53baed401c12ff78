// Package aggregate folds subgroup quality and coverage over a collection
// of subgroup lists.
package aggregate

import (
	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/coverage"
	"github.com/DjordjeVuckovic/sublist-eval/internal/quality"
	"github.com/DjordjeVuckovic/sublist-eval/internal/sublist"
)

type Result struct {
	Lists []*sublist.List
	// ListQualities holds, per list, the sum of its subgroup qualities.
	ListQualities []float64
	// MeanQuality is the mean of ListQualities. Per-list values are sums,
	// not means, so longer lists weigh more.
	MeanQuality float64
	// CoverageFraction is the fraction of rows covered by at least one
	// subgroup of at least one list.
	CoverageFraction float64
	CoveredRows      int
	TotalRows        int
}

// Evaluate scores every subgroup of every list with measure, given the
// dataset's target population tp and non-target population fp.
func Evaluate(lists []*sublist.List, measure quality.Measure, tp, fp int) (*Result, error) {
	if len(lists) == 0 {
		return nil, apperr.NewEmptyCollection()
	}

	acc := NewAccumulator(measure, tp, fp, lists[0].TotalRows())
	for _, l := range lists {
		acc.StartList()
		for _, s := range l.Subgroups() {
			if err := acc.Add(s); err != nil {
				return nil, err
			}
		}
	}

	res, err := acc.Result()
	if err != nil {
		return nil, err
	}
	res.Lists = lists
	return res, nil
}

// Accumulator folds subgroups list by list without retaining them, so a
// caller can stream a report and drop coverage vectors as it goes. It
// produces the same figures as Evaluate.
type Accumulator struct {
	measure   quality.Measure
	tp, fp    int
	totalRows int

	sums    []float64
	covered coverage.Vector
}

func NewAccumulator(measure quality.Measure, tp, fp, totalRows int) *Accumulator {
	return &Accumulator{
		measure:   measure,
		tp:        tp,
		fp:        fp,
		totalRows: totalRows,
		covered:   coverage.New(totalRows),
	}
}

// StartList opens a new list with a running quality of zero.
func (a *Accumulator) StartList() {
	a.sums = append(a.sums, 0)
}

// Add scores s into the current list. A subgroup added before any list was
// started is an orphan.
func (a *Accumulator) Add(s *sublist.Subgroup) error {
	if len(a.sums) == 0 {
		return apperr.NewOrphanSubgroup(0, s.Rule.String())
	}

	covered, err := a.covered.Or(s.Covered())
	if err != nil {
		return err
	}
	a.covered = covered

	a.sums[len(a.sums)-1] += a.measure.Compute(quality.Counts{
		TruePositives:   s.TPCount(),
		FalsePositives:  s.FPCount(),
		TruePopulation:  a.tp,
		FalsePopulation: a.fp,
	})
	return nil
}

func (a *Accumulator) Result() (*Result, error) {
	if len(a.sums) == 0 {
		return nil, apperr.NewEmptyCollection()
	}

	var total float64
	for _, q := range a.sums {
		total += q
	}

	res := &Result{
		ListQualities: append([]float64(nil), a.sums...),
		MeanQuality:   total / float64(len(a.sums)),
		CoveredRows:   a.covered.Count(),
		TotalRows:     a.totalRows,
	}
	if a.totalRows > 0 {
		res.CoverageFraction = float64(res.CoveredRows) / float64(a.totalRows)
	}
	return res, nil
}
