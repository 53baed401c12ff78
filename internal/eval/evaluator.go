// Package eval wires the report parser and the aggregator into a single
// evaluation of subgroup-list reports against one dataset and target.
package eval

import (
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/sublist-eval/internal/aggregate"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/parser"
	"github.com/DjordjeVuckovic/sublist-eval/internal/quality"
	"github.com/DjordjeVuckovic/sublist-eval/internal/rule"
	"github.com/DjordjeVuckovic/sublist-eval/internal/sublist"
)

// Evaluator is safe for concurrent use: the dataset and target masks are
// read-only and every call keeps its own parse state.
type Evaluator struct {
	ds      *dataset.Dataset
	target  rule.Target
	measure quality.Measure
	parser  *parser.Parser

	tp, fp int
}

func NewEvaluator(ds *dataset.Dataset, target rule.Target, measure quality.Measure, opts parser.Options) (*Evaluator, error) {
	p, err := parser.New(ds, target, opts)
	if err != nil {
		return nil, err
	}
	tp := p.TargetMask().Count()
	return &Evaluator{
		ds:      ds,
		target:  target,
		measure: measure,
		parser:  p,
		tp:      tp,
		fp:      ds.Len() - tp,
	}, nil
}

// ResolveTarget builds the run target from its textual value, typing the
// value after the target column.
func ResolveTarget(ds *dataset.Dataset, attribute, value string) (rule.Target, error) {
	col, ok := ds.Column(attribute)
	if !ok {
		return rule.Target{}, fmt.Errorf("target attribute %q not in dataset", attribute)
	}
	return rule.NewTarget(attribute, rule.Bare(value).ValueFor(col.Kind)), nil
}

func (e *Evaluator) Target() rule.Target {
	return e.target
}

func (e *Evaluator) Measure() quality.Measure {
	return e.measure
}

// Populations returns the number of target (TP) and non-target (FP) rows.
func (e *Evaluator) Populations() (tp, fp int) {
	return e.tp, e.fp
}

func (e *Evaluator) Rows() int {
	return e.ds.Len()
}

func (e *Evaluator) EvaluateFile(path string) (*aggregate.Result, error) {
	lists, err := e.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return e.aggregate(lists)
}

func (e *Evaluator) Evaluate(r io.Reader) (*aggregate.Result, error) {
	lists, err := e.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return e.aggregate(lists)
}

func (e *Evaluator) aggregate(lists []*sublist.List) (*aggregate.Result, error) {
	res, err := aggregate.Evaluate(lists, e.measure, e.tp, e.fp)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	return res, nil
}
