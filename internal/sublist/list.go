// Package sublist holds subgroup lists: ordered, append-only sequences of
// subgroups together with their true/false positive coverage.
package sublist

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/coverage"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/rule"
)

// Subgroup is a parsed rule with the rows it covers split into true
// positives (target rows) and false positives (non-target rows).
type Subgroup struct {
	Rule           rule.Subgroup
	TruePositives  coverage.Vector
	FalsePositives coverage.Vector
}

func (s *Subgroup) TPCount() int {
	return s.TruePositives.Count()
}

func (s *Subgroup) FPCount() int {
	return s.FalsePositives.Count()
}

// Covered returns every row matched by the subgroup description.
func (s *Subgroup) Covered() coverage.Vector {
	v, _ := s.TruePositives.Or(s.FalsePositives)
	return v
}

type List struct {
	targetMask    coverage.Vector
	nonTargetMask coverage.Vector
	totalRows     int
	subgroups     []*Subgroup
}

// New starts an empty list. The masks must partition totalRows rows.
func New(targetMask, nonTargetMask coverage.Vector, totalRows int) (*List, error) {
	if targetMask.Len() != totalRows {
		return nil, apperr.NewLengthMismatch(targetMask.Len(), totalRows)
	}
	if nonTargetMask.Len() != totalRows {
		return nil, apperr.NewLengthMismatch(nonTargetMask.Len(), totalRows)
	}

	overlap, err := targetMask.And(nonTargetMask)
	if err != nil {
		return nil, err
	}
	if !overlap.None() {
		return nil, fmt.Errorf("target and non-target masks overlap on %d rows", overlap.Count())
	}
	union, err := targetMask.Or(nonTargetMask)
	if err != nil {
		return nil, err
	}
	if !union.All() {
		return nil, fmt.Errorf("target and non-target masks leave %d rows uncovered", totalRows-union.Count())
	}

	return &List{
		targetMask:    targetMask,
		nonTargetMask: nonTargetMask,
		totalRows:     totalRows,
	}, nil
}

// NewForTarget starts an empty list whose masks come from evaluating target
// on ds.
func NewForTarget(ds *dataset.Dataset, target rule.Target) (*List, error) {
	mask, err := target.Evaluate(ds)
	if err != nil {
		return nil, err
	}
	return New(mask, mask.Not(), ds.Len())
}

// AddSubgroup evaluates sg on ds, splits the covered rows by the list masks
// and appends the result.
func (l *List) AddSubgroup(sg rule.Subgroup, ds *dataset.Dataset) (*Subgroup, error) {
	if ds.Len() != l.totalRows {
		return nil, apperr.NewLengthMismatch(ds.Len(), l.totalRows)
	}

	covered, err := sg.Description.Evaluate(ds)
	if err != nil {
		return nil, err
	}
	tp, err := covered.And(l.targetMask)
	if err != nil {
		return nil, err
	}
	fp, err := covered.And(l.nonTargetMask)
	if err != nil {
		return nil, err
	}

	s := &Subgroup{Rule: sg, TruePositives: tp, FalsePositives: fp}
	l.subgroups = append(l.subgroups, s)
	return s, nil
}

// Coverage returns the rows explained by at least one subgroup of the list.
func (l *List) Coverage() coverage.Vector {
	acc := coverage.New(l.totalRows)
	for _, s := range l.subgroups {
		acc, _ = acc.Or(s.Covered())
	}
	return acc
}

func (l *List) Subgroups() []*Subgroup {
	return l.subgroups
}

func (l *List) Len() int {
	return len(l.subgroups)
}

func (l *List) TotalRows() int {
	return l.totalRows
}

func (l *List) TargetMask() coverage.Vector {
	return l.targetMask
}

func (l *List) NonTargetMask() coverage.Vector {
	return l.nonTargetMask
}

func (l *List) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Subgroup list (%d subgroups) ##", len(l.subgroups))
	for i, s := range l.subgroups {
		fmt.Fprintf(&sb, "\ns%d: %s (tp = %d, fp = %d)", i+1, s.Rule, s.TPCount(), s.FPCount())
	}
	return sb.String()
}
