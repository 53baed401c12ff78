// Package quality provides the subgroup quality measures used to score
// subgroup lists.
package quality

import (
	"fmt"
	"sort"
	"strings"
)

// Counts are the confusion counts of a single subgroup plus the sizes of
// the target (TP) and non-target (FP) populations of the dataset.
type Counts struct {
	TruePositives   int
	FalsePositives  int
	TruePopulation  int
	FalsePopulation int
}

func (c Counts) total() float64 {
	return float64(c.TruePopulation + c.FalsePopulation)
}

// Measure scores a subgroup from its counts. Implementations must be pure.
type Measure interface {
	Name() string
	Compute(c Counts) float64
}

// Func adapts a plain function to Measure.
type Func struct {
	ID string
	Fn func(Counts) float64
}

func (f Func) Name() string { return f.ID }
func (f Func) Compute(c Counts) float64 { return f.Fn(c) }

const DefaultMeasure = "wracc"

var registry = map[string]Measure{
	"wracc":             WRAcc{},
	"sensitivity":       Func{ID: "sensitivity", Fn: Sensitivity},
	"specificity":       Func{ID: "specificity", Fn: Specificity},
	"precision":         Func{ID: "precision", Fn: Precision},
	"piatetsky_shapiro": Func{ID: "piatetsky_shapiro", Fn: PiatetskyShapiro},
}

// ByName looks up a registered measure; the empty name selects WRAcc.
func ByName(name string) (Measure, error) {
	if name == "" {
		name = DefaultMeasure
	}
	m, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown quality measure %q, expected one of %v", name, Names())
	}
	return m, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
