package rule

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/coverage"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
)

// Description is a conjunction of conditions. The empty description covers
// every row.
type Description struct {
	Conditions []Condition
}

func NewDescription(conds ...Condition) Description {
	return Description{Conditions: conds}
}

// String renders the canonical bracketed form, e.g. "[age >= 30, sex = 'F']".
func (d Description) String() string {
	parts := make([]string, len(d.Conditions))
	for i, c := range d.Conditions {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (d Description) Attributes() mapset.Set[string] {
	attrs := mapset.NewThreadUnsafeSet[string]()
	for _, c := range d.Conditions {
		attrs.Add(c.Attribute)
	}
	return attrs
}

// Equivalent reports whether both descriptions hold the same conditions,
// regardless of their order.
func (d Description) Equivalent(o Description) bool {
	if len(d.Conditions) != len(o.Conditions) {
		return false
	}
	return slices.Equal(d.sortedKeys(), o.sortedKeys())
}

func (d Description) sortedKeys() []string {
	keys := make([]string, len(d.Conditions))
	for i, c := range d.Conditions {
		keys[i] = c.String()
	}
	slices.Sort(keys)
	return keys
}

// Evaluate returns the rows on which every condition holds.
func (d Description) Evaluate(ds *dataset.Dataset) (coverage.Vector, error) {
	if missing := ds.MissingColumns(d.Attributes()); len(missing) > 0 {
		return coverage.Vector{}, apperr.NewMalformedPredicate(missing[0])
	}

	acc := coverage.Full(ds.Len())
	for _, c := range d.Conditions {
		v, err := c.Evaluate(ds)
		if err != nil {
			return coverage.Vector{}, err
		}
		if acc, err = acc.And(v); err != nil {
			return coverage.Vector{}, err
		}
	}
	return acc, nil
}
