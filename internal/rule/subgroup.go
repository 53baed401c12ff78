// Package rule models subgroup descriptions and targets and converts them
// to and from the textual form written by the subgroup-list miner.
package rule

import (
	"github.com/DjordjeVuckovic/sublist-eval/internal/coverage"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
)

// Target is the attribute/value pair defining the positive class.
type Target struct {
	Attribute string
	Value     Literal
}

// NewTarget builds a target from a value as read from the dataset, quoting
// categorical values the way the miner does.
func NewTarget(attribute string, value dataset.Value) Target {
	if value.Kind == dataset.Categorical {
		return Target{Attribute: attribute, Value: Quoted(value.Str)}
	}
	return Target{Attribute: attribute, Value: Bare(value.String())}
}

func (t Target) Condition() Condition {
	return Condition{Attribute: t.Attribute, Operator: Equal, Value: t.Value}
}

func (t Target) String() string {
	return t.Condition().String()
}

// Matches reports whether two targets select the same value of the same
// attribute on ds.
func (t Target) Matches(o Target, ds *dataset.Dataset) bool {
	if t.Attribute != o.Attribute {
		return false
	}
	col, ok := ds.Column(t.Attribute)
	if !ok {
		return t.Value == o.Value
	}
	return t.Value.ValueFor(col.Kind).Equal(o.Value.ValueFor(col.Kind))
}

// Evaluate returns the rows where row[attribute] == value.
func (t Target) Evaluate(ds *dataset.Dataset) (coverage.Vector, error) {
	return t.Condition().Evaluate(ds)
}

// Subgroup is a description paired with the target it was mined for.
type Subgroup struct {
	Description Description
	Target      Target
}

// String renders the textual form "Description: [...], Target: attr = value".
func (s Subgroup) String() string {
	return "Description: " + s.Description.String() + ", Target: " + s.Target.String()
}

func (s Subgroup) Equivalent(o Subgroup) bool {
	return s.Target == o.Target && s.Description.Equivalent(o.Description)
}
