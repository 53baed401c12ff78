package rule

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/coverage"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
)

// Literal is the right-hand side of a condition as written in the report.
// Quoted literals are always categorical; bare literals take the kind of
// the column they are compared with.
type Literal struct {
	Raw    string
	Quoted bool
}

func Quoted(s string) Literal {
	return Literal{Raw: s, Quoted: true}
}

func Bare(s string) Literal {
	return Literal{Raw: s}
}

// Number renders f the way the miner writes numeric literals.
func Number(f float64) Literal {
	return Bare(strconv.FormatFloat(f, 'f', -1, 64))
}

// ValueFor resolves the literal against a column kind.
func (l Literal) ValueFor(kind dataset.Kind) dataset.Value {
	if l.Quoted {
		return dataset.String(l.Raw)
	}
	switch kind {
	case dataset.Numeric:
		if f, err := strconv.ParseFloat(l.Raw, 64); err == nil {
			return dataset.Number(f)
		}
	case dataset.Boolean:
		v := dataset.ParseLiteral(l.Raw)
		if v.Kind == dataset.Boolean {
			return v
		}
	default:
		return dataset.String(l.Raw)
	}
	return dataset.ParseLiteral(l.Raw)
}

func (l Literal) String() string {
	if !l.Quoted {
		return l.Raw
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(l.Raw) + "'"
}

type Condition struct {
	Attribute string
	Operator  Operator
	Value     Literal
}

func (c Condition) String() string {
	return c.Attribute + " " + string(c.Operator) + " " + c.Value.String()
}

// Evaluate returns the rows on which the condition holds.
func (c Condition) Evaluate(ds *dataset.Dataset) (coverage.Vector, error) {
	col, ok := ds.Column(c.Attribute)
	if !ok {
		return coverage.Vector{}, apperr.NewMalformedPredicate(c.Attribute)
	}

	literal := c.Value.ValueFor(col.Kind)
	b := coverage.NewBuilder(ds.Len())
	for i := 0; i < ds.Len(); i++ {
		if c.Operator.Holds(col.Value(i), literal) {
			b.Set(i)
		}
	}
	return b.Vector(), nil
}
