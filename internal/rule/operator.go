package rule

import (
	"fmt"

	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
)

type Operator string

const (
	Equal          Operator = "="
	NotEqual       Operator = "!="
	Less           Operator = "<"
	Greater        Operator = ">"
	LessOrEqual    Operator = "<="
	GreaterOrEqual Operator = ">="
)

func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case Equal, NotEqual, Less, Greater, LessOrEqual, GreaterOrEqual:
		return op, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Holds reports whether cell <op> literal is true. A missing cell only
// satisfies NotEqual.
func (op Operator) Holds(cell, literal dataset.Value) bool {
	if cell.Missing {
		return op == NotEqual
	}
	switch op {
	case Equal:
		return cell.Equal(literal)
	case NotEqual:
		return !cell.Equal(literal)
	}

	cmp, ok := cell.Compare(literal)
	if !ok {
		return false
	}
	switch op {
	case Less:
		return cmp < 0
	case Greater:
		return cmp > 0
	case LessOrEqual:
		return cmp <= 0
	case GreaterOrEqual:
		return cmp >= 0
	}
	return false
}
