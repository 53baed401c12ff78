package dataset

import (
	"strconv"
	"strings"
)

type Kind int

const (
	Categorical Kind = iota
	Numeric
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Boolean:
		return "boolean"
	default:
		return "categorical"
	}
}

// Value is a single scalar cell. Missing cells carry no value and never
// compare equal to anything.
type Value struct {
	Kind    Kind
	Missing bool
	Str     string
	Num     float64
	Bool    bool
}

func String(s string) Value {
	return Value{Kind: Categorical, Str: s}
}

func Number(f float64) Value {
	return Value{Kind: Numeric, Num: f}
}

func Bool(b bool) Value {
	return Value{Kind: Boolean, Bool: b}
}

func MissingValue() Value {
	return Value{Missing: true}
}

// Equal reports value equality. Values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.Missing || o.Missing || v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Numeric:
		return v.Num == o.Num
	case Boolean:
		return v.Bool == o.Bool
	default:
		return v.Str == o.Str
	}
}

// Compare orders two values of the same kind. ok is false when the values
// are not comparable (missing, different kinds or booleans).
func (v Value) Compare(o Value) (cmp int, ok bool) {
	if v.Missing || o.Missing || v.Kind != o.Kind {
		return 0, false
	}
	switch v.Kind {
	case Numeric:
		switch {
		case v.Num < o.Num:
			return -1, true
		case v.Num > o.Num:
			return 1, true
		}
		return 0, true
	case Categorical:
		return strings.Compare(v.Str, o.Str), true
	}
	return 0, false
}

func (v Value) String() string {
	if v.Missing {
		return "nan"
	}
	switch v.Kind {
	case Numeric:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case Boolean:
		if v.Bool {
			return "True"
		}
		return "False"
	default:
		return v.Str
	}
}

func isMissing(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", "NaN", "nan", "NA", "null":
		return true
	}
	return false
}

func parseBool(raw string) (bool, bool) {
	switch raw {
	case "True", "true", "TRUE":
		return true, true
	case "False", "false", "FALSE":
		return false, true
	}
	return false, false
}

// ParseLiteral interprets an unquoted literal the way the miner writes it:
// booleans as True/False, numbers as decimal, anything else as text.
func ParseLiteral(raw string) Value {
	if b, ok := parseBool(raw); ok {
		return Bool(b)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	return String(raw)
}
