package apperr

import "fmt"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// PredicateSyntaxError reports text that does not follow the
// "Description: ..., Target: ..." grammar.
type PredicateSyntaxError struct {
	Text   string
	Reason string
}

func (e *PredicateSyntaxError) Error() string {
	return fmt.Sprintf("predicate syntax error in %q: %s", e.Text, e.Reason)
}

func NewPredicateSyntax(text, reason string) *PredicateSyntaxError {
	return &PredicateSyntaxError{Text: text, Reason: reason}
}

// MalformedPredicateError reports a predicate that references an attribute
// the dataset does not have.
type MalformedPredicateError struct {
	Attribute string
}

func (e *MalformedPredicateError) Error() string {
	return fmt.Sprintf("malformed predicate: unknown attribute %q", e.Attribute)
}

func NewMalformedPredicate(attribute string) *MalformedPredicateError {
	return &MalformedPredicateError{Attribute: attribute}
}

type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("coverage length mismatch: %d != %d", e.Left, e.Right)
}

func NewLengthMismatch(left, right int) *LengthMismatchError {
	return &LengthMismatchError{Left: left, Right: right}
}

// OrphanSubgroupError reports a subgroup record that appears before any
// subgroup list header.
type OrphanSubgroupError struct {
	Line int
	Text string
}

func (e *OrphanSubgroupError) Error() string {
	return fmt.Sprintf("line %d: subgroup record before any subgroup list header: %q", e.Line, e.Text)
}

func NewOrphanSubgroup(line int, text string) *OrphanSubgroupError {
	return &OrphanSubgroupError{Line: line, Text: text}
}

type EmptyCollectionError struct{}

func (e *EmptyCollectionError) Error() string {
	return "cannot aggregate an empty collection of subgroup lists"
}

func NewEmptyCollection() *EmptyCollectionError {
	return &EmptyCollectionError{}
}

// UnrecognizedStructuralLineError is only raised in strict parsing mode, for
// lines that look like a header or a record but fail the full-line pattern.
type UnrecognizedStructuralLineError struct {
	Line int
	Text string
}

func (e *UnrecognizedStructuralLineError) Error() string {
	return fmt.Sprintf("line %d: unrecognized structural line: %q", e.Line, e.Text)
}

func NewUnrecognizedStructuralLine(line int, text string) *UnrecognizedStructuralLineError {
	return &UnrecognizedStructuralLineError{Line: line, Text: text}
}

// TargetMismatchError reports a subgroup whose stated target differs from
// the target of the evaluation run.
type TargetMismatchError struct {
	Line     int
	Expected string
	Got      string
}

func (e *TargetMismatchError) Error() string {
	return fmt.Sprintf("line %d: subgroup target %s does not match run target %s", e.Line, e.Got, e.Expected)
}

func NewTargetMismatch(line int, expected, got string) *TargetMismatchError {
	return &TargetMismatchError{Line: line, Expected: expected, Got: got}
}

// LineError attaches the report line number to an error raised while
// evaluating that line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *LineError) Unwrap() error {
	return e.Err
}
