package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid expression", inner)

	if err.Error() != "invalid expression: parse failed" {
		t.Errorf("expected 'invalid expression: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty parentheses")

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("storage error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty parentheses" {
		t.Errorf("expected 'empty parentheses', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestLineError_UnwrapsToTaxonomyError(t *testing.T) {
	inner := apperr.NewMalformedPredicate("age")
	err := fmt.Errorf("parse report: %w", &apperr.LineError{Line: 7, Err: inner})

	var mpe *apperr.MalformedPredicateError
	if !errors.As(err, &mpe) {
		t.Fatal("errors.As should find MalformedPredicateError through LineError")
	}
	if mpe.Attribute != "age" {
		t.Errorf("expected attribute 'age', got %q", mpe.Attribute)
	}
	if err.Error() != `parse report: line 7: malformed predicate: unknown attribute "age"` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestTaxonomyMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"length mismatch", apperr.NewLengthMismatch(3, 4), "coverage length mismatch: 3 != 4"},
		{"empty collection", apperr.NewEmptyCollection(), "cannot aggregate an empty collection of subgroup lists"},
		{"orphan", apperr.NewOrphanSubgroup(2, "s1: x"), `line 2: subgroup record before any subgroup list header: "s1: x"`},
		{"strict", apperr.NewUnrecognizedStructuralLine(5, "## oops"), `line 5: unrecognized structural line: "## oops"`},
		{"syntax", apperr.NewPredicateSyntax("x", "missing Target"), `predicate syntax error in "x": missing Target`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.err.Error())
			}
		})
	}
}
