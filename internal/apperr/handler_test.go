package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{name: "validation", err: NewValidation("report is required"), wantStatus: http.StatusBadRequest, wantTitle: "validation error"},
		{name: "syntax on a line", err: &LineError{Line: 3, Err: NewPredicateSyntax("x", "bad")}, wantStatus: http.StatusUnprocessableEntity, wantTitle: "predicate syntax error"},
		{name: "orphan", err: NewOrphanSubgroup(1, "s1: ..."), wantStatus: http.StatusUnprocessableEntity, wantTitle: "orphan subgroup"},
		{name: "empty collection wrapped", err: fmt.Errorf("aggregate: %w", NewEmptyCollection()), wantStatus: http.StatusUnprocessableEntity, wantTitle: "empty collection"},
		{name: "unknown column", err: NewMalformedPredicate("age"), wantStatus: http.StatusUnprocessableEntity, wantTitle: "malformed predicate"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusNotFound, "evaluation not found"), wantStatus: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			GlobalErrorHandler()(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, tt.wantTitle, body["title"])
		})
	}
}
