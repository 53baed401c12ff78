package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error(), "title": "validation error"})
			return
		}

		if title, ok := reportErrorTitle(err); ok {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "title": title})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// reportErrorTitle names the error raised by a well-formed request carrying
// a report that cannot be evaluated.
func reportErrorTitle(err error) (string, bool) {
	var (
		pse *PredicateSyntaxError
		mpe *MalformedPredicateError
		ose *OrphanSubgroupError
		ece *EmptyCollectionError
		usl *UnrecognizedStructuralLineError
		tme *TargetMismatchError
		lme *LengthMismatchError
	)
	switch {
	case errors.As(err, &pse):
		return "predicate syntax error", true
	case errors.As(err, &mpe):
		return "malformed predicate", true
	case errors.As(err, &ose):
		return "orphan subgroup", true
	case errors.As(err, &ece):
		return "empty collection", true
	case errors.As(err, &usl):
		return "unrecognized structural line", true
	case errors.As(err, &tme):
		return "target mismatch", true
	case errors.As(err, &lme):
		return "length mismatch", true
	}
	return "", false
}
