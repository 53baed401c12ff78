package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/sublist-eval/internal/api/dto"
	"github.com/DjordjeVuckovic/sublist-eval/internal/api/metrics"
	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/report"
	"github.com/DjordjeVuckovic/sublist-eval/internal/parser"
	"github.com/DjordjeVuckovic/sublist-eval/internal/quality"
	"github.com/DjordjeVuckovic/sublist-eval/internal/rule"
	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
	"github.com/DjordjeVuckovic/sublist-eval/pkg/pagination"
)

// EvaluationRouter evaluates reports against one dataset and target fixed at
// startup. The dataset is shared read-only between requests.
type EvaluationRouter struct {
	e       *echo.Echo
	ds      *dataset.Dataset
	target  rule.Target
	store   store.Store
	metrics *metrics.Metrics
}

func NewEvaluationRouter(e *echo.Echo, ds *dataset.Dataset, target rule.Target, s store.Store, m *metrics.Metrics) *EvaluationRouter {
	return &EvaluationRouter{
		e:       e,
		ds:      ds,
		target:  target,
		store:   s,
		metrics: m,
	}
}

func (r *EvaluationRouter) Bind() {
	g := r.e.Group("/api/v1/evaluations")
	g.POST("", r.createHandler)
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
}

// createHandler godoc
// @Summary Evaluate a subgroup-list report
// @Description Parses the report, recomputes every subgroup's coverage against the configured dataset and stores the aggregated quality and coverage
// @Tags evaluations
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Report to evaluate"
// @Success 201 {object} dto.Evaluation
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/evaluations [post]
func (r *EvaluationRouter) createHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Report) == "" {
		return apperr.NewValidation("report is required")
	}

	measure, err := quality.ByName(req.QualityMeasure)
	if err != nil {
		return apperr.NewValidationWrap("invalid quality_measure", err)
	}

	ev, err := eval.NewEvaluator(r.ds, r.target, measure, parser.Options{Strict: req.Strict})
	if err != nil {
		r.metrics.Failed(measure.Name(), metrics.StatusError)
		return err
	}

	start := time.Now()
	res, err := ev.Evaluate(strings.NewReader(req.Report))
	if err != nil {
		r.metrics.Failed(measure.Name(), metrics.StatusInvalid)
		return err
	}
	r.metrics.Evaluated(measure.Name(), len(res.Lists), res.MeanQuality, time.Since(start))

	record := &store.Evaluation{
		Target:           r.target.String(),
		Measure:          measure.Name(),
		Strict:           req.Strict,
		MeanQuality:      res.MeanQuality,
		CoverageFraction: res.CoverageFraction,
		CoveredRows:      res.CoveredRows,
		TotalRows:        res.TotalRows,
		Lists:            report.ListEntries(res),
	}
	if _, err := r.store.Save(c.Request().Context(), record); err != nil {
		return err
	}

	slog.Info("Report evaluated", "id", record.ID, "lists", len(res.Lists), "quality", res.MeanQuality, "coverage", res.CoverageFraction)
	return c.JSON(http.StatusCreated, dto.FromEvaluation(record))
}

// getHandler godoc
// @Summary Get an evaluation
// @Tags evaluations
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.Evaluation
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/evaluations/{id} [get]
func (r *EvaluationRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid evaluation id", err)
	}

	ev, err := r.store.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "evaluation not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromEvaluation(ev))
}

// listHandler godoc
// @Summary List evaluations
// @Description Newest first
// @Tags evaluations
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} pagination.OffsetResult[dto.EvaluationSummary]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/evaluations [get]
func (r *EvaluationRouter) listHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	req.Normalize()

	items, total, err := r.store.List(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		return err
	}

	summaries := make([]dto.EvaluationSummary, 0, len(items))
	for _, ev := range items {
		summaries = append(summaries, dto.SummaryFromEvaluation(ev))
	}

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(summaries, total, req.Page, req.Size))
}
