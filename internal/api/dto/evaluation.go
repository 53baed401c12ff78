package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/report"
	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
)

// EvaluateRequest carries the text of a miner report.
type EvaluateRequest struct {
	Report         string `json:"report" example:"## Subgroup list (1 subgroups) ##\ns1: Description: [x <= 1], Target: label = 'pos'"`
	Strict         bool   `json:"strict" example:"false"`
	QualityMeasure string `json:"quality_measure" example:"wracc"`
}

type Evaluation struct {
	ID               uuid.UUID          `json:"id"`
	CreatedAt        time.Time          `json:"created_at"`
	Target           string             `json:"target" example:"label = 'pos'"`
	QualityMeasure   string             `json:"quality_measure" example:"wracc"`
	Strict           bool               `json:"strict"`
	MeanQuality      float64            `json:"mean_quality" example:"0.25"`
	CoverageFraction float64            `json:"coverage_fraction" example:"0.4"`
	CoveredRows      int                `json:"covered_rows"`
	TotalRows        int                `json:"total_rows"`
	Lists            []report.ListEntry `json:"lists,omitempty"`
}

// EvaluationSummary is an Evaluation without its lists.
type EvaluationSummary struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Target           string    `json:"target"`
	QualityMeasure   string    `json:"quality_measure"`
	MeanQuality      float64   `json:"mean_quality"`
	CoverageFraction float64   `json:"coverage_fraction"`
	Lists            int       `json:"lists"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

func FromEvaluation(ev *store.Evaluation) Evaluation {
	return Evaluation{
		ID:               ev.ID,
		CreatedAt:        ev.CreatedAt,
		Target:           ev.Target,
		QualityMeasure:   ev.Measure,
		Strict:           ev.Strict,
		MeanQuality:      ev.MeanQuality,
		CoverageFraction: ev.CoverageFraction,
		CoveredRows:      ev.CoveredRows,
		TotalRows:        ev.TotalRows,
		Lists:            ev.Lists,
	}
}

func SummaryFromEvaluation(ev store.Evaluation) EvaluationSummary {
	return EvaluationSummary{
		ID:               ev.ID,
		CreatedAt:        ev.CreatedAt,
		Target:           ev.Target,
		QualityMeasure:   ev.Measure,
		MeanQuality:      ev.MeanQuality,
		CoverageFraction: ev.CoverageFraction,
		Lists:            len(ev.Lists),
	}
}
