// Package store persists evaluation results served by the HTTP API.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/report"
)

// Evaluation is one evaluated report as it is stored and returned.
type Evaluation struct {
	ID               uuid.UUID          `json:"id"`
	CreatedAt        time.Time          `json:"created_at"`
	Target           string             `json:"target"`
	Measure          string             `json:"quality_measure"`
	Strict           bool               `json:"strict"`
	MeanQuality      float64            `json:"mean_quality"`
	CoverageFraction float64            `json:"coverage_fraction"`
	CoveredRows      int                `json:"covered_rows"`
	TotalRows        int                `json:"total_rows"`
	Lists            []report.ListEntry `json:"lists"`
}

// Prepare assigns an ID and creation time when they are missing.
func (e *Evaluation) Prepare() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
}

type Store interface {
	Save(ctx context.Context, ev *Evaluation) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*Evaluation, error)
	// List returns one page of evaluations, newest first, and the total count.
	List(ctx context.Context, page, size int) ([]Evaluation, int64, error)
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

var ErrNotFound = errors.New("evaluation not found")

// Offset converts a 1-based page into a row offset.
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
