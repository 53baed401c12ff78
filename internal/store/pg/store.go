package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
)

const evaluationColumns = `id, created_at, target, quality_measure, strict, mean_quality,
        coverage_fraction, covered_rows, total_rows, lists`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) (*Store, error) {
	if pool == nil {
		return nil, errors.New("nil connection pool")
	}
	return &Store{db: pool.conn}, nil
}

func (s *Store) Save(ctx context.Context, ev *store.Evaluation) (uuid.UUID, error) {
	ev.Prepare()

	listsJSON, err := json.Marshal(ev.Lists)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal lists: %w", err)
	}

	cmd := `
        INSERT INTO evaluations (` + evaluationColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		ev.ID,
		ev.CreatedAt,
		ev.Target,
		ev.Measure,
		ev.Strict,
		ev.MeanQuality,
		ev.CoverageFraction,
		ev.CoveredRows,
		ev.TotalRows,
		listsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*store.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = $1`

	ev, err := scanEvaluation(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *Store) List(ctx context.Context, page, size int) ([]store.Evaluation, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count evaluations: %w", err)
	}

	query := `SELECT ` + evaluationColumns + `
        FROM evaluations
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(ctx, query, size, store.Offset(page, size))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var items []store.Evaluation
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read evaluations: %w", err)
	}

	return items, total, nil
}

func scanEvaluation(row pgx.Row) (*store.Evaluation, error) {
	var ev store.Evaluation
	var listsJSON []byte

	if err := row.Scan(
		&ev.ID,
		&ev.CreatedAt,
		&ev.Target,
		&ev.Measure,
		&ev.Strict,
		&ev.MeanQuality,
		&ev.CoverageFraction,
		&ev.CoveredRows,
		&ev.TotalRows,
		&listsJSON,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan evaluation: %w", err)
	}

	if err := json.Unmarshal(listsJSON, &ev.Lists); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lists: %w", err)
	}

	return &ev, nil
}
