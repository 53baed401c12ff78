package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/sublist-eval/db"
)

// Migrate applies the embedded up migrations. Every statement is idempotent.
func Migrate(ctx context.Context, pool *ConnectionPool) error {
	stmts, err := db.UpStatements()
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := pool.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}

	slog.Info("Migrations applied", "statements", len(stmts))
	return nil
}
