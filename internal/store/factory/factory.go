package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
	"github.com/DjordjeVuckovic/sublist-eval/internal/store/in_mem"
	"github.com/DjordjeVuckovic/sublist-eval/internal/store/pg"
	pkgserver "github.com/DjordjeVuckovic/sublist-eval/pkg/server"
)

// Backend is a ready store together with its health check and the function
// releasing its resources.
type Backend struct {
	Store         store.Store
	HealthChecker pkgserver.HealthChecker
	Close         func()
}

func NewBackend(ctx context.Context, cfg *StoreConfig) (*Backend, error) {
	switch cfg.Type {
	case store.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		if err := pg.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}

		s, err := pg.NewStore(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}

		return &Backend{
			Store:         s,
			HealthChecker: pg.NewHealthChecker(pool),
			Close:         pool.Close,
		}, nil

	case store.InMem:
		return &Backend{
			Store:         in_mem.NewStore(),
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}
