package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
	"github.com/DjordjeVuckovic/sublist-eval/internal/store/pg"
)

type StoreConfig struct {
	store.Type
	Pg *pg.PoolConfig
}

// LoadEnv reads STORE_TYPE (default in_mem) and, for pg,
// PG_CONNECTION_STRING.
func LoadEnv() (*StoreConfig, error) {
	storeType := store.Type(os.Getenv("STORE_TYPE"))
	if storeType == "" {
		slog.Info("STORE_TYPE is not set, using in-memory store")
		storeType = store.InMem
	}
	if storeType != store.PG && storeType != store.InMem {
		slog.Error("Invalid STORE_TYPE environment variable value", "value", storeType)
		return nil, fmt.Errorf(
			"invalid STORE_TYPE environment variable value: %s, expected one of %v",
			storeType,
			[]store.Type{store.PG, store.InMem})
	}

	var pgCfg *pg.PoolConfig
	if storeType == store.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StoreConfig{
		Type: storeType,
		Pg:   pgCfg,
	}, nil
}
