package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name      string
		storeType string
		connStr   string
		want      store.Type
		wantErr   bool
	}{
		{name: "default in memory", want: store.InMem},
		{name: "explicit in memory", storeType: "in_mem", want: store.InMem},
		{name: "pg", storeType: "pg", connStr: "postgres://localhost/db", want: store.PG},
		{name: "pg without connection string", storeType: "pg", wantErr: true},
		{name: "unknown", storeType: "es", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORE_TYPE", tt.storeType)
			t.Setenv("PG_CONNECTION_STRING", tt.connStr)

			cfg, err := LoadEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Type)
			if tt.want == store.PG {
				require.NotNil(t, cfg.Pg)
				assert.Equal(t, tt.connStr, cfg.Pg.ConnStr)
			}
		})
	}
}

func TestNewBackend_InMem(t *testing.T) {
	b, err := NewBackend(context.Background(), &StoreConfig{Type: store.InMem})
	require.NoError(t, err)
	defer b.Close()

	assert.NotNil(t, b.Store)
	assert.True(t, b.HealthChecker.Healthy(context.Background()))
}

func TestNewBackend_Unsupported(t *testing.T) {
	_, err := NewBackend(context.Background(), &StoreConfig{Type: "es"})
	assert.Error(t, err)
}
