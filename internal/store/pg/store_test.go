package pg

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/report"
	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
	pkgtesting "github.com/DjordjeVuckovic/sublist-eval/pkg/testing"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

// TestMain starts a Postgres container with the migrations applied. Without
// a container runtime the tests in this package are skipped.
func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "sublist_eval_test",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		slog.Warn("Postgres container unavailable", "error", err)
		os.Exit(m.Run())
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	if testPool == nil {
		t.Skip("postgres container not available")
	}
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE evaluations")
	require.NoError(t, err)

	s, err := NewStore(testPool)
	require.NoError(t, err)
	return s
}

func TestStore_SaveGet(t *testing.T) {
	s := newTestStore(t)

	ev := &store.Evaluation{
		Target:           "label = 'pos'",
		Measure:          "wracc",
		Strict:           true,
		MeanQuality:      0.25,
		CoverageFraction: 0.4,
		CoveredRows:      4,
		TotalRows:        10,
		Lists: []report.ListEntry{{
			Quality:  0.2,
			Coverage: 4,
			Subgroups: []report.SubgroupEntry{
				{Description: "[x <= 1]", Target: "label = 'pos'", TP: 2, FP: 0},
			},
		}},
	}

	id, err := s.Save(testCtx, ev)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, id)

	got, err := s.Get(testCtx, id)
	require.NoError(t, err)
	assert.Equal(t, ev.Target, got.Target)
	assert.True(t, got.Strict)
	assert.InDelta(t, 0.25, got.MeanQuality, 1e-12)
	assert.Equal(t, ev.Lists, got.Lists)
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(testCtx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_List(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.Save(testCtx, &store.Evaluation{Target: "t", Measure: "wracc", Lists: []report.ListEntry{}})
		require.NoError(t, err)
	}

	items, total, err := s.List(testCtx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 2)
	assert.False(t, items[0].CreatedAt.Before(items[1].CreatedAt))
}

func TestHealthChecker(t *testing.T) {
	if testPool == nil {
		t.Skip("postgres container not available")
	}
	assert.True(t, NewHealthChecker(testPool).Healthy(testCtx))
	assert.False(t, NewHealthChecker(nil).Healthy(testCtx))
}

func TestMigrate_Idempotent(t *testing.T) {
	if testPool == nil {
		t.Skip("postgres container not available")
	}
	require.NoError(t, Migrate(testCtx, testPool))
	require.NoError(t, Migrate(testCtx, testPool))
}
