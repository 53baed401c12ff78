package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/spec"
	"github.com/DjordjeVuckovic/sublist-eval/internal/mining"
)

const minedReport = `beta_parameter = 0.5
## Subgroup list (1 subgroups) ##
s1: Description: [x <= 1], Target: label = 'pos'
## Subgroup list (2 subgroups) ##
s1: Description: [x = 2], Target: label = 'pos'
s2: Description: [x = 5], Target: label = 'pos'
`

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("x,label\n")
	for i := 0; i < 10; i++ {
		label := "neg"
		if i < 3 {
			label = "pos"
		}
		fmt.Fprintf(&sb, "%d,%s\n", i, label)
	}
	ds, err := dataset.ReadCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return ds
}

func testSpec(t *testing.T, dir string) *spec.EvalSpec {
	t.Helper()
	yaml := `
dataset: data.csv
target: {attribute: label, value: pos}
output_dir: ` + dir + `
miner:
  command: [unused]
runs:
  - name: existing
    report: ` + filepath.Join(dir, "existing.txt") + `
  - name: mined
    params: {beta: 0.5, max_positive_overlap: 0.1, max_negative_overlap: 0.2}
`
	es, err := spec.Parse([]byte(yaml))
	require.NoError(t, err)
	return es
}

func TestRunner_RunAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte(minedReport), 0o644))

	var requests []mining.Request
	miner := mining.MinerFunc(func(ctx context.Context, req mining.Request) error {
		requests = append(requests, req)
		return os.WriteFile(req.OutputPath, []byte(minedReport), 0o644)
	})

	r := New(DefaultConfig(), miner)
	er, err := r.RunAll(context.Background(), testSpec(t, dir), testDataset(t))
	require.NoError(t, err)

	assert.Equal(t, 10, er.Rows)
	assert.Equal(t, 3, er.TP)
	assert.Equal(t, 7, er.FP)
	assert.Equal(t, "wracc", er.Measure)
	require.Len(t, er.Runs, 2)
	assert.Zero(t, er.FailedRuns())

	existing := er.Runs[0]
	assert.False(t, existing.Mined)
	require.NotNil(t, existing.Result)
	assert.Len(t, existing.Result.Lists, 2)
	assert.InDelta(t, 0.4, existing.Result.CoverageFraction, 1e-12)

	mined := er.Runs[1]
	assert.True(t, mined.Mined)
	assert.Equal(t, filepath.Join(dir, "0.5_0.1_0.2.txt"), mined.Report)
	require.Len(t, requests, 1)
	assert.Equal(t, mined.Report, requests[0].OutputPath)
	assert.Equal(t, "data.csv", requests[0].DatasetPath)
	assert.Equal(t, 0.2, requests[0].Params.MaxNegativeOverlap)
	assert.Equal(t, spec.DefaultMaxLists, requests[0].Params.MaxLists)

	assert.InDelta(t, existing.Result.MeanQuality, mined.Result.MeanQuality, 1e-12)
	assert.NotEqual(t, existing.ID, mined.ID)
}

func TestRunner_FailedRunsAreRecorded(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing report without miner", func(t *testing.T) {
		r := New(DefaultConfig(), nil)
		er, err := r.RunAll(context.Background(), testSpec(t, dir), testDataset(t))
		require.NoError(t, err)
		assert.Equal(t, 2, er.FailedRuns())
		for _, rr := range er.Runs {
			assert.Nil(t, rr.Result)
			assert.ErrorContains(t, rr.Error, "open report")
		}
	})

	t.Run("miner error", func(t *testing.T) {
		miner := mining.MinerFunc(func(ctx context.Context, req mining.Request) error {
			return errors.New("boom")
		})
		r := New(Config{ForceMine: true}, miner)
		er, err := r.RunAll(context.Background(), testSpec(t, dir), testDataset(t))
		require.NoError(t, err)
		require.Len(t, er.Runs, 2)
		assert.ErrorContains(t, er.Runs[0].Error, "mine: boom")
	})

	t.Run("orphan subgroup fails the run", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"),
			[]byte("s1: Description: [x = 1], Target: label = 'pos'\n"), 0o644))

		r := New(Config{SkipMining: true}, nil)
		er, err := r.RunAll(context.Background(), testSpec(t, dir), testDataset(t))
		require.NoError(t, err)

		var ose *apperr.OrphanSubgroupError
		assert.ErrorAs(t, er.Runs[0].Error, &ose)
	})
}

func TestRunner_SetupErrors(t *testing.T) {
	es := testSpec(t, t.TempDir())
	es.Target.Attribute = "missing"

	_, err := New(DefaultConfig(), nil).RunAll(context.Background(), es, testDataset(t))
	assert.ErrorContains(t, err, "not in dataset")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(DefaultConfig(), nil).RunAll(ctx, testSpec(t, t.TempDir()), testDataset(t))
	assert.ErrorIs(t, err, context.Canceled)
}
