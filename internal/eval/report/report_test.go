package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/runner"
	"github.com/DjordjeVuckovic/sublist-eval/internal/mining"
	"github.com/DjordjeVuckovic/sublist-eval/internal/parser"
	"github.com/DjordjeVuckovic/sublist-eval/internal/quality"
)

const csvData = `x,label
0,pos
1,pos
2,neg
3,neg
`

const reportText = `## Subgroup list (1 subgroups) ##
s1: Description: [x <= 1], Target: label = 'pos'
## Subgroup list (1 subgroups) ##
s1: Description: [x = 2], Target: label = 'pos'
`

func testEvaluation(t *testing.T) *runner.EvaluationResult {
	t.Helper()
	ds, err := dataset.ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	target, err := eval.ResolveTarget(ds, "label", "pos")
	require.NoError(t, err)
	ev, err := eval.NewEvaluator(ds, target, quality.WRAcc{}, parser.Options{})
	require.NoError(t, err)
	res, err := ev.Evaluate(strings.NewReader(reportText))
	require.NoError(t, err)

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &runner.EvaluationResult{
		ID:      uuid.New(),
		Dataset: "data.csv",
		Target:  target,
		Measure: "wracc",
		Rows:    4,
		TP:      2,
		FP:      2,
		Runs: []*runner.RunResult{
			{
				ID:         uuid.New(),
				Name:       "ok",
				Report:     "0.5_0.1_0.0.txt",
				Params:     mining.Params{Beta: 0.5, MaxPositiveOverlap: 0.1},
				Result:     res,
				StartedAt:  start,
				FinishedAt: start.Add(time.Second),
			},
			{
				ID:         uuid.New(),
				Name:       "broken",
				Report:     "missing.txt",
				Params:     mining.Params{Beta: 1},
				StartedAt:  start,
				FinishedAt: start,
				Error:      errors.New("open missing.txt: no such file"),
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	er := testEvaluation(t)
	r := Generate(er)

	assert.Equal(t, er.ID.String(), r.Meta.EvaluationID)
	assert.Equal(t, "label = 'pos'", r.Meta.Target)
	require.Len(t, r.Runs, 2)

	ok := r.Runs[0]
	assert.Empty(t, ok.Error)
	require.Len(t, ok.Lists, 2)
	assert.Equal(t, 2, ok.Lists[0].Coverage)
	require.Len(t, ok.Lists[0].Subgroups, 1)
	sg := ok.Lists[0].Subgroups[0]
	assert.Equal(t, "[x <= 1]", sg.Description)
	assert.Equal(t, 2, sg.TP)
	assert.Equal(t, 0, sg.FP)
	assert.InDelta(t, 0.75, ok.CoverageFraction, 1e-12)

	broken := r.Runs[1]
	assert.Contains(t, broken.Error, "no such file")
	assert.Empty(t, broken.Lists)
	assert.Zero(t, broken.MeanQuality)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(Generate(testEvaluation(t)), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Runs, 2)
	assert.Equal(t, "ok", decoded.Runs[0].Name)
	assert.Equal(t, "broken", decoded.Runs[1].Name)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate(testEvaluation(t)), &buf)
	out := buf.String()

	assert.Contains(t, out, "Target: label = 'pos'")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "broken: open missing.txt")
}

func TestWriteRunLog(t *testing.T) {
	er := testEvaluation(t)

	var buf bytes.Buffer
	require.NoError(t, WriteRunLog(&buf, er, er.Runs[0]))
	out := buf.String()

	assert.Contains(t, out, "Number of instances: 4")
	assert.Contains(t, out, "beta_parameter = 0.5")
	assert.Contains(t, out, "maximum_negative_overlap = 0.0")
	assert.Contains(t, out, "## Subgroup list (1 subgroups) ##")
	assert.Contains(t, out, "coverage = 0.75")
	assert.Contains(t, out, "Start time: 2024-03-01 10:00:00.000000")
}

func TestWriteRunLogs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, WriteRunLogs(dir, testEvaluation(t)))

	_, err := os.Stat(filepath.Join(dir, "log_0.5_0.1_0.0.txt"))
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "log_1.0_0.0_0.0.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "error = open missing.txt")
}
