package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Evaluated(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Evaluated("wracc", 3, 0.12, 20*time.Millisecond)
	m.Evaluated("wracc", 2, 0.05, 10*time.Millisecond)
	m.Failed("wracc", StatusInvalid)

	expected := `
		# HELP sleval_evaluations_total Total number of report evaluations by quality measure and status
		# TYPE sleval_evaluations_total counter
		sleval_evaluations_total{quality_measure="wracc",status="invalid"} 1
		sleval_evaluations_total{quality_measure="wracc",status="success"} 2
	`
	require.NoError(t, testutil.CollectAndCompare(m.EvaluationCounter, strings.NewReader(expected)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EvaluationDuration))
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
