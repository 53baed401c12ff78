package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/rule"
)

var target = rule.Target{Attribute: "organism", Value: rule.Quoted("ENT-R")}

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	csvData := `age,ward,organism
20,ICU,ENT-R
35,ICU,ECOLI
50,ER,ENT-R
65,ER,ECOLI
80,ICU,ENT-R
45,GEN,ECOLI`

	ds, err := dataset.ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	return ds
}

func newParser(t *testing.T, opts Options) *Parser {
	t.Helper()
	p, err := New(testDataset(t), target, opts)
	require.NoError(t, err)
	return p
}

const twoListReport = `Number of instances: 6
#########################################################
## Subgroup list (2 subgroups) ##
s1: Description: [ward = 'ICU'], Target: organism = 'ENT-R'
s2: Description: [age >= 50, ward = 'ER'], Target: organism = 'ENT-R'
## Subgroup list (1 subgroups) ##
s1: Description: [age < 40], Target: organism = 'ENT-R'
---
quality = 0.1
`

func TestParse_ListsInFileOrder(t *testing.T) {
	p := newParser(t, Options{})

	lists, err := p.Parse(strings.NewReader(twoListReport))
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, 2, lists[0].Len())
	require.Equal(t, 1, lists[1].Len())

	first := lists[0].Subgroups()
	assert.Equal(t, "[ward = 'ICU']", first[0].Rule.Description.String())
	assert.Equal(t, []int{0, 4}, first[0].TruePositives.Indices())
	assert.Equal(t, []int{1}, first[0].FalsePositives.Indices())
	assert.Equal(t, []int{2}, first[1].TruePositives.Indices())
	assert.Equal(t, []int{3}, first[1].FalsePositives.Indices())

	second := lists[1].Subgroups()
	assert.Equal(t, []int{0}, second[0].TruePositives.Indices())
	assert.Equal(t, []int{1}, second[0].FalsePositives.Indices())

	for _, l := range lists {
		assert.Equal(t, 6, l.TotalRows())
		assert.Equal(t, []int{0, 2, 4}, l.TargetMask().Indices())
		assert.Equal(t, []int{1, 3, 5}, l.NonTargetMask().Indices())
		for _, s := range l.Subgroups() {
			overlap, err := s.TruePositives.And(s.FalsePositives)
			require.NoError(t, err)
			assert.True(t, overlap.None())
		}
	}
}

func TestParse_EmptyAndHeaderOnly(t *testing.T) {
	p := newParser(t, Options{})

	lists, err := p.Parse(strings.NewReader("just commentary\n\n"))
	require.NoError(t, err)
	assert.Empty(t, lists)

	lists, err = p.Parse(strings.NewReader("## Subgroup list (0 subgroups) ##\n## Subgroup list () ##"))
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, 0, lists[0].Len())
	assert.Equal(t, 0, lists[1].Len())
}

func TestParse_CRLF(t *testing.T) {
	p := newParser(t, Options{})
	report := strings.ReplaceAll(twoListReport, "\n", "\r\n")

	lists, err := p.Parse(strings.NewReader(report))
	require.NoError(t, err)
	assert.Len(t, lists, 2)
}

func TestParse_OrphanSubgroup(t *testing.T) {
	p := newParser(t, Options{})
	report := "header text\ns1: Description: [ward = 'ICU'], Target: organism = 'ENT-R'\n## Subgroup list (1) ##\n"

	lists, err := p.Parse(strings.NewReader(report))
	assert.Nil(t, lists)

	var ose *apperr.OrphanSubgroupError
	require.ErrorAs(t, err, &ose)
	assert.Equal(t, 2, ose.Line)
}

func TestParse_NearMissLines(t *testing.T) {
	report := `## Subgroup list (1) ##
## Subgroup list 2 ##
s1 Description: [ward = 'ICU'], Target: organism = 'ENT-R'
s2: Description: [ward = 'ICU']
s3: Description: [ward = 'ER'], Target: organism = 'ENT-R'
`

	t.Run("lenient skips them", func(t *testing.T) {
		p := newParser(t, Options{})
		lists, err := p.Parse(strings.NewReader(report))
		require.NoError(t, err)
		require.Len(t, lists, 1)
		require.Equal(t, 1, lists[0].Len())
		assert.Equal(t, "[ward = 'ER']", lists[0].Subgroups()[0].Rule.Description.String())
	})

	t.Run("strict rejects them", func(t *testing.T) {
		p := newParser(t, Options{Strict: true})
		lists, err := p.Parse(strings.NewReader(report))
		assert.Nil(t, lists)

		var use *apperr.UnrecognizedStructuralLineError
		require.ErrorAs(t, err, &use)
		assert.Equal(t, 2, use.Line)
		assert.Equal(t, "## Subgroup list 2 ##", use.Text)
	})

	t.Run("strict still ignores plain commentary", func(t *testing.T) {
		p := newParser(t, Options{Strict: true})
		lists, err := p.Parse(strings.NewReader("beta_parameter = 0.5\n# single hash\n## Subgroup list (0) ##\n"))
		require.NoError(t, err)
		assert.Len(t, lists, 1)
	})
}

func TestParse_EvaluationErrorsAbort(t *testing.T) {
	tests := []struct {
		name   string
		report string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unknown attribute",
			report: "## Subgroup list (1) ##\ns1: Description: [weight > 3], Target: organism = 'ENT-R'\n",
			check: func(t *testing.T, err error) {
				var mpe *apperr.MalformedPredicateError
				require.ErrorAs(t, err, &mpe)
				var le *apperr.LineError
				require.ErrorAs(t, err, &le)
				assert.Equal(t, 2, le.Line)
			},
		},
		{
			name:   "bad description syntax",
			report: "## Subgroup list (1) ##\ns1: Description: [age >> 3], Target: organism = 'ENT-R'\n",
			check: func(t *testing.T, err error) {
				var pse *apperr.PredicateSyntaxError
				assert.ErrorAs(t, err, &pse)
			},
		},
		{
			name:   "different target",
			report: "## Subgroup list (1) ##\ns1: Description: [age > 3], Target: organism = 'ECOLI'\n",
			check: func(t *testing.T, err error) {
				var tme *apperr.TargetMismatchError
				require.ErrorAs(t, err, &tme)
				assert.Equal(t, "organism = 'ECOLI'", tme.Got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(t, Options{})
			lists, err := p.Parse(strings.NewReader(tt.report))
			assert.Nil(t, lists)
			tt.check(t, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	p := newParser(t, Options{})

	path := filepath.Join(t.TempDir(), "0.5_0.1_0.1.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoListReport), 0o644))

	lists, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, lists, 2)

	_, err = p.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "open report")
}

func TestNew_UnknownTargetAttribute(t *testing.T) {
	_, err := New(testDataset(t), rule.Target{Attribute: "nope", Value: rule.Quoted("x")}, Options{})
	var mpe *apperr.MalformedPredicateError
	assert.ErrorAs(t, err, &mpe)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		kind lineKind
	}{
		{"## Subgroup list (3 subgroups) ##", lineHeader},
		{"## Subgroup list (a) (b) ##", lineHeader},
		{"## Subgroup list (3 subgroups) ## trailing", lineNearMiss},
		{" ## Subgroup list (3) ##", lineOther},
		{"s12: Description: [a = 1], Target: t = 'x'", lineRecord},
		{"s: Description: [a = 1], Target: t = 'x'", lineOther},
		{"s7: something else", lineNearMiss},
		{"quality = 0.3", lineOther},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.kind, classify(1, tt.text).kind)
		})
	}

	rec := classify(4, "s12: Description: [a = 1, b = 'x, y'], Target: t = 'x'")
	assert.Equal(t, "12", rec.index)
	assert.Equal(t, "[a = 1, b = 'x, y']", rec.description)
	assert.Equal(t, "t = 'x'", rec.target)
}
