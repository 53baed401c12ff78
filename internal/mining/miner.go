// Package mining describes the external subgroup-list miner this module
// consumes reports from, and runs it as a subprocess.
package mining

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/sublist-eval/internal/rule"
)

// Params are forwarded verbatim to the miner.
type Params struct {
	MaxLists            int     `yaml:"max_lists" json:"max_lists"`
	MaxSubgroupsPerList int     `yaml:"max_subgroups_per_list" json:"max_subgroups_per_list"`
	Beta                float64 `yaml:"beta" json:"beta"`
	MaxPositiveOverlap  float64 `yaml:"max_positive_overlap" json:"max_positive_overlap"`
	MaxNegativeOverlap  float64 `yaml:"max_negative_overlap" json:"max_negative_overlap"`
	InputSubgroupsPath  string  `yaml:"input_subgroups" json:"input_subgroups,omitempty"`
}

type Request struct {
	DatasetPath string
	Target      rule.Target
	Params      Params
	// OutputPath is where the miner must write its report.
	OutputPath string
}

type Miner interface {
	Mine(ctx context.Context, req Request) error
}

// MinerFunc adapts a function to Miner.
type MinerFunc func(ctx context.Context, req Request) error

func (f MinerFunc) Mine(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// ReportFileName names a report after its diversity parameters,
// "<beta>_<pos>_<neg>.txt".
func ReportFileName(p Params) string {
	return fmt.Sprintf("%s_%s_%s.txt", FormatFloat(p.Beta), FormatFloat(p.MaxPositiveOverlap), FormatFloat(p.MaxNegativeOverlap))
}

// ReportPath joins dir and ReportFileName.
func ReportPath(dir string, p Params) string {
	return filepath.Join(dir, ReportFileName(p))
}

// FormatFloat always keeps a decimal point, so 0 is written as "0.0".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
