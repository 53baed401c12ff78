package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/sublist-eval/internal/mining"
	"github.com/DjordjeVuckovic/sublist-eval/internal/quality"
)

const (
	DefaultOutputDir           = "output"
	DefaultMaxLists            = 3
	DefaultMaxSubgroupsPerList = 10
)

func LoadFromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*EvalSpec, error) {
	var s EvalSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks a spec built in code and fills its defaults, as Parse
// does for YAML input.
func (s *EvalSpec) Validate() error {
	return validate(s)
}

func validate(s *EvalSpec) error {
	if s.Dataset == "" {
		return fmt.Errorf("spec has no dataset")
	}
	if s.Target.Attribute == "" {
		return fmt.Errorf("spec target has no attribute")
	}
	if s.Target.Value == "" {
		return fmt.Errorf("spec target has no value")
	}
	if len(s.Runs) == 0 && s.Grid == nil {
		return fmt.Errorf("spec has no runs and no grid")
	}
	if _, err := quality.ByName(s.QualityMeasure); err != nil {
		return err
	}

	seen := make(map[string]bool, len(s.Runs))
	for i, r := range s.Runs {
		if r.Name == "" {
			return fmt.Errorf("run at index %d has no name", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate run name %q", r.Name)
		}
		seen[r.Name] = true
		if err := validateParams(r.Params); err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
	}

	if s.Grid != nil {
		if len(s.Grid.Beta) == 0 || len(s.Grid.MaxPositiveOverlap) == 0 || len(s.Grid.MaxNegativeOverlap) == 0 {
			return fmt.Errorf("grid needs at least one value for beta, max_positive_overlap and max_negative_overlap")
		}
		for _, p := range s.Grid.params() {
			if err := validateParams(p); err != nil {
				return fmt.Errorf("grid: %w", err)
			}
		}
	}

	if s.Miner != nil {
		if len(s.Miner.Command) == 0 {
			return fmt.Errorf("miner has no command")
		}
		if s.Miner.MaxLists <= 0 {
			s.Miner.MaxLists = DefaultMaxLists
		}
		if s.Miner.MaxSubgroupsPerList <= 0 {
			s.Miner.MaxSubgroupsPerList = DefaultMaxSubgroupsPerList
		}
	}

	if s.QualityMeasure == "" {
		s.QualityMeasure = quality.DefaultMeasure
	}
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	return nil
}

func validateParams(p ParamsSpec) error {
	for name, v := range map[string]float64{
		"beta":                 p.Beta,
		"max_positive_overlap": p.MaxPositiveOverlap,
		"max_negative_overlap": p.MaxNegativeOverlap,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, v)
		}
	}
	return nil
}

func (g *Grid) params() []ParamsSpec {
	var out []ParamsSpec
	for _, b := range g.Beta {
		for _, pos := range g.MaxPositiveOverlap {
			for _, neg := range g.MaxNegativeOverlap {
				out = append(out, ParamsSpec{Beta: b, MaxPositiveOverlap: pos, MaxNegativeOverlap: neg})
			}
		}
	}
	return out
}

// Expand returns the explicit runs followed by one run per grid point. Runs
// without a report path get "<output_dir>/<beta>_<pos>_<neg>.txt".
func (s *EvalSpec) Expand() []Run {
	runs := make([]Run, 0, len(s.Runs))
	runs = append(runs, s.Runs...)

	if s.Grid != nil {
		for _, p := range s.Grid.params() {
			mp := s.MiningParams(p)
			runs = append(runs, Run{
				Name:   fmt.Sprintf("beta=%v,pos=%v,neg=%v", p.Beta, p.MaxPositiveOverlap, p.MaxNegativeOverlap),
				Params: p,
				Report: mining.ReportPath(s.OutputDir, mp),
			})
		}
	}

	for i := range runs {
		if runs[i].Report == "" {
			runs[i].Report = mining.ReportPath(s.OutputDir, s.MiningParams(runs[i].Params))
		}
	}
	return runs
}

// MiningParams merges run parameters with the miner defaults.
func (s *EvalSpec) MiningParams(p ParamsSpec) mining.Params {
	mp := mining.Params{
		MaxLists:            DefaultMaxLists,
		MaxSubgroupsPerList: DefaultMaxSubgroupsPerList,
		Beta:                p.Beta,
		MaxPositiveOverlap:  p.MaxPositiveOverlap,
		MaxNegativeOverlap:  p.MaxNegativeOverlap,
	}
	if s.Miner != nil {
		mp.MaxLists = s.Miner.MaxLists
		mp.MaxSubgroupsPerList = s.Miner.MaxSubgroupsPerList
		mp.InputSubgroupsPath = s.Miner.InputSubgroups
	}
	return mp
}
