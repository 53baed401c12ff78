package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/runner"
	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/spec"
)

type cliConfig struct {
	Mode        string
	SpecPath    string
	DatasetPath string
	TargetAttr  string
	TargetValue string
	ReportPath  string
	Measure     string
	Strict      bool
	MinerCmd    string
	ForceMine   bool
	NoMine      bool
	Output      string
	LogDir      string
	Verbose     bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", "eval", "Run mode: eval or measures")
	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to evaluation spec YAML (multi-run mode)")
	flag.StringVar(&cfg.DatasetPath, "dataset", "", "Path to the dataset CSV (single-report mode)")
	flag.StringVar(&cfg.TargetAttr, "target-attr", "", "Target attribute name")
	flag.StringVar(&cfg.TargetValue, "target-value", "", "Target attribute value")
	flag.StringVar(&cfg.ReportPath, "report", "", "Path to a miner report (single-report mode)")
	flag.StringVar(&cfg.Measure, "measure", "", "Quality measure, overrides the spec (default wracc)")
	flag.BoolVar(&cfg.Strict, "strict", false, "Fail on lines that resemble a header or record but do not match")
	flag.StringVar(&cfg.MinerCmd, "miner", "", "Miner command line with {placeholders}, overrides the spec")
	flag.BoolVar(&cfg.ForceMine, "force-mine", false, "Re-run the miner even when a report exists")
	flag.BoolVar(&cfg.NoMine, "no-mine", false, "Never run the miner, evaluate existing reports only")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	flag.StringVar(&cfg.LogDir, "log-dir", "", "Directory for per-run experiment logs, overrides the spec")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	flag.Parse()
	return cfg
}

func (c cliConfig) runnerConfig() runner.Config {
	return runner.Config{
		ForceMine:  c.ForceMine,
		SkipMining: c.NoMine,
	}
}

// loadSpec reads the spec file, or builds a one-run spec from the
// single-report flags, then applies flag overrides.
func (c cliConfig) loadSpec() (*spec.EvalSpec, error) {
	var es *spec.EvalSpec
	if c.SpecPath != "" {
		loaded, err := spec.LoadFromFile(c.SpecPath)
		if err != nil {
			return nil, err
		}
		es = loaded
	} else {
		if c.DatasetPath == "" || c.TargetAttr == "" || c.TargetValue == "" || c.ReportPath == "" {
			return nil, fmt.Errorf("either -spec or all of -dataset, -target-attr, -target-value and -report are required")
		}
		es = &spec.EvalSpec{
			Runs: []spec.Run{{Name: "report", Report: c.ReportPath}},
		}
	}

	if c.DatasetPath != "" {
		es.Dataset = c.DatasetPath
	}
	if c.TargetAttr != "" {
		es.Target.Attribute = c.TargetAttr
	}
	if c.TargetValue != "" {
		es.Target.Value = c.TargetValue
	}
	if c.Measure != "" {
		es.QualityMeasure = c.Measure
	}
	if c.Strict {
		es.Strict = true
	}
	if c.LogDir != "" {
		es.LogDir = c.LogDir
	}
	if c.MinerCmd != "" {
		if es.Miner == nil {
			es.Miner = &spec.MinerSpec{}
		}
		es.Miner.Command = strings.Fields(c.MinerCmd)
	}

	if err := es.Validate(); err != nil {
		return nil, fmt.Errorf("invalid evaluation spec: %w", err)
	}
	return es, nil
}
