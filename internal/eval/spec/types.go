package spec

type EvalSpec struct {
	Dataset        string     `yaml:"dataset"`
	Target         TargetSpec `yaml:"target"`
	QualityMeasure string     `yaml:"quality_measure"`
	Strict         bool       `yaml:"strict"`
	OutputDir      string     `yaml:"output_dir"`
	LogDir         string     `yaml:"log_dir,omitempty"`
	Miner          *MinerSpec `yaml:"miner,omitempty"`
	Runs           []Run      `yaml:"runs"`
	Grid           *Grid      `yaml:"grid,omitempty"`
}

type TargetSpec struct {
	Attribute string `yaml:"attribute"`
	Value     string `yaml:"value"`
}

type MinerSpec struct {
	Command             []string `yaml:"command"`
	Dir                 string   `yaml:"dir,omitempty"`
	InputSubgroups      string   `yaml:"input_subgroups"`
	MaxLists            int      `yaml:"max_lists"`
	MaxSubgroupsPerList int      `yaml:"max_subgroups_per_list"`
}

type Run struct {
	Name   string     `yaml:"name"`
	Report string     `yaml:"report,omitempty"`
	Params ParamsSpec `yaml:"params"`
}

// ParamsSpec holds the diversity parameters of one mining run.
type ParamsSpec struct {
	Beta               float64 `yaml:"beta"`
	MaxPositiveOverlap float64 `yaml:"max_positive_overlap"`
	MaxNegativeOverlap float64 `yaml:"max_negative_overlap"`
}

// Grid expands into one run per combination of its values.
type Grid struct {
	Beta               []float64 `yaml:"beta"`
	MaxPositiveOverlap []float64 `yaml:"max_positive_overlap"`
	MaxNegativeOverlap []float64 `yaml:"max_negative_overlap"`
}
