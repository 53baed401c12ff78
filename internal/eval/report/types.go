package report

import (
	"runtime"
	"time"
)

type Report struct {
	Meta Meta       `json:"meta"`
	Runs []RunEntry `json:"runs"`
}

type Meta struct {
	EvaluationID string          `json:"evaluation_id"`
	Timestamp    time.Time       `json:"timestamp"`
	Dataset      string          `json:"dataset"`
	Target       string          `json:"target"`
	Measure      string          `json:"quality_measure"`
	Rows         int             `json:"rows"`
	TP           int             `json:"tp"`
	FP           int             `json:"fp"`
	Environment  EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type RunEntry struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Report             string        `json:"report"`
	Beta               float64       `json:"beta"`
	MaxPositiveOverlap float64       `json:"max_positive_overlap"`
	MaxNegativeOverlap float64       `json:"max_negative_overlap"`
	Mined              bool          `json:"mined"`
	MeanQuality        float64       `json:"mean_quality"`
	CoverageFraction   float64       `json:"coverage_fraction"`
	Lists              []ListEntry   `json:"lists,omitempty"`
	StartedAt          time.Time     `json:"started_at"`
	FinishedAt         time.Time     `json:"finished_at"`
	MiningTime         time.Duration `json:"mining_time"`
	EvaluateTime       time.Duration `json:"evaluate_time"`
	Error              string        `json:"error,omitempty"`
}

type ListEntry struct {
	Quality   float64         `json:"quality"`
	Coverage  int             `json:"covered_rows"`
	Subgroups []SubgroupEntry `json:"subgroups"`
}

type SubgroupEntry struct {
	Description string `json:"description"`
	Target      string `json:"target"`
	TP          int    `json:"tp"`
	FP          int    `json:"fp"`
}
