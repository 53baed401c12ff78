package quality

// WRAcc is the weighted relative accuracy:
//
//	(tp+fp)/(TP+FP) * (tp/(tp+fp) - TP/(TP+FP))
//
// which simplifies to tp/N - (tp+fp)*TP/N². It is zero for an empty
// subgroup or an empty dataset.
type WRAcc struct{}

func (WRAcc) Name() string { return "wracc" }

func (WRAcc) Compute(c Counts) float64 {
	n := c.total()
	covered := float64(c.TruePositives + c.FalsePositives)
	if n == 0 || covered == 0 {
		return 0
	}
	return (covered / n) * (float64(c.TruePositives)/covered - float64(c.TruePopulation)/n)
}

// Sensitivity is the fraction of target rows covered by the subgroup.
func Sensitivity(c Counts) float64 {
	if c.TruePopulation == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(c.TruePopulation)
}

// Specificity is the fraction of non-target rows left uncovered.
func Specificity(c Counts) float64 {
	if c.FalsePopulation == 0 {
		return 0
	}
	return float64(c.FalsePopulation-c.FalsePositives) / float64(c.FalsePopulation)
}

// Precision is tp/(tp+fp).
func Precision(c Counts) float64 {
	covered := c.TruePositives + c.FalsePositives
	if covered == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(covered)
}

// PiatetskyShapiro is (tp+fp) * (tp/(tp+fp) - TP/(TP+FP)), the unnormalised
// counterpart of WRAcc.
func PiatetskyShapiro(c Counts) float64 {
	n := c.total()
	covered := float64(c.TruePositives + c.FalsePositives)
	if n == 0 || covered == 0 {
		return 0
	}
	return covered * (float64(c.TruePositives)/covered - float64(c.TruePopulation)/n)
}
