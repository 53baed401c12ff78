package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/sublist-eval/internal/eval/runner"
	"github.com/DjordjeVuckovic/sublist-eval/internal/mining"
)

const separator = "#########################################################"

// WriteRunLog writes the plain-text experiment log of one run: the dataset
// summary, the diversity parameters, every rebuilt list and the final
// quality and coverage figures.
func WriteRunLog(w io.Writer, er *runner.EvaluationResult, rr *runner.RunResult) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Number of instances: %d\n", er.Rows)
	fmt.Fprintf(&sb, "Target: %s\n", er.Target)
	fmt.Fprintf(&sb, "Number of instances in which the target is true: %d\n", er.TP)
	fmt.Fprintf(&sb, "Number of instances in which the target is false: %d\n", er.FP)
	sb.WriteString(separator + "\n")
	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, "beta_parameter = %s\n", mining.FormatFloat(rr.Params.Beta))
	fmt.Fprintf(&sb, "maximum_positive_overlap = %s\n", mining.FormatFloat(rr.Params.MaxPositiveOverlap))
	fmt.Fprintf(&sb, "maximum_negative_overlap = %s\n", mining.FormatFloat(rr.Params.MaxNegativeOverlap))
	sb.WriteString("---\n")

	if rr.Error != nil {
		fmt.Fprintf(&sb, "error = %s\n", rr.Error)
	} else {
		for _, l := range rr.Result.Lists {
			sb.WriteString(l.String() + "\n")
		}
		sb.WriteString("---\n")
		fmt.Fprintf(&sb, "quality = %s\n", strconv.FormatFloat(rr.Result.MeanQuality, 'g', -1, 64))
		fmt.Fprintf(&sb, "coverage = %s\n", strconv.FormatFloat(rr.Result.CoverageFraction, 'g', -1, 64))
	}

	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "Start time: %s\n", rr.StartedAt.Format("2006-01-02 15:04:05.000000"))
	fmt.Fprintf(&sb, "End time: %s\n", rr.FinishedAt.Format("2006-01-02 15:04:05.000000"))

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteRunLogs writes one "log_<beta>_<pos>_<neg>.txt" file per run into dir.
func WriteRunLogs(dir string, er *runner.EvaluationResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	for _, rr := range er.Runs {
		name := fmt.Sprintf("log_%s_%s_%s.txt", mining.FormatFloat(rr.Params.Beta), mining.FormatFloat(rr.Params.MaxPositiveOverlap), mining.FormatFloat(rr.Params.MaxNegativeOverlap))
		if err := writeLogFile(filepath.Join(dir, name), er, rr); err != nil {
			return err
		}
	}
	return nil
}

func writeLogFile(path string, er *runner.EvaluationResult, rr *runner.RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	defer f.Close()

	if err := WriteRunLog(f, er, rr); err != nil {
		return fmt.Errorf("write log file %s: %w", path, err)
	}
	return nil
}
