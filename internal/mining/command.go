package mining

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// CommandMiner runs the miner as an external program. Each argument may
// hold placeholders that are substituted per request:
//
//	{dataset} {output} {target_attribute} {target_value} {input}
//	{max_lists} {max_subgroups} {beta} {pos} {neg}
type CommandMiner struct {
	Command []string
	Dir     string
}

func NewCommandMiner(command []string, dir string) (*CommandMiner, error) {
	if len(command) == 0 {
		return nil, errors.New("miner command is empty")
	}
	return &CommandMiner{Command: command, Dir: dir}, nil
}

// Args returns the argv for req with every placeholder substituted.
func (m *CommandMiner) Args(req Request) []string {
	r := strings.NewReplacer(
		"{dataset}", req.DatasetPath,
		"{output}", req.OutputPath,
		"{target_attribute}", req.Target.Attribute,
		"{target_value}", req.Target.Value.Raw,
		"{input}", req.Params.InputSubgroupsPath,
		"{max_lists}", strconv.Itoa(req.Params.MaxLists),
		"{max_subgroups}", strconv.Itoa(req.Params.MaxSubgroupsPerList),
		"{beta}", FormatFloat(req.Params.Beta),
		"{pos}", FormatFloat(req.Params.MaxPositiveOverlap),
		"{neg}", FormatFloat(req.Params.MaxNegativeOverlap),
	)

	args := make([]string, len(m.Command))
	for i, a := range m.Command {
		args[i] = r.Replace(a)
	}
	return args
}

func (m *CommandMiner) Mine(ctx context.Context, req Request) error {
	if dir := filepath.Dir(req.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	args := m.Args(req)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = m.Dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	start := time.Now()
	slog.Info("Miner started", "command", args[0], "output", req.OutputPath)
	if err := cmd.Run(); err != nil {
		slog.Error("Miner failed", "error", err, "output", tail(output.String(), 2048))
		return fmt.Errorf("run miner %q: %w", args[0], err)
	}
	slog.Info("Miner finished", "output", req.OutputPath, "elapsed", time.Since(start))

	if _, err := os.Stat(req.OutputPath); err != nil {
		return fmt.Errorf("miner did not write report: %w", err)
	}
	return nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
