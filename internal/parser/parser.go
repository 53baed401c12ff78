// Package parser rebuilds subgroup lists from the text report written by the
// subgroup-list miner.
//
// Only two line shapes carry structure:
//
//	## Subgroup list (<free text>) ##
//	s<N>: Description: <description>, Target: <target>
//
// Every other line is commentary and is skipped. A record belongs to the
// list opened by the closest preceding header.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
	"github.com/DjordjeVuckovic/sublist-eval/internal/coverage"
	"github.com/DjordjeVuckovic/sublist-eval/internal/dataset"
	"github.com/DjordjeVuckovic/sublist-eval/internal/rule"
	"github.com/DjordjeVuckovic/sublist-eval/internal/sublist"
)

const maxLineSize = 16 * 1024 * 1024

type Options struct {
	// Strict rejects lines that start like a header ("##") or a record
	// ("s<N>:") but do not match the full pattern. By default they are
	// skipped like any other commentary.
	Strict bool
}

type state int

const (
	noListStarted state = iota
	inList
)

// Parser evaluates reports against one dataset and target. The target masks
// are computed once and shared by every list the parser builds.
type Parser struct {
	ds     *dataset.Dataset
	target rule.Target
	opts   Options

	targetMask    coverage.Vector
	nonTargetMask coverage.Vector
}

func New(ds *dataset.Dataset, target rule.Target, opts Options) (*Parser, error) {
	mask, err := target.Evaluate(ds)
	if err != nil {
		return nil, fmt.Errorf("evaluate target %s: %w", target, err)
	}
	return &Parser{
		ds:            ds,
		target:        target,
		opts:          opts,
		targetMask:    mask,
		nonTargetMask: mask.Not(),
	}, nil
}

// TargetMask returns the rows where the run target holds.
func (p *Parser) TargetMask() coverage.Vector {
	return p.targetMask
}

// ParseFile parses the report at path. The file is closed on every path.
func (p *Parser) ParseFile(path string) ([]*sublist.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	lists, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return lists, nil
}

// Parse reads the report line by line in order. Any error aborts the whole
// report; no partial result is returned.
func (p *Parser) Parse(r io.Reader) ([]*sublist.List, error) {
	run := &parseRun{p: p, state: noListStarted}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if err := run.step(classify(number, text)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	slog.Debug("Report parsed", "lines", number, "lists", len(run.lists), "subgroups", run.subgroups)
	return run.lists, nil
}

// parseRun is the state of a single Parse call.
type parseRun struct {
	p         *Parser
	state     state
	lists     []*sublist.List
	subgroups int
}

func (r *parseRun) step(l line) error {
	switch l.kind {
	case lineHeader:
		return r.startList(l)
	case lineRecord:
		if r.state == noListStarted {
			return apperr.NewOrphanSubgroup(l.number, l.text)
		}
		return r.addSubgroup(l)
	case lineNearMiss:
		if r.p.opts.Strict {
			return apperr.NewUnrecognizedStructuralLine(l.number, l.text)
		}
	}
	return nil
}

func (r *parseRun) startList(l line) error {
	list, err := sublist.New(r.p.targetMask, r.p.nonTargetMask, r.p.ds.Len())
	if err != nil {
		return &apperr.LineError{Line: l.number, Err: err}
	}
	r.lists = append(r.lists, list)
	r.state = inList
	slog.Debug("Subgroup list started", "line", l.number, "header", l.header)
	return nil
}

func (r *parseRun) addSubgroup(l line) error {
	sg, err := rule.Parse("Description: " + l.description + ", Target: " + l.target)
	if err != nil {
		return &apperr.LineError{Line: l.number, Err: err}
	}
	if !sg.Target.Matches(r.p.target, r.p.ds) {
		return apperr.NewTargetMismatch(l.number, r.p.target.String(), sg.Target.String())
	}

	current := r.lists[len(r.lists)-1]
	if _, err := current.AddSubgroup(sg, r.p.ds); err != nil {
		return &apperr.LineError{Line: l.number, Err: err}
	}
	r.subgroups++
	return nil
}
