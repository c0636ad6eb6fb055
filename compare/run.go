package compare

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ughe/ocreval/corpus"
)

// Policy decides what happens to an engine without comparable documents.
type Policy int

const (
	// SkipEmpty leaves the engine out of the report.
	SkipEmpty Policy = iota
	// MarkEmpty keeps the row with Err set.
	MarkEmpty
)

// ParsePolicy reads "skip" or "mark".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "skip":
		return SkipEmpty, nil
	case "mark":
		return MarkEmpty, nil
	}
	return SkipEmpty, fmt.Errorf("unknown empty engine policy %q (want skip or mark)", s)
}

func (p Policy) String() string {
	if p == MarkEmpty {
		return "mark"
	}
	return "skip"
}

// Sink receives the finished rows in engine order.
type Sink interface {
	Append(s *EngineSummary)
}

// Options control a run.
type Options struct {
	OnEmpty Policy
	// Parallel is the number of engines evaluated at once; below 2 the
	// engines run one after the other.
	Parallel int
}

// Run evaluates every engine and appends the rows to sink in the given
// engine order. Any IOError aborts the run before a row is appended.
func Run(a *Aggregator, engines []corpus.Engine, opts Options, sink Sink) error {
	rows := make([]*EngineSummary, len(engines))
	eval := func(i int) error {
		s, err := a.Evaluate(engines[i])
		if err == nil {
			rows[i] = s
			return nil
		}
		if !errors.Is(err, ErrNoComparableDocuments) {
			return err
		}
		a.log.Warn("no comparable documents", "engine", engines[i].ID(), "policy", opts.OnEmpty)
		if opts.OnEmpty == MarkEmpty {
			rows[i] = &EngineSummary{Engine: engines[i].ID(), Folder: engines[i].Folder, Err: err}
		}
		return nil
	}

	if opts.Parallel < 2 {
		for i := range engines {
			if err := eval(i); err != nil {
				return err
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(opts.Parallel)
		for i := range engines {
			i := i
			g.Go(func() error { return eval(i) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	for _, s := range rows {
		if s != nil {
			sink.Append(s)
		}
	}
	return nil
}

func fmtPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
