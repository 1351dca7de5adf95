// Package pipeline wires the enumerate → analyze → report flow.
//
// The pipeline has three stages:
//
//  1. Enumerate: produce every BFS-canonical automaton for (N, K).
//  2. Analyze: compute MLSW bounds per automaton, consulting the result
//     cache first.
//  3. Report: push each result into the sink, which writes detailed lines
//     and accumulates the run-wide maxima.
//
// The same Runner backs the run and analyze CLI commands, so both share
// caching and logging behavior. Results are pushed sequentially in
// enumeration order; the sink requires a single writer.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/synchrolab/synchrogen/pkg/automaton"
	"github.com/synchrolab/synchrogen/pkg/cache"
	"github.com/synchrolab/synchrogen/pkg/enum"
	"github.com/synchrolab/synchrogen/pkg/report"
	"github.com/synchrolab/synchrogen/pkg/synchro"
)

// Options configures one pipeline execution.
type Options struct {
	// States and Symbols are the enumeration dimensions N and K.
	States  int
	Symbols int

	// Out is the destination for detailed per-automaton lines.
	// nil selects summary-only reporting.
	Out io.Writer

	// SaveWord retains witness words in the detailed output.
	SaveWord bool
}

// Stats carries per-stage diagnostics of a completed run.
type Stats struct {
	EnumLeaves  uint64        // complete assignments visited by the search
	EnumTime    time.Duration // enumeration share of the run
	AnalyzeTime time.Duration // analysis share of the run
	CacheHits   int           // automata answered from the result cache
}

// RunResult summarizes one pipeline execution.
type RunResult struct {
	Automata   int // canonical automata processed
	NonSynchro int // of which had no synchronizing word
	MinMax     int // run-wide max of lower bounds
	MaxMax     int // run-wide max of upper bounds
	Stats      Stats
}

// Summary renders the run-wide maxima in the corpus format.
func (r *RunResult) Summary() string {
	return fmt.Sprintf("[%d, %d]", r.MinMax, r.MaxMax)
}

// Runner executes pipelines with shared caching and logging. It holds no
// per-run state; one Runner may serve many sequential runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables memoization and a nil
// logger falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute enumerates all canonical automata for the configured dimensions
// and analyzes each one as it is produced, streaming results into the sink.
// The enumeration is not buffered, so large (N, K) runs use constant memory
// beyond the cache.
func (r *Runner) Execute(ctx context.Context, opts Options) (*RunResult, error) {
	sink := report.NewReporter(opts.Out, r.Logger)
	result := &RunResult{}

	index := 0
	analyzeTotal := time.Duration(0)

	stats, err := enum.Each(opts.States, opts.Symbols, func(a automaton.Automaton) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		analyzeStart := time.Now()
		res, hit := r.analyzeOne(ctx, a, opts.SaveWord)
		analyzeTotal += time.Since(analyzeStart)
		if hit {
			result.Stats.CacheHits++
		}
		if res.NonSynchro {
			result.NonSynchro++
		}

		if err := sink.Push(res, index); err != nil {
			return fmt.Errorf("push result %d: %w", index, err)
		}
		index++
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Automata = index
	result.MinMax = sink.MinMax()
	result.MaxMax = sink.MaxMax()
	result.Stats.EnumLeaves = stats.Leaves
	result.Stats.EnumTime = stats.Elapsed - analyzeTotal
	result.Stats.AnalyzeTime = analyzeTotal

	r.Logger.Info("enumeration complete",
		"automata", result.Automata,
		"leaves", stats.Leaves,
		"duration", stats.Elapsed)
	r.Logger.Info("run complete",
		"nonSynchro", result.NonSynchro,
		"cacheHits", result.Stats.CacheHits,
		"summary", result.Summary())

	return result, nil
}

// AnalyzeAll runs the analyze and report stages over an already-materialized
// corpus, as read from an encodings file. Results are pushed in input order.
func (r *Runner) AnalyzeAll(ctx context.Context, as []automaton.Automaton, opts Options) (*RunResult, error) {
	sink := report.NewReporter(opts.Out, r.Logger)
	result := &RunResult{}

	start := time.Now()
	for index, a := range as {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, hit := r.analyzeOne(ctx, a, opts.SaveWord)
		if hit {
			result.Stats.CacheHits++
		}
		if res.NonSynchro {
			result.NonSynchro++
		}
		if err := sink.Push(res, index); err != nil {
			return nil, fmt.Errorf("push result %d: %w", index, err)
		}
	}

	result.Automata = len(as)
	result.MinMax = sink.MinMax()
	result.MaxMax = sink.MaxMax()
	result.Stats.AnalyzeTime = time.Since(start)

	r.Logger.Info("run complete",
		"automata", result.Automata,
		"nonSynchro", result.NonSynchro,
		"cacheHits", result.Stats.CacheHits,
		"summary", result.Summary())

	return result, nil
}

// analyzeOne answers from the cache when possible. Cached entries without a
// stored word do not satisfy a run that wants one.
func (r *Runner) analyzeOne(ctx context.Context, a automaton.Automaton, wantWord bool) (synchro.Result, bool) {
	if res, ok := cache.GetResult(ctx, r.Cache, a); ok {
		if !wantWord || res.NonSynchro || len(res.Word) > 0 {
			return res, true
		}
	}

	res := synchro.Analyze(a, synchro.Options{ComputeWord: wantWord})
	if err := cache.SetResult(ctx, r.Cache, a, res); err != nil {
		r.Logger.Debug("result cache write failed", "err", err)
	}
	return res, false
}
