// Package report accumulates and writes per-automaton analysis results.
//
// A Reporter consumes one [synchro.Result] per automaton, in a single
// logical stream, and tracks the run-wide maxima of the lower and upper
// MLSW bounds. With a destination configured it additionally writes one
// line per result in the corpus line format (see [Reporter.Push]); without
// one it runs summary-only and merely hints when a witness word was found.
//
// Reporter performs unguarded read-modify-write on its maxima and
// unguarded appends to the destination: callers introducing parallel
// analysis upstream must serialize Push calls themselves.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/synchrolab/synchrogen/pkg/synchro"
)

// Reporter is the result sink for one enumeration run.
// Construct with [NewReporter]; the zero value is not usable.
type Reporter struct {
	out    *bufio.Writer // nil = summary-only
	logger *log.Logger

	minMax int // running max of lower bounds
	maxMax int // running max of upper bounds
}

// NewReporter creates a reporter writing detailed per-automaton lines to w.
// A nil w selects the summary-only variant: no per-automaton output, only
// the running maxima. If logger is nil the default logger is used.
func NewReporter(w io.Writer, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	r := &Reporter{logger: logger}
	if w != nil {
		r.out = bufio.NewWriter(w)
	}
	return r
}

// Push records one analysis result. index identifies the automaton within
// the run and is echoed in the output line.
//
// Line format, flushed immediately:
//
//	<index>: NON SYNCHRO
//	<index>: [<lower>, <upper>] ((<name>, <secs>), ...) {<sym> <sym> ...}
//
// The brace-delimited witness word appears only when one was computed.
// Push returns the destination's write error, if any.
func (r *Reporter) Push(res synchro.Result, index int) error {
	if res.NonSynchro {
		if r.out == nil {
			return nil
		}
		fmt.Fprintf(r.out, "%d: NON SYNCHRO\n", index)
		return r.out.Flush()
	}

	// Bounded result: fold into the run-wide maxima regardless of mode.
	if res.LowerBound > r.minMax {
		r.minMax = res.LowerBound
	}
	if res.UpperBound > r.maxMax {
		r.maxMax = res.UpperBound
	}

	if r.out == nil {
		if len(res.Word) > 0 {
			r.logger.Infof("Found synchronizing word of length %d (use the -o flag to save it)", len(res.Word))
		}
		return nil
	}

	fmt.Fprintf(r.out, "%d: [%d, %d]", index, res.LowerBound, res.UpperBound)

	r.out.WriteString(" (")
	for i, at := range res.AlgorithmsRun {
		if i > 0 {
			r.out.WriteString(", ")
		}
		fmt.Fprintf(r.out, "(%s, %s)", at.Name, strconv.FormatFloat(at.Seconds, 'g', -1, 64))
	}
	r.out.WriteString(")")

	if len(res.Word) > 0 {
		r.logger.Infof("Saving synchronizing word of length %d", len(res.Word))

		r.out.WriteString(" {")
		for i, sym := range res.Word {
			if i > 0 {
				r.out.WriteByte(' ')
			}
			r.out.WriteString(strconv.Itoa(sym))
		}
		r.out.WriteString("}")
	}

	r.out.WriteByte('\n')
	return r.out.Flush()
}

// MinMax returns the running maximum of lower bounds seen so far.
func (r *Reporter) MinMax() int { return r.minMax }

// MaxMax returns the running maximum of upper bounds seen so far.
func (r *Reporter) MaxMax() int { return r.maxMax }

// Summary renders the run-wide maxima as "[<minMax>, <maxMax>]".
func (r *Reporter) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d, %d]", r.minMax, r.maxMax)
	return sb.String()
}
