// Package encio reads and writes files of encoded automata.
//
// The file format is one automaton per non-empty line, each line being the
// textual encoding defined in package automaton: N*K whitespace-separated
// decimal state indices, state-major. Blank and whitespace-only lines are
// ignored, which keeps hand-edited corpora forgiving.
package encio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/synchrolab/synchrogen/pkg/automaton"
)

// CountNonEmptyLines returns the number of lines in r containing at least
// one non-whitespace character. Used for sizing input corpora before a run.
func CountNonEmptyLines(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	count := 0
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			count++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("count lines: %w", err)
	}
	return count, nil
}

// ReadAutomata parses every non-empty line of r as an automaton with the
// given dimensions. A malformed line fails the whole read, with the line
// number in the error.
func ReadAutomata(r io.Reader, n, k int) ([]automaton.Automaton, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var result []automaton.Automaton
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := automaton.Parse(n, k, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		result = append(result, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read automata: %w", err)
	}
	return result, nil
}

// WriteAutomata writes one serialized encoding per line.
func WriteAutomata(w io.Writer, as []automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	for _, a := range as {
		if _, err := bw.WriteString(a.Serialize()); err != nil {
			return fmt.Errorf("write automata: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write automata: %w", err)
		}
	}
	return bw.Flush()
}
