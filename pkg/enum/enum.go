package enum

import (
	"errors"
	"fmt"
	"time"

	"github.com/synchrolab/synchrogen/pkg/automaton"
)

// ErrInvalidArity is returned by [Enumerate] and [Each] when the requested
// state count or alphabet size is not positive.
var ErrInvalidArity = errors.New("state count and alphabet size must be > 0")

// unset marks a transition-table cell that has not been decided yet.
const unset = -1

// Stats summarizes a completed enumeration.
type Stats struct {
	// Leaves counts complete table assignments visited by the search,
	// including ones rejected for not referencing all states.
	Leaves uint64

	// Accepted counts canonical automata produced.
	Accepted uint64

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

// Enumerate returns every BFS-canonical automaton with n states over k
// symbols, in deterministic discovery order. See the package documentation
// for the exact constraints.
func Enumerate(n, k int) ([]automaton.Automaton, error) {
	var result []automaton.Automaton
	if _, err := Each(n, k, func(a automaton.Automaton) error {
		result = append(result, a)
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Each runs the canonical enumeration and calls fn once per accepted
// automaton, without buffering the full result set. If fn returns an error
// the search stops and Each returns that error along with the stats
// accumulated so far.
func Each(n, k int, fn func(automaton.Automaton) error) (Stats, error) {
	if n <= 0 || k <= 0 {
		return Stats{}, fmt.Errorf("%w: n=%d, k=%d", ErrInvalidArity, n, k)
	}

	s := &searcher{
		n:     n,
		k:     k,
		delta: make([]int, n*k),
		emit:  fn,
	}
	for i := range s.delta {
		s.delta[i] = unset
	}

	start := time.Now()
	// State 0 counts as discovered from the start.
	err := s.assign(0, 0, 1)
	s.stats.Elapsed = time.Since(start)
	return s.stats, err
}

// searcher holds the working table for a single in-flight enumeration.
// It is owned exclusively by one Each call and never shared.
type searcher struct {
	n, k  int
	delta []int // working transition table, row-major, unset = undecided
	stats Stats
	emit  func(automaton.Automaton) error
}

// assign decides the table cell at (state, sym) and recurses. seen is the
// number of distinct states referenced so far; it is threaded by value, so
// backtracking only needs to reset the cell itself.
func (s *searcher) assign(state, sym, seen int) error {
	if state == s.n {
		s.stats.Leaves++
		if seen == s.n {
			return s.accept()
		}
		// Some states were never referenced: the table is isomorphic to a
		// smaller automaton. Abandon the leaf.
		return nil
	}

	if sym == s.k {
		return s.assign(state+1, 0, seen)
	}

	if state == 0 {
		// Fix state 0 as a sink before any branching. This also discovers
		// the row about to be assigned, hence the seen bump (clamped so the
		// single-state automaton still reaches seen == n).
		for x := 0; x < s.k; x++ {
			s.delta[x] = 0
		}
		return s.assign(1, 0, min(seen+1, s.n))
	}

	// A branch survives only if state has some transition to a strictly
	// lower state. If none was chosen among the earlier symbols, the last
	// symbol is forced downward.
	hasDown := false
	row := state * s.k
	for x := 0; x < sym; x++ {
		if v := s.delta[row+x]; v != unset && v < state {
			hasDown = true
			break
		}
	}

	maxTarget := min(seen, s.n-1)
	if !hasDown && sym == s.k-1 {
		maxTarget = state - 1
	}

	for target := 0; target <= maxTarget; target++ {
		newSeen := seen
		if target == seen && seen < s.n {
			newSeen++ // this transition discovers the next state
		}
		s.delta[row+sym] = target
		if err := s.assign(state, sym+1, newSeen); err != nil {
			return err
		}
	}

	// Clean slate for the sibling branch above.
	s.delta[row+sym] = unset
	return nil
}

// accept constructs and emits the automaton for the current full assignment.
// A construction or round-trip failure here means the search's own
// invariants are broken; it is surfaced with full context rather than
// swallowed.
func (s *searcher) accept() error {
	a, err := automaton.New(s.n, s.k, s.delta)
	if err != nil {
		return fmt.Errorf("internal: enumerator produced invalid table for n=%d k=%d: %w", s.n, s.k, err)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("internal: round-trip check failed for n=%d k=%d encoding %q: %w", s.n, s.k, a.Serialize(), err)
	}
	s.stats.Accepted++
	return s.emit(a)
}
