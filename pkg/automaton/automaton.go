package automaton

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedCount is returned by [Parse] and [Automaton.Validate] when
	// the serialized text does not contain exactly N*K integer tokens.
	ErrMalformedCount = errors.New("wrong number of transition entries")

	// ErrOutOfRange is returned by [Parse] and [Automaton.Validate] when a
	// transition target is not a state index in [0, N-1].
	ErrOutOfRange = errors.New("transition target out of range")

	// ErrInvalidArity is returned when a state count or alphabet size of
	// zero is requested. Both dimensions must be positive.
	ErrInvalidArity = errors.New("state count and alphabet size must be > 0")
)

// Automaton is a complete DFA encoded as a flattened transition table.
// The zero value is not usable - construct with [New] or [Parse].
type Automaton struct {
	n, k  int
	delta []int // len n*k, state-major then symbol-minor
}

// New builds an automaton from a flattened transition table. The slice is
// copied, so the caller may reuse it. New returns ErrInvalidArity for
// non-positive dimensions, ErrMalformedCount if len(delta) != n*k, and
// ErrOutOfRange if any entry is not a valid state index.
func New(n, k int, delta []int) (Automaton, error) {
	if n <= 0 || k <= 0 {
		return Automaton{}, ErrInvalidArity
	}
	if len(delta) != n*k {
		return Automaton{}, fmt.Errorf("%w: expected %d, found %d", ErrMalformedCount, n*k, len(delta))
	}
	for i, target := range delta {
		if target < 0 || target >= n {
			return Automaton{}, fmt.Errorf("%w: entry %d is %d, want [0, %d]", ErrOutOfRange, i, target, n-1)
		}
	}
	d := make([]int, len(delta))
	copy(d, delta)
	return Automaton{n: n, k: k, delta: d}, nil
}

// Parse decodes the textual encoding produced by [Automaton.Serialize]:
// n*k whitespace-separated decimal state indices, state-major.
func Parse(n, k int, text string) (Automaton, error) {
	if n <= 0 || k <= 0 {
		return Automaton{}, ErrInvalidArity
	}
	fields := strings.Fields(text)
	if len(fields) != n*k {
		return Automaton{}, fmt.Errorf("%w: expected %d integers, found %d", ErrMalformedCount, n*k, len(fields))
	}
	delta := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Automaton{}, fmt.Errorf("%w: expected %d integers, found %d", ErrMalformedCount, n*k, i)
		}
		if v < 0 || v >= n {
			return Automaton{}, fmt.Errorf("%w: expected integer in range [0, %d], found %d", ErrOutOfRange, n-1, v)
		}
		delta[i] = v
	}
	return Automaton{n: n, k: k, delta: delta}, nil
}

// States returns the number of states N.
func (a Automaton) States() int { return a.n }

// Symbols returns the alphabet size K.
func (a Automaton) Symbols() int { return a.k }

// At returns the transition target for the given state and symbol.
func (a Automaton) At(state, sym int) int {
	return a.delta[state*a.k+sym]
}

// Step applies one input symbol to a single state.
func (a Automaton) Step(state, sym int) int { return a.At(state, sym) }

// Run applies word to every state in states and returns the resulting
// multiset of states, positionally aligned with the input.
func (a Automaton) Run(states []int, word []int) []int {
	out := make([]int, len(states))
	copy(out, states)
	for _, sym := range word {
		for i, s := range out {
			out[i] = a.At(s, sym)
		}
	}
	return out
}

// Serialize renders the transition table in its textual encoding:
// entries state-major, symbol-minor, single-space separated, no
// surrounding whitespace. Serialize is deterministic and total.
func (a Automaton) Serialize() string {
	var sb strings.Builder
	sb.Grow(len(a.delta) * 2)
	for i, target := range a.delta {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(target))
	}
	return sb.String()
}

// Validate re-tokenizes the serialized form and checks the token count and
// value ranges against the automaton's own dimensions. This is a defensive
// round-trip check; the primary correctness guarantee is construction.
func (a Automaton) Validate() error {
	_, err := Parse(a.n, a.k, a.Serialize())
	return err
}

// Equal reports whether two automata have identical dimensions and
// transition tables.
func (a Automaton) Equal(b Automaton) bool {
	if a.n != b.n || a.k != b.k {
		return false
	}
	for i := range a.delta {
		if a.delta[i] != b.delta[i] {
			return false
		}
	}
	return true
}
