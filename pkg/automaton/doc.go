// Package automaton defines the encoded representation of complete
// deterministic finite automata used throughout synchrogen.
//
// # Encoding
//
// An automaton with N states over an alphabet of K symbols is stored as a
// flattened N×K transition table, state-major then symbol-minor. The textual
// form is the same flattening written as decimal integers separated by single
// spaces:
//
//	0 0 0 1
//
// is the 2-state, 2-symbol automaton where state 0 maps both symbols to 0
// and state 1 maps symbol 0 to 0 and symbol 1 to 1. Every entry must lie in
// [0, N-1] and there must be exactly N*K entries; Validate checks both by
// re-tokenizing the serialized form.
//
// # Conventions
//
// State 0 is the sink state by convention in generated corpora: every symbol
// maps it back to itself. The package itself does not enforce this - it is a
// property of the enumerator in package enum - but Step and Run rely on the
// usual DFA semantics only.
//
// Automaton values are immutable after construction and safe to share across
// goroutines.
package automaton
