// Package synchro computes bounds on the minimum length synchronizing word
// (MLSW) of a complete DFA.
//
// A synchronizing word drives every state of the automaton to the same
// single state. Not every DFA has one; Analyze detects that case instead of
// reporting bounds.
//
// Two sub-algorithms run in sequence:
//
//   - "pairs": breadth-first search over the pair automaton. It yields the
//     shortest merging word for every state pair. An unmergeable pair means
//     the automaton is non-synchronizing; otherwise the maximum pair
//     distance is a lower bound on the MLSW.
//   - "eppstein": the greedy compression heuristic. Starting from the full
//     state set, it repeatedly merges the closest active pair using the
//     words found by "pairs". The concatenation synchronizes the automaton,
//     so its length is an upper bound on the MLSW, and doubles as the
//     witness word.
//
// Per-sub-algorithm wall-clock timings are recorded in the result in
// invocation order.
package synchro
