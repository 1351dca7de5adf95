// Package enum enumerates complete DFAs in BFS-canonical form.
//
// # What gets enumerated
//
// For fixed dimensions (N states, K symbols) the enumerator produces every
// automaton, exactly once, that satisfies three structural constraints:
//
//  1. State 0 is a sink: every symbol maps it back to itself.
//  2. States are numbered in discovery order. Walking the transition table
//     row-major (state 0 symbol 0, state 0 symbol 1, ..., state 1 symbol 0,
//     ...), a cell may target any state referenced so far or introduce the
//     next unreferenced index, never skip ahead. This picks one canonical
//     representative per relabeling class, which is what makes the
//     enumeration duplicate-free.
//  3. Every state above 0 has at least one transition to a strictly lower
//     state. Automata that only move forward or self-loop contain no useful
//     collapse for synchronization analysis and are excluded by forcing the
//     last undecided symbol downward.
//
// An assignment is accepted only if all N states were actually referenced;
// otherwise the branch is abandoned (such a table would be isomorphic to a
// smaller automaton).
//
// The search is a sequential depth-first backtracker over table cells with
// explicit assign/recurse/unassign discipline. It performs no I/O. Distinct
// calls are independent; a single call owns its working table exclusively.
//
// # Ordering
//
// Output order is the deterministic discovery order of the search
// (state-major, increasing targets). Callers must not rely on any property
// of the order beyond determinism for fixed (N, K).
package enum
