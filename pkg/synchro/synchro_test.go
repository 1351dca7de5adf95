package synchro

import (
	"testing"

	"github.com/synchrolab/synchrogen/pkg/automaton"
	"github.com/synchrolab/synchrogen/pkg/enum"
)

func mustAutomaton(t *testing.T, n, k int, delta []int) automaton.Automaton {
	t.Helper()
	a, err := automaton.New(n, k, delta)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return a
}

func TestAnalyzeSinkAutomata(t *testing.T) {
	tests := []struct {
		name      string
		delta     []int
		wantLower int
		wantUpper int
	}{
		// All canonical 2-state, 2-symbol automata: each merges in one step.
		{name: "BothToSink", delta: []int{0, 0, 0, 0}, wantLower: 1, wantUpper: 1},
		{name: "SelfLoopOnSecond", delta: []int{0, 0, 0, 1}, wantLower: 1, wantUpper: 1},
		{name: "SwappedSymbols", delta: []int{0, 0, 1, 0}, wantLower: 1, wantUpper: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAutomaton(t, 2, 2, tt.delta)
			res := Analyze(a, Options{ComputeWord: true})

			if res.NonSynchro {
				t.Fatal("reported NON SYNCHRO for a synchronizing automaton")
			}
			if res.LowerBound != tt.wantLower || res.UpperBound != tt.wantUpper {
				t.Errorf("bounds = [%d, %d], want [%d, %d]", res.LowerBound, res.UpperBound, tt.wantLower, tt.wantUpper)
			}
			assertWordSynchronizes(t, a, res.Word)
		})
	}
}

func TestAnalyzePermutationAutomaton(t *testing.T) {
	// Both symbols act as permutations, so no pair ever merges.
	a := mustAutomaton(t, 2, 2, []int{0, 1, 1, 0})
	res := Analyze(a, Options{ComputeWord: true})

	if !res.NonSynchro {
		t.Fatal("permutation automaton reported as synchronizing")
	}
	if len(res.Word) != 0 {
		t.Errorf("non-synchronizing result carries a word: %v", res.Word)
	}
	if len(res.AlgorithmsRun) != 1 || res.AlgorithmsRun[0].Name != "pairs" {
		t.Errorf("AlgorithmsRun = %v, want only pairs", res.AlgorithmsRun)
	}
}

func TestAnalyzeCerny3(t *testing.T) {
	// The Cerny automaton on 3 states: symbol 0 rotates, symbol 1 maps
	// state 0 to 1 and fixes the rest. Its MLSW is (n-1)^2 = 4.
	a := mustAutomaton(t, 3, 2, []int{1, 1, 2, 1, 0, 2})
	res := Analyze(a, Options{ComputeWord: true})

	if res.NonSynchro {
		t.Fatal("Cerny automaton reported NON SYNCHRO")
	}
	if res.LowerBound > 4 {
		t.Errorf("LowerBound = %d, exceeds the true MLSW 4", res.LowerBound)
	}
	if res.UpperBound < 4 {
		t.Errorf("UpperBound = %d, below the true MLSW 4", res.UpperBound)
	}
	if len(res.Word) != res.UpperBound {
		t.Errorf("witness length %d != UpperBound %d", len(res.Word), res.UpperBound)
	}
	assertWordSynchronizes(t, a, res.Word)
}

func TestAnalyzeSingleState(t *testing.T) {
	a := mustAutomaton(t, 1, 1, []int{0})
	res := Analyze(a, Options{ComputeWord: true})

	if res.NonSynchro {
		t.Fatal("single state reported NON SYNCHRO")
	}
	if res.LowerBound != 0 || res.UpperBound != 0 {
		t.Errorf("bounds = [%d, %d], want [0, 0]", res.LowerBound, res.UpperBound)
	}
}

func TestAnalyzeWordOnlyOnRequest(t *testing.T) {
	a := mustAutomaton(t, 2, 2, []int{0, 0, 1, 0})

	res := Analyze(a, Options{})
	if res.Word != nil {
		t.Errorf("word present without ComputeWord: %v", res.Word)
	}
	if res.UpperBound == 0 {
		t.Error("upper bound missing without ComputeWord")
	}
}

func TestAnalyzeTimings(t *testing.T) {
	a := mustAutomaton(t, 2, 2, []int{0, 0, 1, 0})
	res := Analyze(a, Options{})

	want := []string{"pairs", "eppstein"}
	if len(res.AlgorithmsRun) != len(want) {
		t.Fatalf("AlgorithmsRun = %v, want %v", res.AlgorithmsRun, want)
	}
	for i, at := range res.AlgorithmsRun {
		if at.Name != want[i] {
			t.Errorf("algorithm %d = %q, want %q", i, at.Name, want[i])
		}
		if at.Seconds < 0 {
			t.Errorf("algorithm %q has negative timing %v", at.Name, at.Seconds)
		}
	}
}

// TestAnalyzeEnumeratedCorpus cross-checks the analyzer over every canonical
// 4-state automaton: bounds are consistent and every witness synchronizes.
// Sink automata are always synchronizing, since every state has a path of
// downward transitions into the sink.
func TestAnalyzeEnumeratedCorpus(t *testing.T) {
	as, err := enum.Enumerate(4, 2)
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}

	for _, a := range as {
		res := Analyze(a, Options{ComputeWord: true})
		if res.NonSynchro {
			t.Fatalf("%q reported NON SYNCHRO", a.Serialize())
		}
		if res.LowerBound > res.UpperBound {
			t.Fatalf("%q: lower %d > upper %d", a.Serialize(), res.LowerBound, res.UpperBound)
		}
		if res.LowerBound < 1 {
			t.Fatalf("%q: lower bound %d below 1 for a multi-state automaton", a.Serialize(), res.LowerBound)
		}
		assertWordSynchronizes(t, a, res.Word)
	}
}

func assertWordSynchronizes(t *testing.T, a automaton.Automaton, word []int) {
	t.Helper()

	states := make([]int, a.States())
	for i := range states {
		states[i] = i
	}
	final := a.Run(states, word)
	for _, s := range final {
		if s != final[0] {
			t.Fatalf("word %v does not synchronize %q: final states %v", word, a.Serialize(), final)
		}
	}
}
