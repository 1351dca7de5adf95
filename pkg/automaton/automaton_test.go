package automaton

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n, k    int
		delta   []int
		wantErr error
	}{
		{name: "Valid", n: 2, k: 2, delta: []int{0, 0, 1, 0}},
		{name: "SingleSink", n: 1, k: 1, delta: []int{0}},
		{name: "ZeroStates", n: 0, k: 2, delta: nil, wantErr: ErrInvalidArity},
		{name: "ZeroSymbols", n: 2, k: 0, delta: nil, wantErr: ErrInvalidArity},
		{name: "TooFewEntries", n: 2, k: 2, delta: []int{0, 0, 1}, wantErr: ErrMalformedCount},
		{name: "TooManyEntries", n: 2, k: 2, delta: []int{0, 0, 1, 0, 1}, wantErr: ErrMalformedCount},
		{name: "TargetTooLarge", n: 2, k: 2, delta: []int{0, 0, 1, 2}, wantErr: ErrOutOfRange},
		{name: "NegativeTarget", n: 2, k: 2, delta: []int{0, 0, -1, 0}, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.n, tt.k, tt.delta)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if a.States() != tt.n || a.Symbols() != tt.k {
				t.Errorf("dimensions = (%d, %d), want (%d, %d)", a.States(), a.Symbols(), tt.n, tt.k)
			}
		})
	}
}

func TestNewCopiesDelta(t *testing.T) {
	delta := []int{0, 0, 1, 0}
	a, err := New(2, 2, delta)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	delta[2] = 0
	if a.At(1, 0) != 1 {
		t.Error("mutating the source slice changed the automaton")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		n, k    int
		text    string
		wantErr error
	}{
		{name: "Valid", n: 2, k: 2, text: "0 0 1 0"},
		{name: "ExtraWhitespace", n: 2, k: 2, text: "  0  0\t1 0 "},
		{name: "TooFewTokens", n: 2, k: 2, text: "0 0 1", wantErr: ErrMalformedCount},
		{name: "TooManyTokens", n: 2, k: 2, text: "0 0 1 0 0", wantErr: ErrMalformedCount},
		{name: "NonInteger", n: 2, k: 2, text: "0 0 x 0", wantErr: ErrMalformedCount},
		{name: "OutOfRange", n: 2, k: 2, text: "0 0 2 0", wantErr: ErrOutOfRange},
		{name: "ZeroArity", n: 0, k: 1, text: "", wantErr: ErrInvalidArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.n, tt.k, tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	tables := [][]int{
		{0},
		{0, 0, 1, 0},
		{0, 0, 2, 1, 0, 1},
	}
	dims := []struct{ n, k int }{{1, 1}, {2, 2}, {3, 2}}

	for i, delta := range tables {
		a, err := New(dims[i].n, dims[i].k, delta)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}

		b, err := Parse(a.States(), a.Symbols(), a.Serialize())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", a.Serialize(), err)
		}
		if !a.Equal(b) {
			t.Errorf("round trip of %q changed the table", a.Serialize())
		}
		if err := a.Validate(); err != nil {
			t.Errorf("Validate of %q: %v", a.Serialize(), err)
		}
	}
}

func TestSerializeFormat(t *testing.T) {
	a, err := New(2, 2, []int{0, 0, 1, 0})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := a.Serialize(), "0 0 1 0"; got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestRun(t *testing.T) {
	// state 0 sink; state 1: sym 0 -> 1, sym 1 -> 0
	a, err := New(2, 2, []int{0, 0, 1, 0})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got := a.Run([]int{0, 1}, []int{1})
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("Run([0 1], [1]) = %v, want [0 0]", got)
	}

	got = a.Run([]int{0, 1}, []int{0})
	if got[0] != 0 || got[1] != 1 {
		t.Errorf("Run([0 1], [0]) = %v, want [0 1]", got)
	}
}

func TestEqual(t *testing.T) {
	a, _ := New(2, 2, []int{0, 0, 1, 0})
	b, _ := New(2, 2, []int{0, 0, 1, 0})
	c, _ := New(2, 2, []int{0, 0, 0, 0})
	d, _ := New(2, 1, []int{0, 0})

	if !a.Equal(b) {
		t.Error("identical automata not equal")
	}
	if a.Equal(c) {
		t.Error("different tables reported equal")
	}
	if a.Equal(d) {
		t.Error("different dimensions reported equal")
	}
}
