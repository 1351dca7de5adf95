package report

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/synchrolab/synchrogen/pkg/synchro"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestPushLineFormat(t *testing.T) {
	tests := []struct {
		name  string
		res   synchro.Result
		index int
		want  string
	}{
		{
			name:  "NonSynchro",
			res:   synchro.Result{NonSynchro: true},
			index: 3,
			want:  "3: NON SYNCHRO\n",
		},
		{
			name: "Bounded",
			res: synchro.Result{
				LowerBound: 2,
				UpperBound: 5,
				AlgorithmsRun: []synchro.AlgoTiming{
					{Name: "pairs", Seconds: 0.5},
					{Name: "eppstein", Seconds: 0.25},
				},
			},
			index: 0,
			want:  "0: [2, 5] ((pairs, 0.5), (eppstein, 0.25))\n",
		},
		{
			name: "BoundedWithWord",
			res: synchro.Result{
				LowerBound: 1,
				UpperBound: 3,
				Word:       []int{0, 1, 0},
				AlgorithmsRun: []synchro.AlgoTiming{
					{Name: "pairs", Seconds: 0.5},
				},
			},
			index: 7,
			want:  "7: [1, 3] ((pairs, 0.5)) {0 1 0}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewReporter(&buf, quietLogger())

			if err := r.Push(tt.res, tt.index); err != nil {
				t.Fatalf("Push error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAggregation(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, quietLogger())

	bounds := [][2]int{{3, 5}, {2, 7}, {4, 6}}
	for i, b := range bounds {
		res := synchro.Result{LowerBound: b[0], UpperBound: b[1]}
		if err := r.Push(res, i); err != nil {
			t.Fatalf("Push error: %v", err)
		}
	}

	if got, want := r.Summary(), "[4, 7]"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
	if r.MinMax() != 4 || r.MaxMax() != 7 {
		t.Errorf("maxima = (%d, %d), want (4, 7)", r.MinMax(), r.MaxMax())
	}
}

func TestAggregationSkipsNonSynchro(t *testing.T) {
	r := NewReporter(nil, quietLogger())

	if err := r.Push(synchro.Result{LowerBound: 2, UpperBound: 3}, 0); err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if err := r.Push(synchro.Result{NonSynchro: true, LowerBound: 99, UpperBound: 99}, 1); err != nil {
		t.Fatalf("Push error: %v", err)
	}

	if got, want := r.Summary(), "[2, 3]"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestSummaryOnlyMode(t *testing.T) {
	r := NewReporter(nil, quietLogger())

	res := synchro.Result{LowerBound: 1, UpperBound: 2, Word: []int{0}}
	if err := r.Push(res, 0); err != nil {
		t.Fatalf("Push error: %v", err)
	}

	// Maxima are still tracked without a destination.
	if got, want := r.Summary(), "[1, 2]"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestSummaryInitial(t *testing.T) {
	r := NewReporter(nil, quietLogger())
	if got, want := r.Summary(), "[0, 0]"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}
