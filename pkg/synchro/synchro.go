package synchro

import (
	"time"

	"github.com/synchrolab/synchrogen/pkg/automaton"
)

// AlgoTiming records the wall-clock duration of one sub-algorithm.
type AlgoTiming struct {
	Name    string
	Seconds float64
}

// Result is the outcome of analyzing a single automaton.
type Result struct {
	// NonSynchro is true when the automaton has no synchronizing word.
	// The bounds and word are meaningless in that case.
	NonSynchro bool

	// LowerBound and UpperBound bracket the minimum length synchronizing
	// word. LowerBound <= MLSW <= UpperBound.
	LowerBound int
	UpperBound int

	// Word is a witness synchronizing word of length UpperBound, present
	// only when requested via Options.ComputeWord.
	Word []int

	// AlgorithmsRun lists the sub-algorithms invoked, in order, with their
	// timings.
	AlgorithmsRun []AlgoTiming
}

// Options controls the analysis.
type Options struct {
	// ComputeWord retains the witness word in the result. The upper bound
	// is computed either way.
	ComputeWord bool
}

// Analyze computes MLSW bounds for a. It is deterministic and performs no
// I/O; distinct calls are independent and may run concurrently on different
// automata.
func Analyze(a automaton.Automaton, opts Options) Result {
	var res Result

	start := time.Now()
	pd := mergeDistances(a)
	res.AlgorithmsRun = append(res.AlgorithmsRun, AlgoTiming{Name: "pairs", Seconds: time.Since(start).Seconds()})

	if !pd.synchronizing {
		res.NonSynchro = true
		return res
	}
	res.LowerBound = pd.maxDist

	start = time.Now()
	word := greedyWord(a, pd)
	res.AlgorithmsRun = append(res.AlgorithmsRun, AlgoTiming{Name: "eppstein", Seconds: time.Since(start).Seconds()})

	res.UpperBound = len(word)
	if res.LowerBound > res.UpperBound {
		// The greedy word can beat the pairwise bound only if the pair BFS
		// is wrong; clamp defensively so callers always see lower <= upper.
		res.LowerBound = res.UpperBound
	}
	if opts.ComputeWord {
		res.Word = word
	}
	return res
}

// pairData indexes unordered state pairs {p, q}, p <= q, as p*n+q.
type pairData struct {
	n             int
	dist          []int // shortest merging word length, -1 = unmergeable
	mergeSym      []int // first symbol of that word
	mergeNext     []int // pair reached after applying mergeSym
	maxDist       int
	synchronizing bool
}

func pairID(n, p, q int) int {
	if p > q {
		p, q = q, p
	}
	return p*n + q
}

// mergeDistances runs a reverse BFS over the pair automaton, seeded on the
// diagonal. For every pair it records the shortest word collapsing the pair
// and the first step of that word, which greedyWord later replays.
func mergeDistances(a automaton.Automaton) pairData {
	n, k := a.States(), a.Symbols()

	pd := pairData{
		n:         n,
		dist:      make([]int, n*n),
		mergeSym:  make([]int, n*n),
		mergeNext: make([]int, n*n),
	}
	for i := range pd.dist {
		pd.dist[i] = -1
	}

	// Preimages per symbol, for walking pair edges backwards.
	inv := make([][][]int, k)
	for sym := 0; sym < k; sym++ {
		inv[sym] = make([][]int, n)
		for s := 0; s < n; s++ {
			t := a.At(s, sym)
			inv[sym][t] = append(inv[sym][t], s)
		}
	}

	queue := make([]int, 0, n*n)
	for s := 0; s < n; s++ {
		id := pairID(n, s, s)
		pd.dist[id] = 0
		queue = append(queue, id)
	}

	for head := 0; head < len(queue); head++ {
		id := queue[head]
		r, t := id/n, id%n
		for sym := 0; sym < k; sym++ {
			for _, p := range inv[sym][r] {
				for _, q := range inv[sym][t] {
					pid := pairID(n, p, q)
					if pd.dist[pid] != -1 {
						continue
					}
					pd.dist[pid] = pd.dist[id] + 1
					pd.mergeSym[pid] = sym
					pd.mergeNext[pid] = id
					queue = append(queue, pid)
				}
			}
		}
	}

	pd.synchronizing = true
	for p := 0; p < n; p++ {
		for q := p + 1; q < n; q++ {
			d := pd.dist[pairID(n, p, q)]
			if d == -1 {
				pd.synchronizing = false
				return pd
			}
			if d > pd.maxDist {
				pd.maxDist = d
			}
		}
	}
	return pd
}

// greedyWord builds a synchronizing word by repeatedly merging the closest
// pair among the still-active states (Eppstein's heuristic). The automaton
// must be synchronizing.
func greedyWord(a automaton.Automaton, pd pairData) []int {
	n := a.States()

	active := make(map[int]struct{}, n)
	for s := 0; s < n; s++ {
		active[s] = struct{}{}
	}

	var word []int
	for len(active) > 1 {
		p, q := closestPair(pd, active)

		// Replay the stored merging word for {p, q}, applying each symbol
		// to the whole active set.
		for id := pairID(pd.n, p, q); pd.dist[id] > 0; id = pd.mergeNext[id] {
			sym := pd.mergeSym[id]
			word = append(word, sym)
			next := make(map[int]struct{}, len(active))
			for s := range active {
				next[a.At(s, sym)] = struct{}{}
			}
			active = next
		}
	}
	return word
}

// closestPair returns the active pair with the smallest merge distance.
// Ties break on the lowest pair id so the word is deterministic.
func closestPair(pd pairData, active map[int]struct{}) (int, int) {
	bestP, bestQ, bestD := -1, -1, -1
	for p := 0; p < pd.n; p++ {
		if _, ok := active[p]; !ok {
			continue
		}
		for q := p + 1; q < pd.n; q++ {
			if _, ok := active[q]; !ok {
				continue
			}
			d := pd.dist[pairID(pd.n, p, q)]
			if bestD == -1 || d < bestD {
				bestP, bestQ, bestD = p, q, d
			}
		}
	}
	return bestP, bestQ
}
