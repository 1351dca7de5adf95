// Package cache memoizes analysis results between runs.
//
// Synchronization analysis of a large corpus is dominated by repeated work:
// re-running a study over the same (N, K) enumeration re-analyzes the same
// automata. The cache stores serialized [synchro.Result] records keyed by a
// hash of the automaton encoding, so interrupted or repeated runs skip
// already-analyzed automata.
//
// Two backends are provided: [FileCache] for persistent CLI use and
// [NullCache] to disable caching without branching at call sites.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/synchrolab/synchrogen/pkg/automaton"
	"github.com/synchrolab/synchrogen/pkg/synchro"
)

// Cache is the storage interface for memoized results.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResultKey derives the cache key for an automaton's analysis result.
// The key covers the full encoding and dimensions, so automata of different
// sizes never collide.
func ResultKey(a automaton.Automaton) string {
	return fmt.Sprintf("result:%s", Hash([]byte(fmt.Sprintf("%d %d %s", a.States(), a.Symbols(), a.Serialize()))))
}

// GetResult fetches a cached analysis result for a. The second return is
// false on a miss or an undecodable entry (stale entries are treated as
// misses, not failures).
func GetResult(ctx context.Context, c Cache, a automaton.Automaton) (synchro.Result, bool) {
	data, hit, err := c.Get(ctx, ResultKey(a))
	if err != nil || !hit {
		return synchro.Result{}, false
	}
	var res synchro.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return synchro.Result{}, false
	}
	return res, true
}

// SetResult stores the analysis result for a, without expiration: the
// analysis of a fixed automaton never goes stale.
func SetResult(ctx context.Context, c Cache, a automaton.Automaton, res synchro.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return c.Set(ctx, ResultKey(a), data, 0)
}
