package charengine

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource supplies the randomness used for catchphrase, vocabulary,
// fact and emoji selection. Scoring never consumes randomness; only the
// text of a reply does. Tests inject NewSeededRand for exact-output
// assertions.
type RandSource interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
}

// lockedRand is a mutex-guarded math/rand source, safe for use by engines
// shared across goroutines.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// NewTimeSeededRand returns the default concurrency-safe random source.
func NewTimeSeededRand() RandSource {
	return &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRand returns a deterministic source for tests.
func NewSeededRand(seed int64) RandSource {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

// pick returns a random element of items, or the zero value for an empty
// slice. Profile fields can legitimately be empty for hand-authored agents.
func pick[T any](r RandSource, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}
