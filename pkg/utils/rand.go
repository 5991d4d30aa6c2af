package utils

import (
	"math/rand"
	"sync"
)

// RandSource is the randomness the generators draw from. Injecting it keeps
// itinerary generation reproducible under test.
type RandSource interface {
	Intn(n int) int
	IntBetween(min, max int) int
	Float64() float64
	Perm(n int) []int
}

// Rand is the seedable RandSource shared across request handlers. The
// mutex makes it safe for concurrent use; generation does not need to be
// cryptographically secure.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Intn(n)
}

// IntBetween returns a uniform random integer in [min, max], inclusive on
// both ends.
func (r *Rand) IntBetween(min, max int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}

// Perm is used for sampling without replacement from catalog slices.
func (r *Rand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Perm(n)
}
