// Package game holds the pieces shared by the card game engines.
package game

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness source used by every game engine. Tests inject a
// seeded or scripted implementation to make outcomes reproducible.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// LockedRand is a Rand safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func NewRand(seed int64) *LockedRand {
	return &LockedRand{src: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRand is what the bot runs with outside of tests.
func NewTimeSeededRand() *LockedRand {
	return NewRand(time.Now().UnixNano())
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}
