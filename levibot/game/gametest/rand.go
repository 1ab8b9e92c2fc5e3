// Package gametest provides scripted randomness for game engine tests.
package gametest

import "sync"

// ScriptedRand replays fixed values. Once a queue is drained the last value
// is repeated, and an empty queue yields zero.
type ScriptedRand struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
}

func NewScriptedRand(ints []int, floats []float64) *ScriptedRand {
	return &ScriptedRand{ints: ints, floats: floats}
}

func (r *ScriptedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *ScriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

// FixedRand always returns the same values.
type FixedRand struct {
	Int   int
	Float float64
}

func (r FixedRand) Intn(n int) int {
	if r.Int >= n {
		return n - 1
	}
	return r.Int
}

func (r FixedRand) Float64() float64 {
	return r.Float
}
