// Package rng provides the seedable random source shared by the simulation.
//
// A single Source is created per session and passed to every component that
// needs randomness, so a fixed seed and a fixed sequence of calls always
// produce the same run.
package rng

import (
	"math/rand"
	"time"
)

// Source is a uniform random generator.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Rand is a Source backed by math/rand.
type Rand struct {
	seed int64
	r    *rand.Rand
}

// New creates a Source seeded with seed. A zero seed is replaced by the
// current time, as the platform layer does for unseeded sessions.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (s *Rand) Seed() int64 {
	return s.seed
}

// Float64 implements Source.
func (s *Rand) Float64() float64 {
	return s.r.Float64()
}

// Intn implements Source.
func (s *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Fixed replays a scripted sequence, for tests that need exact rolls.
// Floats and ints are consumed from separate queues; an exhausted queue
// keeps returning its last value (or zero when empty).
type Fixed struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 implements Source.
func (f *Fixed) Float64() float64 {
	if len(f.Floats) == 0 {
		return 0
	}
	if f.fi >= len(f.Floats) {
		return f.Floats[len(f.Floats)-1]
	}
	v := f.Floats[f.fi]
	f.fi++
	return v
}

// Intn implements Source. Scripted values are reduced modulo n.
func (f *Fixed) Intn(n int) int {
	if n <= 0 || len(f.Ints) == 0 {
		return 0
	}
	idx := f.ii
	if idx >= len(f.Ints) {
		idx = len(f.Ints) - 1
	} else {
		f.ii++
	}
	v := f.Ints[idx] % n
	if v < 0 {
		v += n
	}
	return v
}

// FloatCalls returns how many scripted floats were consumed.
func (f *Fixed) FloatCalls() int {
	return f.fi
}
