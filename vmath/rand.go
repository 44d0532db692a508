package vmath

import (
	"math"
)

// Rand is a xorshift64 random source. Simulation code takes an
// explicit *Rand instead of the process-global generator so tests can
// seed deterministic sequences.
type Rand struct {
	state uint64

	// Box-Muller produces values in pairs; the spare is cached
	spare    float64
	hasSpare bool
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Float64In returns a uniform value in [lo, hi).
func (r *Rand) Float64In(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// NormFloat64 returns a standard normal sample via Box-Muller.
func (r *Rand) NormFloat64() float64 {
	if r.hasSpare {
		r.hasSpare = false
		return r.spare
	}

	var u float64
	for u == 0 {
		u = r.Float64()
	}
	v := r.Float64()

	mag := math.Sqrt(-2 * math.Log(u))
	r.spare = mag * math.Sin(2*math.Pi*v)
	r.hasSpare = true
	return mag * math.Cos(2*math.Pi*v)
}

// Gauss returns a normal sample with the given mean and standard
// deviation.
func (r *Rand) Gauss(mean, std float64) float64 {
	return mean + std*r.NormFloat64()
}
