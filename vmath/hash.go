package vmath

// --- Randomness ---

// HashUnit maps an index to a reproducible pseudo-random value in [0, 1).
// Stateless integer finalizer (splitmix-style avalanche), so the same index
// always yields the same value across runs and across goroutines.
func HashUnit(n uint64) float64 {
	x := n + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	// Upper 53 bits fill the float64 mantissa exactly
	return float64(x>>11) / (1 << 53)
}

// FastRand is a xorshift64 generator for non-reproducible jitter
// (test fixtures, demo seeding). Not safe for concurrent use.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RangeF returns a value in [lo, hi)
func (r *FastRand) RangeF(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
