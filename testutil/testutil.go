package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns num pseudo-random values in [0, maxVal). Duplicates are likely
// when num approaches maxVal, which is what update-path tests want.
func (r *RNG) Ints(num, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Uint32s returns num pseudo-random uint32 values in [0, maxVal).
func (r *RNG) Uint32s(num int, maxVal uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, num)
	for i := range out {
		out[i] = uint32(r.rand.Int63n(int64(maxVal)))
	}
	return out
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Strings returns num lowercase ASCII strings of the given length.
func (r *RNG) Strings(num, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, num)
	buf := make([]byte, length)
	for i := range out {
		for j := range buf {
			buf[j] = byte('a' + r.rand.Intn(26))
		}
		out[i] = string(buf)
	}
	return out
}

// Op is a single step of a randomized mutation script.
type Op struct {
	Key    int
	Remove bool
}

// Ops generates num operations over keys in [0, keySpace).
// Each op is a removal with probability removeRate, otherwise an insert.
func (r *RNG) Ops(num, keySpace int, removeRate float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, num)
	for i := range ops {
		ops[i] = Op{
			Key:    r.rand.Intn(keySpace),
			Remove: r.rand.Float64() < removeRate,
		}
	}
	return ops
}

// Zipf returns a Zipfian-distributed value in [0, n).
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
// Hot keys make repeated updates of the same entry common.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform over the cumulative mass
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfKeys returns num Zipfian-distributed keys in [0, n).
func (r *RNG) ZipfKeys(num, n int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.zipfLocked(n, s)
	}
	return out
}
