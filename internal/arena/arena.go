package arena

import (
	"errors"
	"math"
	"math/bits"
)

var (
	// ErrArenaFull is returned when the uint32 index space is exhausted.
	ErrArenaFull = errors.New("arena: index space exhausted")
)

const (
	// DefaultChunkSize is the default number of objects per chunk.
	DefaultChunkSize = 256
	// MaxChunkSize bounds a single chunk allocation.
	MaxChunkSize = 1 << 20
)

// Index addresses an object in an Arena. The zero Index is Nil.
type Index uint32

// Nil is the reserved null index.
const Nil Index = 0

// Stats tracks arena usage.
//
// Note on semantics:
//   - ChunksAllocated: chunks currently held
//   - Live: objects allocated and not yet freed
//   - Free: recycled slots waiting for reuse
//   - TotalAllocs: cumulative allocation count
type Stats struct {
	ChunksAllocated uint64
	Live            uint64
	Free            uint64
	TotalAllocs     uint64
}

// Arena is a chunked object arena addressed by Index.
type Arena[T any] struct {
	chunkSize int
	chunkBits int
	chunkMask uint32
	chunks    [][]T
	next      uint64 // next never-used slot
	limit     uint64 // exclusive upper bound for next
	free      []Index
	live      int
	allocs    uint64
}

// Option is a configuration option for Arena.
type Option func(*options)

type options struct {
	limit uint64
}

// WithLimit caps the number of addressable slots (including the reserved
// Nil slot). It exists mainly to exercise exhaustion in tests.
func WithLimit(slots uint64) Option {
	return func(o *options) {
		o.limit = slots
	}
}

// New creates a new Arena. chunkSize is rounded up to the next power of two;
// values <= 0 select DefaultChunkSize.
func New[T any](chunkSize int, opts ...Option) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize > MaxChunkSize {
		chunkSize = MaxChunkSize
	}

	// Round up to next power of 2 for efficient bitwise operations
	chunkBits := bits.Len(uint(chunkSize - 1)) //nolint:gosec // chunkSize > 0
	chunkSize = 1 << chunkBits

	o := options{limit: math.MaxUint32 + 1}
	for _, opt := range opts {
		opt(&o)
	}

	return &Arena[T]{
		chunkSize: chunkSize,
		chunkBits: chunkBits,
		chunkMask: uint32(chunkSize - 1), //nolint:gosec // chunkSize <= MaxChunkSize
		next:      1,                     // Reserve index 0 as Nil
		limit:     o.limit,
	}
}

// Alloc returns a fresh zeroed slot and its index.
func (a *Arena[T]) Alloc() (Index, *T, error) {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.live++
		a.allocs++
		return idx, a.Get(idx), nil
	}

	if a.next >= a.limit {
		return Nil, nil, ErrArenaFull
	}

	idx := Index(a.next) //nolint:gosec // next < limit <= 1<<32
	if c := int(uint32(idx) >> a.chunkBits); c >= len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, a.chunkSize))
	}
	a.next++
	a.live++
	a.allocs++
	return idx, a.Get(idx), nil
}

// Get returns a pointer to the object at idx, or nil for Nil and
// indexes that were never allocated.
func (a *Arena[T]) Get(idx Index) *T {
	if idx == Nil || uint64(idx) >= a.next {
		return nil
	}
	return &a.chunks[uint32(idx)>>a.chunkBits][uint32(idx)&a.chunkMask]
}

// Free zeroes the slot at idx and makes it available for reuse.
// Freeing Nil is a no-op. Freeing the same index twice is a caller bug.
func (a *Arena[T]) Free(idx Index) {
	p := a.Get(idx)
	if p == nil {
		return
	}
	var zero T
	*p = zero
	a.free = append(a.free, idx)
	a.live--
}

// Len returns the number of live objects.
func (a *Arena[T]) Len() int {
	return a.live
}

// Reset drops all objects and chunks.
func (a *Arena[T]) Reset() {
	a.chunks = nil
	a.free = nil
	a.next = 1
	a.live = 0
}

// Stats returns current usage.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		ChunksAllocated: uint64(len(a.chunks)),
		Live:            uint64(a.live), //nolint:gosec // live >= 0
		Free:            uint64(len(a.free)),
		TotalAllocs:     a.allocs,
	}
}
