package scratch

import "sync"

// Allocator hands out item slices for scratch storage and clones and takes
// them back when they are released. Alloc returns a slice of length n. Free
// must be called at most once per slice returned by Alloc.
type Allocator[I any] interface {
	Alloc(n int) []I
	Free(s []I)
}

// Heap is the default Allocator. It allocates from the garbage collected heap
// and Free does nothing.
type Heap[I any] struct{}

// Alloc returns a fresh slice of length n.
func (Heap[I]) Alloc(n int) []I { return make([]I, n) }

// Free is a no-op.
func (Heap[I]) Free([]I) {}

const poolMaxCap = 4096

// Pool is an Allocator that recycles released slices through a sync.Pool.
// Slices larger than 4096 items are left to the garbage collector.
type Pool[I any] struct {
	p sync.Pool
}

// Alloc returns a zeroed slice of length n, reusing a released slice when one
// with enough capacity is available.
func (p *Pool[I]) Alloc(n int) []I {
	if v, ok := p.p.Get().(*[]I); ok && cap(*v) >= n {
		s := (*v)[:n]
		clear(s)
		return s
	}
	return make([]I, n)
}

// Free returns s to the pool.
func (p *Pool[I]) Free(s []I) {
	if cap(s) == 0 || cap(s) > poolMaxCap {
		return
	}
	s = s[:0]
	p.p.Put(&s)
}

// Counting wraps another Allocator and keeps track of every slice it has
// handed out. It is meant for tests that need to prove every allocation is
// either freed once or handed to a caller.
type Counting[I any] struct {
	// Inner does the actual allocation. Heap is used when it is nil.
	Inner Allocator[I]

	Allocs  int // number of calls to Alloc
	Frees   int // number of successful calls to Free
	Invalid int // Free calls for slices that are not live (double or foreign frees)

	live map[*I]struct{}
}

func (c *Counting[I]) inner() Allocator[I] {
	if c.Inner == nil {
		return Heap[I]{}
	}
	return c.Inner
}

// Alloc allocates through Inner and records the slice as live.
func (c *Counting[I]) Alloc(n int) []I {
	s := c.inner().Alloc(n)
	if cap(s) == 0 {
		s = make([]I, n, 1)
	}

	if c.live == nil {
		c.live = map[*I]struct{}{}
	}

	c.Allocs++
	c.live[&s[:1][0]] = struct{}{}
	return s
}

// Free releases s through Inner. Freeing a slice that is not live is counted
// in Invalid and otherwise ignored.
func (c *Counting[I]) Free(s []I) {
	if cap(s) == 0 {
		c.Invalid++
		return
	}

	key := &s[:1][0]
	if _, ok := c.live[key]; !ok {
		c.Invalid++
		return
	}

	delete(c.live, key)
	c.Frees++
	c.inner().Free(s)
}

// Live returns the number of slices allocated and not yet freed.
func (c *Counting[I]) Live() int {
	return len(c.live)
}

// IsLive reports whether s was allocated here and has not been freed.
func (c *Counting[I]) IsLive(s []I) bool {
	if cap(s) == 0 {
		return false
	}
	_, ok := c.live[&s[:1][0]]
	return ok
}
