package ids

import "sync/atomic"

// Allocator hands out process-unique numeric ids. Injected instead of a
// package-level counter so components stay testable in isolation.
type Allocator interface {
	Next() uint64
}

type Sequence struct {
	counter atomic.Uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() uint64 {
	return s.counter.Add(1)
}
