package dice

import "sync"

// sequenceSource replays a fixed list of values, wrapping around when
// exhausted. Intended for deterministic selection in tests.
type sequenceSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequenceSource returns a Source that yields the given values in
// order, cycling when it reaches the end. Each value is reduced modulo
// the requested bound so callers can pass raw indices.
//
// Precondition: at least one value must be provided.
func NewSequenceSource(values ...int) Source {
	if len(values) == 0 {
		panic("dice: NewSequenceSource requires at least one value")
	}
	return &sequenceSource{values: values}
}

// Intn returns the next scripted value reduced into [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *sequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)] % n
	s.next++
	if v < 0 {
		v += n
	}
	return v
}
