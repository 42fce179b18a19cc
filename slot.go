package stream

import "sync"

// A Slot is the single-item mailbox shared by the two sides of a stream: the
// producer's Emitter deposits into it, the driver drains it. The two sides
// take strict turns, but a resume step may run on a different OS thread than
// the previous one, so access is synchronized rather than relying on the
// alternation alone.
//
// The zero value is an empty slot ready for use.
type Slot[T any] struct {
	mutex sync.Mutex
	item  T
	full  bool
}

// Deposit stores v in the slot, replacing any item already present. It never
// blocks. The emit protocol drains the slot between deposits; if it did not,
// the last write wins.
func (s *Slot[T]) Deposit(v T) {
	s.mutex.Lock()
	s.item = v
	s.full = true
	s.mutex.Unlock()
}

// Take removes and returns the stored item. The second return value is false
// when the slot is empty.
func (s *Slot[T]) Take() (v T, ok bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.full {
		return v, false
	}
	v = s.item
	var zero T
	s.item = zero
	s.full = false
	return v, true
}
