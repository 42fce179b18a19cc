// Package stream turns ordinary sequential producer code into pull-based
// sequences. A producer body emits values at explicit points and the consumer
// drives it one step at a time: no separate task, no queue, no buffering
// beyond a single slot carrying one value across each suspension. Dropping
// interest in the stream (Close) unwinds the producer so its deferred
// cleanups run.
package stream

import "iter"

// A Stream produces the values emitted by a producer body, one per Advance
// call. The body runs as a coroutine inside the consumer's thread of
// control: it does not start until the first Advance, and it only runs
// between an Advance call and the moment it next suspends.
type Stream[T any] struct {
	d *driver[T]
}

// New returns a Stream driving body. The body receives the stream's Emitter
// and produces values through it; returning ends the stream.
//
//	s := stream.New(func(e *stream.Emitter[int]) {
//		for i := 0; i < 10; i++ {
//			e.Yield(i)
//		}
//	})
func New[T any](body func(*Emitter[T])) *Stream[T] {
	return &Stream[T]{d: newDriver(func(e *Emitter[T]) error {
		body(e)
		return nil
	})}
}

// Advance resumes the producer by one step and reports the outcome: a value
// was emitted (Item), the producer suspended without emitting (Pending), or
// the producer returned (End). Advancing an exhausted stream keeps reporting
// End without resuming anything.
func (s *Stream[T]) Advance() (T, Status) {
	v, status, _ := s.d.advance()
	return v, status
}

// Close cancels the stream. The producer does not emit again; it unwinds
// from its current suspension point so that its pending defers run. Close is
// idempotent, a no-op on an exhausted stream, and if the stream was never
// advanced the producer body never runs at all.
func (s *Stream[T]) Close() {
	s.d.close()
}

// All returns an iterator over the remaining values of the stream. The
// stream is closed when the consumer stops early, and exhausted otherwise.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.Close()
		for {
			v, status := s.Advance()
			switch status {
			case Item:
				if !yield(v) {
					return
				}
			case End:
				return
			}
		}
	}
}
