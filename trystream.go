package stream

import "iter"

// A TryStream is a Stream whose producer body can fail. The terminal error
// of the body ends the stream the same way a return does, and is reported by
// the Advance call that observes the end. Items themselves are never tagged
// with errors; the body's return value is the only source of stream errors.
type TryStream[T any] struct {
	d *driver[T]
}

// NewTry returns a TryStream driving body. Like New, the body does not start
// until the first Advance.
//
//	s := stream.NewTry(func(e *stream.Emitter[string]) error {
//		e.Yield("a")
//		return lookup("b") // a non-nil error ends the stream
//	})
func NewTry[T any](body func(*Emitter[T]) error) *TryStream[T] {
	return &TryStream[T]{d: newDriver(body)}
}

// Advance resumes the producer by one step. The returned error is non-nil
// only together with End, and only when the producer body failed; once
// reported, the same End and error are reported by every further call.
func (s *TryStream[T]) Advance() (T, Status, error) {
	return s.d.advance()
}

// Err returns the terminal error of the stream. It is non-nil only once
// Advance has reported End on a stream whose producer body failed.
func (s *TryStream[T]) Err() error {
	return s.d.err
}

// Close cancels the stream, unwinding the producer so its pending defers
// run. See Stream.Close.
func (s *TryStream[T]) Close() {
	s.d.close()
}

// All returns an iterator over the remaining values of the stream. A
// producer failure ends the iteration; the error is then available from Err.
// The stream is closed when the consumer stops early.
func (s *TryStream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.Close()
		for {
			v, status, _ := s.Advance()
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
