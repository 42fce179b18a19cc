package stream

import (
	"fmt"
	"runtime/debug"
)

// A PanicError carries a panic raised by a producer body together with the
// producer's stack trace. The driver re-raises it on the advancing side, so
// the panic surfaces in the goroutine consuming the stream instead of
// crashing the program from the producer goroutine.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

// Value returns the value the producer panicked with.
func (p *PanicError) Value() any {
	return p.value
}

// Stack returns the stack of the producer goroutine captured when the panic
// was recovered.
func (p *PanicError) Stack() []byte {
	return p.stack
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("stream: producer panicked: %v", p.value)
}

// Unwrap returns the panic value when it is itself an error, so that
// errors.Is and errors.As see through the wrapper.
func (p *PanicError) Unwrap() error {
	if err, ok := p.value.(error); ok {
		return err
	}
	return nil
}
