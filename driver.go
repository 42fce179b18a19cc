package stream

// Status is the outcome of a single Advance step.
type Status int

const (
	// Item reports that the producer emitted a value, returned alongside.
	Item Status = iota
	// Pending reports that the producer suspended without emitting; the
	// consumer should advance again.
	Pending
	// End reports that the producer returned and the stream is exhausted.
	End
)

func (s Status) String() string {
	switch s {
	case Item:
		return "Item"
	case Pending:
		return "Pending"
	case End:
		return "End"
	default:
		return "Status(invalid)"
	}
}

// driver owns the slot and the producer computation of one stream, and turns
// "resume the producer one step" into a Status outcome. Stream and TryStream
// are thin views over it.
type driver[T any] struct {
	slot      Slot[T]
	coro      *coroutine
	exhausted bool
	err       error
	panicked  *PanicError
}

func newDriver[T any](body func(*Emitter[T]) error) *driver[T] {
	d := new(driver[T])
	e := &Emitter[T]{slot: &d.slot}
	d.coro = newCoroutine(func() error {
		return body(e)
	})
	e.coro = d.coro
	return d
}

// advance resumes the producer by one step. Exactly one of the outcomes
// holds: the producer emitted a value (Item), suspended without emitting
// (Pending), or returned (End, with the terminal error if any). After End
// every call reports the same outcome again without resuming anything.
//
// A panic raised by the producer is re-raised here, on the advancing side,
// and again on any later call.
func (d *driver[T]) advance() (v T, status Status, err error) {
	if d.exhausted {
		if d.panicked != nil {
			panic(d.panicked)
		}
		return v, End, d.err
	}

	if d.coro.resume() {
		if v, ok := d.slot.Take(); ok {
			return v, Item, nil
		}
		return v, Pending, nil
	}

	d.exhausted = true
	if d.coro.panicked != nil {
		d.panicked = d.coro.panicked
		panic(d.panicked)
	}
	if _, ok := d.slot.Take(); ok {
		// The body deposited a value and returned without awaiting the emit
		// point. Dropping the value silently would hide the bug.
		panic("stream: producer returned with an undelivered value, missing Await on its final emit point")
	}
	d.err = d.coro.err
	return v, End, d.err
}

// close cancels the stream: the producer will not run past its current
// suspension point, except to unwind so that its pending defers execute.
// Closing an exhausted stream, or closing twice, has no effect. If the
// producer was never advanced, its body never runs at all.
//
// A panic raised by the producer's cleanup is re-raised here.
func (d *driver[T]) close() {
	if d.exhausted {
		return
	}
	d.exhausted = true
	d.coro.stop = true
	d.coro.resume()
	d.err = d.coro.err
	if d.coro.panicked != nil {
		d.panicked = d.coro.panicked
		panic(d.panicked)
	}
}
