package stream

// An Emitter hands values from a producer body to the consumer driving the
// stream. Each producer body receives exactly one Emitter; it shares the
// stream's slot and must only be used from inside that body.
type Emitter[T any] struct {
	slot    *Slot[T]
	coro    *coroutine
	pending *EmitPoint
}

// Emit deposits v for the consumer and returns the suspension token for this
// emission. The producer must call Await on the token before emitting again
// or returning; emitting while a previous token is still pending would let a
// value be overwritten before the consumer saw it, so Emit panics instead.
func (e *Emitter[T]) Emit(v T) *EmitPoint {
	if e.pending != nil && !e.pending.resumed {
		panic("stream: Emit called before awaiting the previous emit point")
	}
	e.slot.Deposit(v)
	p := &EmitPoint{coro: e.coro}
	e.pending = p
	return p
}

// Yield emits v and immediately awaits the emission. It is the common way to
// produce an item: the value becomes the result of the consumer's current
// Advance call and the producer continues on the next one.
func (e *Emitter[T]) Yield(v T) {
	e.Emit(v).Await()
}

// Suspend pauses the producer without emitting a value. The consumer's
// Advance call reports Pending and the producer continues on the next one.
func (e *Emitter[T]) Suspend() {
	e.coro.suspend()
}

// An EmitPoint is the one-shot suspension token minted by Emit. Awaiting it
// hands control back to the consumer exactly once, which guarantees the
// driver drains the slot before the producer can run on to overwrite it or
// suspend elsewhere. Once resumed the token is spent.
type EmitPoint struct {
	coro    *coroutine
	resumed bool
}

// Await suspends the producer at this emit point until the consumer advances
// the stream again. Await returns immediately on a token that was already
// awaited.
func (p *EmitPoint) Await() {
	if p.resumed {
		return
	}
	p.resumed = true
	p.coro.suspend()
}

// Resumed reports whether the emit point has already been awaited.
func (p *EmitPoint) Resumed() bool {
	return p.resumed
}
