package stream

import "runtime"

// coroutine is a suspended producer computation: a goroutine parked on an
// unbuffered channel. Control ping-pongs over next, with the driver sending
// to resume the producer and the producer sending back when it suspends. The
// channel is closed when the producer function returns; the close is also the
// happens-before edge making err and panicked visible to the driver.
//
// The producer never runs concurrently with the driver: between a resume and
// the matching suspension the producer runs instead of the driver.
type coroutine struct {
	next     chan struct{}
	stop     bool
	done     bool
	err      error
	panicked *PanicError
}

// newCoroutine spawns the producer goroutine around f. No producer code runs
// until the first resume: the goroutine parks on next immediately, and if the
// coroutine is stopped before that first resume, f is never called.
func newCoroutine(f func() error) *coroutine {
	c := &coroutine{next: make(chan struct{})}

	go func() {
		defer func() {
			c.done = true
			if v := recover(); v != nil {
				c.panicked = newPanicError(v)
			}
			close(c.next)
		}()

		<-c.next

		if !c.stop {
			c.err = f()
		}
	}()

	return c
}

// resume executes the producer until its next suspension point, or until
// completion. It reports true if the producer suspended again, false once the
// producer function has returned.
func (c *coroutine) resume() bool {
	if c.done {
		return false
	}
	c.next <- struct{}{}
	_, ok := <-c.next
	return ok
}

// suspend parks the producer until the next resume. It must only be called
// from the producer goroutine. If the coroutine was stopped while parked, the
// producer unwinds with runtime.Goexit so its pending defers run.
func (c *coroutine) suspend() {
	c.next <- struct{}{}
	<-c.next
	if c.stop {
		runtime.Goexit()
	}
}
