package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStreamDrain(t *testing.T) {
	assert := assert.New(t)

	s := New(func(e *Emitter[int]) {
		for i := 0; i < 10; i++ {
			e.Yield(i)
		}
	})

	var got []int
	for {
		v, status := s.Advance()
		if status == End {
			break
		}
		assert.Equal(Item, status)
		got = append(got, v)
	}
	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)

	for i := 0; i < 3; i++ {
		_, status := s.Advance()
		assert.Equal(End, status)
	}
}

func TestStreamEmpty(t *testing.T) {
	assert := assert.New(t)

	s := New(func(e *Emitter[int]) {})

	_, status := s.Advance()
	assert.Equal(End, status)

	_, status = s.Advance()
	assert.Equal(End, status)
}

func TestStreamLazyStart(t *testing.T) {
	assert := assert.New(t)

	started := false
	s := New(func(e *Emitter[int]) {
		started = true
		e.Yield(1)
	})
	assert.False(started)

	v, status := s.Advance()
	assert.Equal(Item, status)
	assert.Equal(1, v)
	assert.True(started)
	s.Close()
}

func TestStreamSuspendReportsPending(t *testing.T) {
	assert := assert.New(t)

	s := New(func(e *Emitter[string]) {
		e.Yield("x")
		e.Suspend()
	})

	v, status := s.Advance()
	assert.Equal(Item, status)
	assert.Equal("x", v)

	_, status = s.Advance()
	assert.Equal(Pending, status)

	_, status = s.Advance()
	assert.Equal(End, status)
}

func TestStreamSuspendBeforeFirstEmit(t *testing.T) {
	assert := assert.New(t)

	s := New(func(e *Emitter[int]) {
		e.Suspend()
		e.Yield(42)
	})

	_, status := s.Advance()
	assert.Equal(Pending, status)

	v, status := s.Advance()
	assert.Equal(Item, status)
	assert.Equal(42, v)

	_, status = s.Advance()
	assert.Equal(End, status)
}

func TestStreamCloseRunsCleanup(t *testing.T) {
	assert := assert.New(t)

	cleanups := 0
	s := New(func(e *Emitter[int]) {
		defer func() { cleanups++ }()
		for i := 0; ; i++ {
			e.Yield(i)
		}
	})

	for i := 0; i < 3; i++ {
		v, status := s.Advance()
		assert.Equal(Item, status)
		assert.Equal(i, v)
	}

	s.Close()
	assert.Equal(1, cleanups)

	s.Close()
	assert.Equal(1, cleanups)

	_, status := s.Advance()
	assert.Equal(End, status)
}

func TestStreamCloseBeforeFirstAdvance(t *testing.T) {
	assert := assert.New(t)

	ran := false
	s := New(func(e *Emitter[int]) {
		ran = true
	})

	s.Close()
	assert.False(ran)

	_, status := s.Advance()
	assert.Equal(End, status)
	assert.False(ran)
}

func TestStreamAll(t *testing.T) {
	assert := assert.New(t)

	s := New(func(e *Emitter[int]) {
		for i := 0; i < 5; i++ {
			e.Yield(i * i)
		}
	})

	var got []int
	for v := range s.All() {
		got = append(got, v)
	}
	assert.Equal([]int{0, 1, 4, 9, 16}, got)
}

func TestStreamAllEarlyBreakCloses(t *testing.T) {
	assert := assert.New(t)

	cleanups := 0
	s := New(func(e *Emitter[int]) {
		defer func() { cleanups++ }()
		for i := 0; ; i++ {
			e.Yield(i)
		}
	})

	count := 0
	for range s.All() {
		if count++; count == 2 {
			break
		}
	}
	assert.Equal(2, count)
	assert.Equal(1, cleanups)

	_, status := s.Advance()
	assert.Equal(End, status)
}

// The stream may be handed from one goroutine to another between advance
// calls; the slot and the resume protocol must stay correct when the next
// step runs on a different thread.
func TestStreamAdvanceAcrossGoroutines(t *testing.T) {
	assert := assert.New(t)

	s := New(func(e *Emitter[int]) {
		for i := 0; i < 6; i++ {
			e.Yield(i)
		}
	})

	var first, rest []int
	handoff := make(chan struct{})

	var group errgroup.Group
	group.Go(func() error {
		for i := 0; i < 3; i++ {
			v, _ := s.Advance()
			first = append(first, v)
		}
		close(handoff)
		return nil
	})
	group.Go(func() error {
		<-handoff
		for {
			v, status := s.Advance()
			if status == End {
				return nil
			}
			rest = append(rest, v)
		}
	})
	require.NoError(t, group.Wait())

	assert.Equal([]int{0, 1, 2}, first)
	assert.Equal([]int{3, 4, 5}, rest)
}

func TestStreamProducerPanic(t *testing.T) {
	assert := assert.New(t)

	s := New(func(e *Emitter[int]) {
		e.Yield(1)
		panic("boom")
	})

	v, status := s.Advance()
	assert.Equal(Item, status)
	assert.Equal(1, v)

	advance := func() (recovered any) {
		defer func() { recovered = recover() }()
		s.Advance()
		return nil
	}

	perr, ok := advance().(*PanicError)
	require.True(t, ok)
	assert.Equal("boom", perr.Value())
	assert.NotEmpty(perr.Stack())

	// The panic stays sticky on later advances.
	again, ok := advance().(*PanicError)
	require.True(t, ok)
	assert.Same(perr, again)
}
