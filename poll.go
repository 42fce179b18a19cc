package stream

// PollStatus is the outcome of a single Poll call.
type PollStatus int

const (
	// PollItem reports a ready value.
	PollItem PollStatus = iota
	// PollNotReady reports that no value is ready yet; poll again.
	PollNotReady
	// PollDone reports that the stream ended cleanly.
	PollDone
	// PollFailed reports that the stream ended with an error.
	PollFailed
)

func (s PollStatus) String() string {
	switch s {
	case PollItem:
		return "PollItem"
	case PollNotReady:
		return "PollNotReady"
	case PollDone:
		return "PollDone"
	case PollFailed:
		return "PollFailed"
	default:
		return "PollStatus(invalid)"
	}
}

// A Poller adapts a TryStream to the older poll-driven stream convention
// where each call reports one of a ready item, not-ready, a clean end, or a
// terminal error. It holds no state beyond the stream it wraps; every Poll
// is a single Advance.
type Poller[T any] struct {
	s *TryStream[T]
}

// NewPoller returns a Poller over s. The Poller does not take ownership:
// Advance and Poll calls may be interleaved, each consuming one step.
func NewPoller[T any](s *TryStream[T]) *Poller[T] {
	return &Poller[T]{s: s}
}

// Poll advances the stream one step. The error is non-nil exactly when the
// status is PollFailed, and a polled-out stream keeps reporting its terminal
// status.
func (p *Poller[T]) Poll() (v T, status PollStatus, err error) {
	v, s, err := p.s.Advance()
	switch s {
	case Item:
		return v, PollItem, nil
	case Pending:
		var zero T
		return zero, PollNotReady, nil
	default:
		var zero T
		if err != nil {
			return zero, PollFailed, err
		}
		return zero, PollDone, nil
	}
}
