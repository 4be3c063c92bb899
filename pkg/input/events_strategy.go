package input

// Poller returns the next pending event, waiting at most timeoutMs for it.
// ok is false when nothing arrived.
type Poller func(timeoutMs int) (e Event, ok bool)

// EventsConsumerStrategy decides how much pending input one frame handles.
// Whatever it leaves behind stays queued for the next frame.
type EventsConsumerStrategy interface {
	Consume(poll Poller, handle func(Event), timeoutMs int) int
}

// drain hands events to handle until poll runs dry, limit events were
// handled or stop accepts the last one. Only the first poll waits.
func drain(poll Poller, handle func(Event), timeoutMs, limit int, stop func(Event) bool) int {
	count := 0
	for limit <= 0 || count < limit {
		event, ok := poll(timeoutMs)
		if !ok {
			break
		}
		timeoutMs = 0
		handle(event)
		count++
		if stop != nil && stop(event) {
			break
		}
	}
	return count
}

func closing(e Event) bool {
	_, ok := e.(DestroyNotify)
	return ok
}

type drainAll struct{}

// Consume stops early on DestroyNotify; nothing after it is drawn anyway.
func (drainAll) Consume(poll Poller, handle func(Event), timeoutMs int) int {
	return drain(poll, handle, timeoutMs, 0, closing)
}

type drainMax struct {
	max int
}

func (s drainMax) Consume(poll Poller, handle func(Event), timeoutMs int) int {
	return drain(poll, handle, timeoutMs, max(s.max, 1), closing)
}

type untilKeyChange struct{}

// Consume stops after the first event that changes a KeySet, so a press and
// its release never land in the same frame and a short tap is still seen by
// one frame's key set.
func (untilKeyChange) Consume(poll Poller, handle func(Event), timeoutMs int) int {
	return drain(poll, handle, timeoutMs, 0, func(e Event) bool {
		switch e.(type) {
		case KeyPress, KeyRelease, DestroyNotify:
			return true
		}
		return false
	})
}

// DrainAll handles every pending event.
func DrainAll() EventsConsumerStrategy {
	return drainAll{}
}

// DrainMax handles at most n events per frame; n below 1 counts as 1.
func DrainMax(n int) EventsConsumerStrategy {
	return drainMax{max: n}
}

// UntilKeyChange handles events up to and including the next key press or
// release.
func UntilKeyChange() EventsConsumerStrategy {
	return untilKeyChange{}
}
