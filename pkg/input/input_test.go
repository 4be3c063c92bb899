package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/magiebleue/pkg/input"
)

func TestKeySetApply(t *testing.T) {
	keys := input.NewKeySet()
	keys.Apply(input.KeyPress{Key: input.KeyW})
	keys.Apply(input.KeyPress{Key: input.KeyLeftShift})
	keys.Apply(input.KeyRepeat{Key: input.KeyA})
	keys.Apply(input.MotionNotify{X: 1, Y: 2})

	assert.True(t, keys.Contains(input.KeyW))
	assert.False(t, keys.Contains(input.KeyA))
	assert.True(t, keys.Any(input.KeyRightShift, input.KeyLeftShift))
	assert.Equal(t, []input.Key{input.KeyW, input.KeyLeftShift}, keys.Keys())

	keys.Apply(input.KeyRelease{Key: input.KeyW})
	keys.Apply(input.KeyRelease{Key: input.KeyS})
	assert.False(t, keys.Contains(input.KeyW))
	assert.Equal(t, 1, keys.Len())
}

func TestKeySetClone(t *testing.T) {
	keys := input.NewKeySet()
	keys.Apply(input.KeyPress{Key: input.KeyD})
	clone := keys.Clone()
	keys.Apply(input.KeyRelease{Key: input.KeyD})
	assert.True(t, clone.Contains(input.KeyD))
	assert.False(t, keys.Contains(input.KeyD))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "W", input.KeyW.String())
	assert.Equal(t, "Escape", input.KeyEscape.String())
	assert.Equal(t, "Key(-1)", input.KeyUnknown.String())
}

func queue(events ...input.Event) func(int) (input.Event, bool) {
	return func(int) (input.Event, bool) {
		if len(events) == 0 {
			return nil, false
		}
		e := events[0]
		events = events[1:]
		return e, true
	}
}

func TestDrainAll(t *testing.T) {
	var handled []input.Event
	poll := queue(input.KeyPress{Key: input.KeyW}, input.KeyRelease{Key: input.KeyW}, input.DestroyNotify{})
	n := input.DrainAll().Consume(poll, func(e input.Event) { handled = append(handled, e) }, 5)
	assert.Equal(t, 3, n)
	assert.Len(t, handled, 3)

	n = input.DrainAll().Consume(queue(), func(input.Event) {}, 0)
	assert.Zero(t, n)
}

func TestDrainMax(t *testing.T) {
	poll := queue(input.KeyPress{}, input.KeyPress{}, input.KeyPress{})
	count := 0
	n := input.DrainMax(2).Consume(poll, func(input.Event) { count++ }, 0)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, count)

	n = input.DrainMax(0).Consume(poll, func(input.Event) { count++ }, 0)
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, count)
}

func TestDrainAllStopsOnDestroy(t *testing.T) {
	poll := queue(input.MotionNotify{}, input.DestroyNotify{}, input.KeyPress{Key: input.KeyW})
	n := input.DrainAll().Consume(poll, func(input.Event) {}, 0)
	assert.Equal(t, 2, n)

	_, ok := poll(0)
	assert.True(t, ok, "events after DestroyNotify stay queued")
}

func TestDrainWaitsOnlyForFirstEvent(t *testing.T) {
	var timeouts []int
	events := []input.Event{input.MotionNotify{}, input.MotionNotify{}}
	poll := func(timeoutMs int) (input.Event, bool) {
		timeouts = append(timeouts, timeoutMs)
		if len(events) == 0 {
			return nil, false
		}
		e := events[0]
		events = events[1:]
		return e, true
	}
	input.DrainAll().Consume(poll, func(input.Event) {}, 16)
	assert.Equal(t, []int{16, 0, 0}, timeouts)
}

func TestUntilKeyChangeKeepsTapsApart(t *testing.T) {
	keys := input.NewKeySet()
	poll := queue(
		input.MotionNotify{X: 1},
		input.KeyPress{Key: input.KeyW},
		input.KeyRelease{Key: input.KeyW},
		input.MotionNotify{X: 2},
	)
	strategy := input.UntilKeyChange()

	n := strategy.Consume(poll, keys.Apply, 0)
	assert.Equal(t, 2, n)
	assert.True(t, keys.Contains(input.KeyW))

	n = strategy.Consume(poll, keys.Apply, 0)
	assert.Equal(t, 1, n)
	assert.False(t, keys.Contains(input.KeyW))

	n = strategy.Consume(poll, keys.Apply, 0)
	assert.Equal(t, 1, n)
	assert.Zero(t, strategy.Consume(poll, keys.Apply, 0))
}

func TestBindings(t *testing.T) {
	b := input.NewBindings()
	closed := 0
	b.BindTrigger(input.KeyEscape, func() { closed++ })
	b.BindTrigger(input.KeyF, nil)

	assert.True(t, b.Dispatch(input.KeyPress{Key: input.KeyEscape}))
	assert.False(t, b.Dispatch(input.KeyRelease{Key: input.KeyEscape}))
	assert.False(t, b.Dispatch(input.KeyPress{Key: input.KeyF}))
	assert.Equal(t, 1, closed)

	b.Unbind(input.KeyEscape)
	assert.False(t, b.Dispatch(input.KeyPress{Key: input.KeyEscape}))
	assert.Equal(t, 1, closed)
}

func TestQueueFIFO(t *testing.T) {
	var q input.Queue
	_, ok := q.Pop()
	assert.False(t, ok)

	q.Push(input.KeyPress{Key: input.KeyW})
	q.Push(input.MotionNotify{X: 1, Y: 2})
	assert.Equal(t, 2, q.Len())

	e, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, input.KeyPress{Key: input.KeyW}, e)

	e, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, input.MotionNotify{X: 1, Y: 2}, e)

	_, ok = q.Pop()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
}

func TestQueueDrainedByStrategy(t *testing.T) {
	var q input.Queue
	for i := 0; i < 5; i++ {
		q.Push(input.MotionNotify{X: float64(i)})
	}
	poll := func(int) (input.Event, bool) { return q.Pop() }

	var seen []float64
	handle := func(e input.Event) { seen = append(seen, e.(input.MotionNotify).X) }

	assert.Equal(t, 3, input.DrainMax(3).Consume(poll, handle, 0))
	assert.Equal(t, 2, input.DrainAll().Consume(poll, handle, 0))
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, seen)
}
