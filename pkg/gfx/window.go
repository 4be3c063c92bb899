package gfx

import (
	"context"
	"sync"
	"time"

	"github.com/kjkrol/magiebleue/internal/platform"
	"github.com/kjkrol/magiebleue/pkg/glw"
	"github.com/kjkrol/magiebleue/pkg/input"
	"github.com/kjkrol/magiebleue/pkg/logging"
)

type WindowConfig struct {
	Width         int
	Height        int
	Title         string
	Fullscreen    bool
	VSync         bool
	CaptureCursor bool
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		Width:         w.Width,
		Height:        w.Height,
		Title:         w.Title,
		Fullscreen:    w.Fullscreen,
		VSync:         w.VSync,
		CaptureCursor: w.CaptureCursor,
	}
}

// FrameFunc draws one frame. keys holds the keys pressed when the frame
// started and t is seconds since the window was created.
type FrameFunc func(w *Window, keys input.KeySet, t float64)

// CursorFunc receives absolute cursor positions in window coordinates.
type CursorFunc func(w *Window, x, y float64)

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	keys               input.KeySet
	bindings           *input.Bindings
	strategy           input.EventsConsumerStrategy
	onCursor           CursorFunc
	refreshDelay       time.Duration
	width              int
	height             int
	centerX            float64
	centerY            float64
	wg                 sync.WaitGroup
	ctx                context.Context
	cancel             context.CancelFunc

	updates chan func()
}

const maxEventWait = 50 * time.Millisecond

// NewWindow opens the platform window, loads the GL entry points for its
// context and shows it.
func NewWindow(conf WindowConfig) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	if err := glw.Init(); err != nil {
		wrapper.Close()
		return nil, err
	}
	width, height := wrapper.Size()
	window := &Window{
		platformWinWrapper: wrapper,
		keys:               input.NewKeySet(),
		bindings:           input.NewBindings(),
		strategy:           input.DrainAll(),
		updates:            make(chan func(), 1024),
		width:              width,
		height:             height,
		centerX:            float64(width) / 2,
		centerY:            float64(height) / 2,
	}
	window.ctx, window.cancel = context.WithCancel(context.Background())
	fbw, fbh := wrapper.FramebufferSize()
	glw.Viewport(fbw, fbh)
	wrapper.Show()
	return window, nil
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

// Aspect is width divided by height, or 1 for a degenerate window.
func (w *Window) Aspect() float32 {
	if w.height == 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// Center returns the window centre recorded at creation and after resizes.
func (w *Window) Center() (float64, float64) {
	return w.centerX, w.centerY
}

func (w *Window) Time() float64 {
	return w.platformWinWrapper.Time()
}

func (w *Window) SetCursorPos(x, y float64) {
	w.platformWinWrapper.SetCursorPos(x, y)
}

func (w *Window) ShouldClose() bool {
	return w.platformWinWrapper.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.platformWinWrapper.SetShouldClose(v)
}

// Keys returns a snapshot of the pressed keys.
func (w *Window) Keys() input.KeySet {
	return w.keys.Clone()
}

// RefreshRate caps the loop at fps frames per second. Zero leaves pacing to
// the swap interval.
func (w *Window) RefreshRate(fps int) {
	if fps <= 0 {
		w.refreshDelay = 0
		return
	}
	w.refreshDelay = time.Second / time.Duration(fps)
}

func (w *Window) SetEventsConsumerStrategy(strategy input.EventsConsumerStrategy) {
	if strategy == nil {
		strategy = input.DrainAll()
	}
	w.strategy = strategy
}

func (w *Window) OnCursor(fn CursorFunc) {
	w.onCursor = fn
}

// OnKey runs fn each time key is pressed.
func (w *Window) OnKey(key input.Key, fn func()) {
	w.bindings.BindTrigger(key, fn)
}

// Post schedules fn to run on the render thread before the next frame. It
// never blocks; fn is dropped when the queue is full.
func (w *Window) Post(fn func()) {
	select {
	case w.updates <- fn:
	default:
		logging.Logger().Warn("update queue full, dropping update")
	}
}

func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	w.cancel()
	w.wg.Wait()
	w.platformWinWrapper.Close()
}

// Update runs a single frame, presents it and then processes the events that
// arrived meanwhile, waiting at most timeoutMs for the first one.
func (w *Window) Update(frame FrameFunc) {
	w.update(frame, 0)
}

func (w *Window) update(frame FrameFunc, timeoutMs int) {
	w.runUpdates()
	if frame != nil {
		frame(w, w.keys, w.Time())
	}
	w.platformWinWrapper.SwapBuffers()
	w.strategy.Consume(w.poll, w.handleEvent, timeoutMs)
}

// Run calls Update until the window is asked to close or ctx is done.
func (w *Window) Run(ctx context.Context, frame FrameFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	nextFrame := time.Now()
	for !w.ShouldClose() {
		select {
		case <-ctx.Done():
			return
		case <-w.ctx.Done():
			return
		default:
		}
		w.update(frame, w.eventTimeout(nextFrame))
		if w.refreshDelay > 0 {
			w.waitUntil(nextFrame.Add(w.refreshDelay))
			nextFrame = time.Now()
		}
	}
}

// StartTicker runs t on its own goroutine until the window stops.
func (w *Window) StartTicker(t *Ticker) {
	t.Run(w.ctx, &w.wg, w.updates, w)
}

func (w *Window) eventTimeout(nextFrame time.Time) int {
	if w.refreshDelay == 0 {
		return 0
	}
	timeout := time.Until(nextFrame.Add(w.refreshDelay))
	if timeout < 0 {
		timeout = 0
	}
	if timeout > maxEventWait {
		timeout = maxEventWait
	}
	timeoutMs := int(timeout / time.Millisecond)
	if timeout > 0 && timeoutMs == 0 {
		timeoutMs = 1
	}
	return timeoutMs
}

// waitUntil keeps consuming events until deadline so input stays responsive
// while the loop idles.
func (w *Window) waitUntil(deadline time.Time) {
	for {
		timeout := time.Until(deadline)
		if timeout <= 0 {
			return
		}
		if timeout > maxEventWait {
			timeout = maxEventWait
		}
		ms := int(timeout / time.Millisecond)
		if ms == 0 {
			ms = 1
		}
		w.strategy.Consume(w.poll, w.handleEvent, ms)
	}
}

func (w *Window) runUpdates() {
	for {
		select {
		case upd := <-w.updates:
			upd()
		default:
			return
		}
	}
}

func (w *Window) poll(timeoutMs int) (input.Event, bool) {
	event := w.platformWinWrapper.NextEventTimeout(timeoutMs)
	if _, ok := event.(platform.TimeoutEvent); ok {
		return nil, false
	}
	return event, true
}

func (w *Window) handleEvent(event input.Event) {
	w.keys.Apply(event)
	w.bindings.Dispatch(event)
	switch e := event.(type) {
	case input.MotionNotify:
		if w.onCursor != nil {
			w.onCursor(w, e.X, e.Y)
		}
	case input.Resize:
		w.width, w.height = w.platformWinWrapper.Size()
		w.centerX, w.centerY = float64(w.width)/2, float64(w.height)/2
		glw.Viewport(e.Width, e.Height)
		logging.Logger().Debug("framebuffer resized", "width", e.Width, "height", e.Height)
	case input.DestroyNotify:
		w.SetShouldClose(true)
	}
}
