package platform

import "github.com/kjkrol/magiebleue/pkg/input"

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	// Fullscreen opens the window on the primary monitor.
	Fullscreen bool
	VSync      bool
	// CaptureCursor hides the cursor and keeps it inside the window.
	CaptureCursor bool
	// GLMajor and GLMinor select the core profile version; zero means 4.1.
	GLMajor int
	GLMinor int
}

type PlatformWindowWrapper interface {
	Show()
	Close()
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	// NextEventTimeout returns the next queued event, waiting up to timeoutMs
	// for one to arrive. It returns TimeoutEvent when none did.
	NextEventTimeout(timeoutMs int) input.Event
	// Time is seconds since the platform was initialised.
	Time() float64
	SetCursorPos(x, y float64)
	Size() (int, int)
	FramebufferSize() (int, int)
}
