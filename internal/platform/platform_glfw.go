package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/kjkrol/magiebleue/pkg/input"
	"github.com/kjkrol/magiebleue/pkg/logging"
)

type glfwWindowWrapper struct {
	window *glfw.Window
	queue  input.Queue
}

// NewPlatformWindowWrapper initialises GLFW, opens a window with a core
// profile context and makes that context current. It locks the calling
// goroutine to its OS thread until Close.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, errors.Wrap(err, "failed to initialize GLFW")
	}

	major, minor := conf.GLMajor, conf.GLMinor
	if major == 0 {
		major, minor = 4, 1
	}
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)

	var monitor *glfw.Monitor
	if conf.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, errors.Wrap(err, "failed to create window")
	}
	window.MakeContextCurrent()
	if conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if conf.CaptureCursor {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		window.SetCursorPos(float64(conf.Width)/2, float64(conf.Height)/2)
	}

	w := &glfwWindowWrapper{window: window}
	w.installCallbacks()
	logging.Logger().Info("window created", "title", conf.Title, "width", conf.Width, "height", conf.Height, "gl", [2]int{major, minor})
	return w, nil
}

func (w *glfwWindowWrapper) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.queue.Push(convertKey(key, scancode, action, mods))
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.queue.Push(input.MotionNotify{X: x, Y: y})
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.window.GetCursorPos()
		if action == glfw.Press {
			w.queue.Push(input.ButtonPress{Button: uint32(button), X: x, Y: y})
		} else {
			w.queue.Push(input.ButtonRelease{Button: uint32(button), X: x, Y: y})
		}
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.queue.Push(input.MouseWheel{DeltaX: dx, DeltaY: dy})
	})
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue.Push(input.Resize{Width: width, Height: height})
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.queue.Push(input.EnterNotify{})
		} else {
			w.queue.Push(input.LeaveNotify{})
		}
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.Push(input.DestroyNotify{})
	})
}

func convertKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) input.Event {
	k := input.Key(key)
	label := glfw.GetKeyName(key, scancode)
	if label == "" {
		label = k.String()
	}
	m := convertMods(mods)
	switch action {
	case glfw.Press:
		return input.KeyPress{Key: k, Scancode: scancode, Label: label, Mods: m}
	case glfw.Release:
		return input.KeyRelease{Key: k, Scancode: scancode, Label: label, Mods: m}
	case glfw.Repeat:
		return input.KeyRepeat{Key: k, Scancode: scancode, Label: label, Mods: m}
	default:
		return input.UnexpectedEvent{}
	}
}

func convertMods(mods glfw.ModifierKey) input.ModifierKey {
	var m input.ModifierKey
	if mods&glfw.ModShift != 0 {
		m |= input.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= input.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= input.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= input.ModSuper
	}
	return m
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	w.window.Destroy()
	glfw.Terminate()
	runtime.UnlockOSThread()
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindowWrapper) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *glfwWindowWrapper) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) NextEventTimeout(timeoutMs int) input.Event {
	if e, ok := w.queue.Pop(); ok {
		return e
	}
	if timeoutMs <= 0 {
		glfw.PollEvents()
	} else {
		glfw.WaitEventsTimeout(float64(timeoutMs) / 1000)
	}
	if e, ok := w.queue.Pop(); ok {
		return e
	}
	return TimeoutEvent{}
}

func (w *glfwWindowWrapper) Time() float64 {
	return glfw.GetTime()
}

func (w *glfwWindowWrapper) SetCursorPos(x, y float64) {
	w.window.SetCursorPos(x, y)
}

func (w *glfwWindowWrapper) Size() (int, int) {
	return w.window.GetSize()
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}
