package input

import "fmt"

// Key is a keyboard key. Values match GLFW key codes so the platform layer
// converts them without a lookup table.
type Key int

const (
	KeyUnknown    Key = -1
	KeySpace      Key = 32
	KeyA          Key = 65
	KeyD          Key = 68
	KeyE          Key = 69
	KeyF          Key = 70
	KeyQ          Key = 81
	KeyR          Key = 82
	KeyS          Key = 83
	KeyW          Key = 87
	KeyEscape     Key = 256
	KeyEnter      Key = 257
	KeyTab        Key = 258
	KeyRight      Key = 262
	KeyLeft       Key = 263
	KeyDown       Key = 264
	KeyUp         Key = 265
	KeyF1         Key = 290
	KeyLeftShift  Key = 340
	KeyLeftCtrl   Key = 341
	KeyRightShift Key = 344
	KeyRightCtrl  Key = 345
)

var keyNames = map[Key]string{
	KeySpace:      "Space",
	KeyEscape:     "Escape",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeyRight:      "Right",
	KeyLeft:       "Left",
	KeyDown:       "Down",
	KeyUp:         "Up",
	KeyF1:         "F1",
	KeyLeftShift:  "LeftShift",
	KeyLeftCtrl:   "LeftCtrl",
	KeyRightShift: "RightShift",
	KeyRightCtrl:  "RightCtrl",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= 'A' && k <= 'Z' || k >= '0' && k <= '9' {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ModifierKey is a bit set of held modifiers.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)
