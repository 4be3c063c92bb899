package input

type Event interface{}

type KeyPress struct {
	Key      Key
	Scancode int
	Label    string
	Mods     ModifierKey
}
type KeyRelease struct {
	Key      Key
	Scancode int
	Label    string
	Mods     ModifierKey
}
type KeyRepeat struct {
	Key      Key
	Scancode int
	Label    string
	Mods     ModifierKey
}
type ButtonPress struct {
	Button uint32
	X, Y   float64
}
type ButtonRelease struct {
	Button uint32
	X, Y   float64
}
type MotionNotify struct {
	X, Y float64
}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
}
type Resize struct {
	Width, Height int
}
type EnterNotify struct{}
type LeaveNotify struct{}
type DestroyNotify struct{}
type UnexpectedEvent struct{}
