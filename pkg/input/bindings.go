package input

// Bindings maps keys to triggers fired once per press.
type Bindings struct {
	triggers map[Key][]func()
}

func NewBindings() *Bindings {
	return &Bindings{triggers: make(map[Key][]func())}
}

// BindTrigger registers fn to run whenever key goes down.
func (b *Bindings) BindTrigger(key Key, fn func()) {
	if fn == nil {
		return
	}
	b.triggers[key] = append(b.triggers[key], fn)
}

func (b *Bindings) Unbind(key Key) {
	delete(b.triggers, key)
}

// Dispatch fires the triggers bound to a KeyPress event. It reports whether
// any trigger ran.
func (b *Bindings) Dispatch(event Event) bool {
	press, ok := event.(KeyPress)
	if !ok {
		return false
	}
	fns := b.triggers[press.Key]
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}
