package input

import "sort"

// KeySet holds the keys currently pressed.
type KeySet map[Key]struct{}

func NewKeySet() KeySet {
	return make(KeySet)
}

func (s KeySet) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

// Any reports whether at least one of keys is pressed.
func (s KeySet) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

func (s KeySet) Len() int {
	return len(s)
}

// Keys returns the pressed keys in ascending order.
func (s KeySet) Keys() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Apply updates the set from a keyboard event: a press inserts, a release
// removes. Repeats and other events leave the set untouched.
func (s KeySet) Apply(event Event) {
	switch e := event.(type) {
	case KeyPress:
		s[e.Key] = struct{}{}
	case KeyRelease:
		delete(s, e.Key)
	}
}

// Clone returns an independent copy.
func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
