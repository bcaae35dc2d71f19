package cursorkit

// Find advances the cursor until an element passes the given predicate,
// and returns that element.
// The cursor remains standing on the found element.
func Find[V any](c Cursor[V], by func(V) bool) (V, bool) {
	for {
		c.Advance()
		v, ok := c.Value()
		if !ok {
			var zero V
			return zero, false
		}
		if by(v) {
			return v, true
		}
	}
}

// Position advances the cursor until an element passes the given predicate,
// and returns how many elements were consumed before it, starting from zero.
// When no element passes, the reported index is -1.
func Position[V any](c Cursor[V], by func(V) bool) (int, bool) {
	for n := 0; ; n++ {
		c.Advance()
		v, ok := c.Value()
		if !ok {
			return -1, false
		}
		if by(v) {
			return n, true
		}
	}
}
