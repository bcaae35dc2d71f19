package cursorkit

// All reports whether every remaining element of the cursor passes the given predicate.
// It short circuits on the first failing element, leaving the cursor standing on it.
// On an exhausted cursor All is vacuously true.
func All[V any](c Cursor[V], by func(V) bool) bool {
	for {
		c.Advance()
		v, ok := c.Value()
		if !ok {
			return true
		}
		if !by(v) {
			return false
		}
	}
}

// Any reports whether at least one remaining element of the cursor passes the given predicate.
// It short circuits on the first passing element, leaving the cursor standing on it.
func Any[V any](c Cursor[V], by func(V) bool) bool {
	return !All(c, func(v V) bool { return !by(v) })
}
