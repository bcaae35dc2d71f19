package cursorkit

// ForEach calls the given function on each remaining element of the cursor.
func ForEach[V any](c Cursor[V], fn func(V)) {
	for {
		c.Advance()
		v, ok := c.Value()
		if !ok {
			return
		}
		fn(v)
	}
}

// ForEachMut calls the given function on each remaining element of the cursor,
// with mutable access to the element.
func ForEachMut[V any](c MutCursor[V], fn func(*V)) {
	for {
		c.Advance()
		v, ok := c.ValueMut()
		if !ok {
			return
		}
		fn(v)
	}
}
