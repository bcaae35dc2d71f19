package cursorkit

// Collect drains the cursor's remaining elements into a slice.
// Since the cursor lends its elements out only until the next Advance,
// Collect is the way to keep them all around at once.
func Collect[V any](c Cursor[V]) []V {
	var vs []V
	for {
		c.Advance()
		v, ok := c.Value()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}
