package cursorkit

// Nth returns the cursor's n-th remaining element, indexed from zero,
// by consuming every element up to and including it.
func Nth[V any](c Cursor[V], n int) (V, bool) {
	for i := 0; i < n; i++ {
		c.Advance()
		if _, ok := c.Value(); !ok {
			var zero V
			return zero, false
		}
	}
	return Next(c)
}
