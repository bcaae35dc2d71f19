package cursorkit

// Counter is an optional Cursor interface,
// implemented by cursors that can tell the number of their remaining elements
// without stepping through each of them.
// Counting consumes the stream either way, Count leaves the cursor exhausted.
type Counter interface {
	Count() int
}

// Count reports how many elements the cursor had left, by consuming all of them.
func Count[V any](c Cursor[V]) int {
	if counter, ok := c.(Counter); ok {
		return counter.Count()
	}
	var n int
	for {
		c.Advance()
		if _, ok := c.Value(); !ok {
			return n
		}
		n++
	}
}
