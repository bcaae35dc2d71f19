package cursorkit

// Reverse will reverse the iteration direction of a double ended cursor.
// It simply swaps the two ends, no elements are collected or buffered,
// so unlike reversing a sequence, it works without walking the stream first.
func Reverse[V any](c DoubleEndedCursor[V]) DoubleEndedCursor[V] {
	return &reverseCursor[V]{Cursor: c}
}

type reverseCursor[V any] struct {
	Cursor DoubleEndedCursor[V]
}

func (c *reverseCursor[V]) Advance() {
	c.Cursor.AdvanceBack()
}

func (c *reverseCursor[V]) AdvanceBack() {
	c.Cursor.Advance()
}

func (c *reverseCursor[V]) Value() (V, bool) {
	return c.Cursor.Value()
}

func (c *reverseCursor[V]) SizeHint() (int, int, bool) {
	return SizeHint[V](c.Cursor)
}

// ReverseMut is the Reverse variant that keeps the mutable element access of its source.
func ReverseMut[V any](c DoubleEndedMutCursor[V]) DoubleEndedMutCursor[V] {
	return &reverseMutCursor[V]{
		reverseCursor: reverseCursor[V]{Cursor: c},
		mut:           c,
	}
}

type reverseMutCursor[V any] struct {
	reverseCursor[V]
	mut DoubleEndedMutCursor[V]
}

func (c *reverseMutCursor[V]) ValueMut() (*V, bool) {
	return c.mut.ValueMut()
}
