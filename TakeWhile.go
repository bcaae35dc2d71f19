package cursorkit

// TakeWhile returns a cursor that yields the leading elements
// for which the given predicate holds.
// The first element failing the predicate ends the stream,
// and that element is not yielded either.
func TakeWhile[V any](c Cursor[V], while func(V) bool) Cursor[V] {
	return &takeWhileCursor[V]{Cursor: c, While: while}
}

type takeWhileCursor[V any] struct {
	Cursor Cursor[V]
	While  func(V) bool

	done bool
}

func (c *takeWhileCursor[V]) Advance() {
	if c.done {
		return
	}
	c.Cursor.Advance()
	if v, ok := c.Cursor.Value(); ok && !c.While(v) {
		c.done = true
	}
}

func (c *takeWhileCursor[V]) Value() (V, bool) {
	if c.done {
		var zero V
		return zero, false
	}
	return c.Cursor.Value()
}

func (c *takeWhileCursor[V]) SizeHint() (int, int, bool) {
	_, upper, bounded := SizeHint[V](c.Cursor)
	return 0, upper, bounded
}

// TakeWhileMut is the TakeWhile variant that keeps the mutable element access of its source.
func TakeWhileMut[V any](c MutCursor[V], while func(V) bool) MutCursor[V] {
	return &takeWhileMutCursor[V]{
		takeWhileCursor: takeWhileCursor[V]{Cursor: c, While: while},
		mut:             c,
	}
}

type takeWhileMutCursor[V any] struct {
	takeWhileCursor[V]
	mut MutCursor[V]
}

func (c *takeWhileMutCursor[V]) ValueMut() (*V, bool) {
	if c.done {
		return nil, false
	}
	return c.mut.ValueMut()
}
