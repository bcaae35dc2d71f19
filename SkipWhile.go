package cursorkit

// SkipWhile returns a cursor that leaves out the leading elements
// for which the given predicate holds.
// Once an element fails the predicate, skipping is over for good,
// and every element after that one is yielded untested.
func SkipWhile[V any](c Cursor[V], while func(V) bool) Cursor[V] {
	return &skipWhileCursor[V]{Cursor: c, While: while}
}

type skipWhileCursor[V any] struct {
	Cursor Cursor[V]
	While  func(V) bool

	done bool
}

func (c *skipWhileCursor[V]) Advance() {
	if c.done {
		c.Cursor.Advance()
		return
	}
	c.done = true
	c.Cursor.Advance()
	for {
		v, ok := c.Cursor.Value()
		if !ok || !c.While(v) {
			return
		}
		c.Cursor.Advance()
	}
}

func (c *skipWhileCursor[V]) Value() (V, bool) {
	return c.Cursor.Value()
}

func (c *skipWhileCursor[V]) SizeHint() (int, int, bool) {
	_, upper, bounded := SizeHint[V](c.Cursor)
	return 0, upper, bounded
}

// SkipWhileMut is the SkipWhile variant that keeps the mutable element access of its source.
func SkipWhileMut[V any](c MutCursor[V], while func(V) bool) MutCursor[V] {
	return &skipWhileMutCursor[V]{
		skipWhileCursor: skipWhileCursor[V]{Cursor: c, While: while},
		mut:             c,
	}
}

type skipWhileMutCursor[V any] struct {
	skipWhileCursor[V]
	mut MutCursor[V]
}

func (c *skipWhileMutCursor[V]) ValueMut() (*V, bool) {
	return c.mut.ValueMut()
}
