package cursorkit

// Take returns a cursor that yields at most the first n elements of its source.
// Once the allowance is spent, the source is not advanced any further.
func Take[V any](c Cursor[V], n int) Cursor[V] {
	return &takeCursor[V]{Cursor: c, N: n}
}

type takeCursor[V any] struct {
	Cursor Cursor[V]
	N      int

	done bool
}

func (c *takeCursor[V]) Advance() {
	if c.done {
		return
	}
	if c.N <= 0 {
		c.done = true
		return
	}
	c.N--
	c.Cursor.Advance()
}

func (c *takeCursor[V]) Value() (V, bool) {
	if c.done {
		var zero V
		return zero, false
	}
	return c.Cursor.Value()
}

func (c *takeCursor[V]) SizeHint() (int, int, bool) {
	if c.done {
		return 0, 0, true
	}
	lower, upper, bounded := SizeHint[V](c.Cursor)
	if c.N < lower {
		lower = c.N
	}
	if !bounded || c.N < upper {
		upper = c.N
	}
	return lower, upper, true
}

// TakeMut is the Take variant that keeps the mutable element access of its source.
func TakeMut[V any](c MutCursor[V], n int) MutCursor[V] {
	return &takeMutCursor[V]{
		takeCursor: takeCursor[V]{Cursor: c, N: n},
		mut:        c,
	}
}

type takeMutCursor[V any] struct {
	takeCursor[V]
	mut MutCursor[V]
}

func (c *takeMutCursor[V]) ValueMut() (*V, bool) {
	if c.done {
		return nil, false
	}
	return c.mut.ValueMut()
}
