package cursorkit

// Inspect passes every yielded element to the given callback, without changing the stream.
// The callback runs as part of Advance, once per element,
// so peeking at Value repeatedly does not re-trigger it.
// Useful to peek into the middle of a cursor pipeline, for example to log what flows through.
func Inspect[V any](c Cursor[V], fn func(V)) Cursor[V] {
	return &inspectCursor[V]{Cursor: c, Inspect: fn}
}

type inspectCursor[V any] struct {
	Cursor  Cursor[V]
	Inspect func(V)
}

func (c *inspectCursor[V]) Advance() {
	c.Cursor.Advance()
	if v, ok := c.Cursor.Value(); ok {
		c.Inspect(v)
	}
}

func (c *inspectCursor[V]) Value() (V, bool) {
	return c.Cursor.Value()
}

func (c *inspectCursor[V]) SizeHint() (int, int, bool) {
	return SizeHint[V](c.Cursor)
}

// InspectMut is the Inspect variant that keeps the mutable element access of its source.
func InspectMut[V any](c MutCursor[V], fn func(V)) MutCursor[V] {
	return &inspectMutCursor[V]{
		inspectCursor: inspectCursor[V]{Cursor: c, Inspect: fn},
		mut:           c,
	}
}

type inspectMutCursor[V any] struct {
	inspectCursor[V]
	mut MutCursor[V]
}

func (c *inspectMutCursor[V]) ValueMut() (*V, bool) {
	return c.mut.ValueMut()
}
