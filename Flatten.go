package cursorkit

// Flatten takes a cursor whose elements are cursors themselves,
// and yields the elements of these inner cursors back to back, as one flat stream.
func Flatten[V any, C Cursor[V]](c Cursor[C]) Cursor[V] {
	return &flattenCursor[V, C]{Cursor: c}
}

type flattenCursor[V any, C Cursor[V]] struct {
	Cursor Cursor[C]

	active C
	has    bool
}

func (c *flattenCursor[V, C]) Advance() {
	for {
		if c.has {
			c.active.Advance()
			if _, ok := c.active.Value(); ok {
				return
			}
			c.has = false
		}
		c.Cursor.Advance()
		inner, ok := c.Cursor.Value()
		if !ok {
			return
		}
		c.active = inner
		c.has = true
	}
}

func (c *flattenCursor[V, C]) Value() (V, bool) {
	if !c.has {
		var zero V
		return zero, false
	}
	return c.active.Value()
}

// FlattenMut is the Flatten variant where the inner cursors have mutable element access,
// and the flattened stream keeps it.
func FlattenMut[V any, C MutCursor[V]](c Cursor[C]) MutCursor[V] {
	return &flattenMutCursor[V, C]{Cursor: c}
}

type flattenMutCursor[V any, C MutCursor[V]] struct {
	Cursor Cursor[C]

	active C
	has    bool
}

func (c *flattenMutCursor[V, C]) Advance() {
	for {
		if c.has {
			c.active.Advance()
			if _, ok := c.active.Value(); ok {
				return
			}
			c.has = false
		}
		c.Cursor.Advance()
		inner, ok := c.Cursor.Value()
		if !ok {
			return
		}
		c.active = inner
		c.has = true
	}
}

func (c *flattenMutCursor[V, C]) Value() (V, bool) {
	if !c.has {
		var zero V
		return zero, false
	}
	return c.active.Value()
}

func (c *flattenMutCursor[V, C]) ValueMut() (*V, bool) {
	if !c.has {
		return nil, false
	}
	return c.active.ValueMut()
}
