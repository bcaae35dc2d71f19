package cursorkit

// FilterMap combines filtering and mapping into a single step.
// The transform function either produces the mapped element, or rejects it,
// and the cursor keeps stepping its source until an element is produced.
// The mapped element lives in a slot owned by the cursor, which makes the result mutable.
func FilterMap[To any, From any](c Cursor[From], transform func(From) (To, bool)) MutCursor[To] {
	return &filterMapCursor[From, To]{Cursor: c, Transform: transform}
}

type filterMapCursor[From any, To any] struct {
	Cursor    Cursor[From]
	Transform func(From) (To, bool)

	value To
	ok    bool
}

func (c *filterMapCursor[From, To]) Advance() {
	for {
		c.Cursor.Advance()
		v, ok := c.Cursor.Value()
		if !ok {
			var zero To
			c.value, c.ok = zero, false
			return
		}
		if to, ok := c.Transform(v); ok {
			c.value, c.ok = to, true
			return
		}
	}
}

func (c *filterMapCursor[From, To]) Value() (To, bool) {
	if !c.ok {
		var zero To
		return zero, false
	}
	return c.value, true
}

func (c *filterMapCursor[From, To]) ValueMut() (*To, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}

func (c *filterMapCursor[From, To]) SizeHint() (int, int, bool) {
	_, upper, bounded := SizeHint[From](c.Cursor)
	return 0, upper, bounded
}
