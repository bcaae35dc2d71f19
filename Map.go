package cursorkit

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// The transform function runs once per Advance, never on reads,
// and its result is cached in a slot owned by the cursor.
// Owning the slot is what makes the returned cursor mutable
// regardless of what the source cursor is capable of.
func Map[To any, From any](c Cursor[From], transform func(From) To) MutCursor[To] {
	return &mapCursor[From, To]{Cursor: c, Transform: transform}
}

type mapCursor[From any, To any] struct {
	Cursor    Cursor[From]
	Transform func(From) To

	value To
	ok    bool
}

func (c *mapCursor[From, To]) Advance() {
	c.Cursor.Advance()
	v, ok := c.Cursor.Value()
	if !ok {
		var zero To
		c.value, c.ok = zero, false
		return
	}
	c.value, c.ok = c.Transform(v), true
}

func (c *mapCursor[From, To]) Value() (To, bool) {
	if !c.ok {
		var zero To
		return zero, false
	}
	return c.value, true
}

func (c *mapCursor[From, To]) ValueMut() (*To, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}

func (c *mapCursor[From, To]) SizeHint() (int, int, bool) {
	return SizeHint[From](c.Cursor)
}
