package cursorkit

// FlatMap maps each element of the source to a whole cursor of its own,
// and yields the elements of these cursors back to back, as one flat stream.
func FlatMap[To any, From any](c Cursor[From], transform func(From) Cursor[To]) Cursor[To] {
	return &flatMapCursor[From, To]{Cursor: c, Transform: transform}
}

type flatMapCursor[From any, To any] struct {
	Cursor    Cursor[From]
	Transform func(From) Cursor[To]

	active Cursor[To]
}

func (c *flatMapCursor[From, To]) Advance() {
	for {
		if c.active != nil {
			c.active.Advance()
			if _, ok := c.active.Value(); ok {
				return
			}
			c.active = nil
		}
		c.Cursor.Advance()
		v, ok := c.Cursor.Value()
		if !ok {
			return
		}
		c.active = c.Transform(v)
	}
}

func (c *flatMapCursor[From, To]) Value() (To, bool) {
	if c.active == nil {
		var zero To
		return zero, false
	}
	return c.active.Value()
}

// FlatMapMut is the FlatMap variant where the mapped cursors have mutable element access,
// and the flattened stream keeps it.
func FlatMapMut[To any, From any](c Cursor[From], transform func(From) MutCursor[To]) MutCursor[To] {
	return &flatMapMutCursor[From, To]{Cursor: c, Transform: transform}
}

type flatMapMutCursor[From any, To any] struct {
	Cursor    Cursor[From]
	Transform func(From) MutCursor[To]

	active MutCursor[To]
}

func (c *flatMapMutCursor[From, To]) Advance() {
	for {
		if c.active != nil {
			c.active.Advance()
			if _, ok := c.active.Value(); ok {
				return
			}
			c.active = nil
		}
		c.Cursor.Advance()
		v, ok := c.Cursor.Value()
		if !ok {
			return
		}
		c.active = c.Transform(v)
	}
}

func (c *flatMapMutCursor[From, To]) Value() (To, bool) {
	if c.active == nil {
		var zero To
		return zero, false
	}
	return c.active.Value()
}

func (c *flatMapMutCursor[From, To]) ValueMut() (*To, bool) {
	if c.active == nil {
		return nil, false
	}
	return c.active.ValueMut()
}
