package cursorkit

// SingleValue returns a cursor that yields the given value exactly once.
// Since the single element makes front and back the same position,
// the cursor is double ended.
func SingleValue[V any](v V) DoubleEndedMutCursor[V] {
	return &singleValueCursor[V]{value: v, pending: true}
}

type singleValueCursor[V any] struct {
	value   V
	pending bool
	ok      bool
}

func (c *singleValueCursor[V]) Advance() {
	c.ok = c.pending
	c.pending = false
	if !c.ok {
		var zero V
		c.value = zero
	}
}

func (c *singleValueCursor[V]) AdvanceBack() {
	c.Advance()
}

func (c *singleValueCursor[V]) Value() (V, bool) {
	if !c.ok {
		var zero V
		return zero, false
	}
	return c.value, true
}

func (c *singleValueCursor[V]) ValueMut() (*V, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}

func (c *singleValueCursor[V]) SizeHint() (int, int, bool) {
	if !c.pending {
		return 0, 0, true
	}
	return 1, 1, true
}

func (c *singleValueCursor[V]) Count() int {
	var n int
	if c.pending {
		n = 1
	}
	c.pending = false
	c.ok = false
	var zero V
	c.value = zero
	return n
}

// SingleValueFunc returns a cursor that yields a single value exactly once,
// and defers producing that value to the first Advance.
// The given function is called at most once, then the cursor drops its reference to it.
func SingleValueFunc[V any](fn func() V) DoubleEndedMutCursor[V] {
	return &singleValueFuncCursor[V]{fn: fn}
}

type singleValueFuncCursor[V any] struct {
	fn func() V

	value V
	ok    bool
}

func (c *singleValueFuncCursor[V]) Advance() {
	if c.fn != nil {
		c.value, c.ok = c.fn(), true
		c.fn = nil
		return
	}
	if c.ok {
		var zero V
		c.value, c.ok = zero, false
	}
}

func (c *singleValueFuncCursor[V]) AdvanceBack() {
	c.Advance()
}

func (c *singleValueFuncCursor[V]) Value() (V, bool) {
	if !c.ok {
		var zero V
		return zero, false
	}
	return c.value, true
}

func (c *singleValueFuncCursor[V]) ValueMut() (*V, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}

func (c *singleValueFuncCursor[V]) SizeHint() (int, int, bool) {
	if c.fn == nil {
		return 0, 0, true
	}
	return 1, 1, true
}
