package cursorkit

import "math"

// Repeat returns an endless cursor that keeps yielding the same value.
//
// Advance does not recompute the element,
// so a mutation through ValueMut sticks, and every later read observes it.
func Repeat[V any](v V) DoubleEndedMutCursor[V] {
	return &repeatCursor[V]{value: v}
}

type repeatCursor[V any] struct {
	value V
	ok    bool
}

func (c *repeatCursor[V]) Advance()     { c.ok = true }
func (c *repeatCursor[V]) AdvanceBack() { c.ok = true }

func (c *repeatCursor[V]) Value() (V, bool) {
	if !c.ok {
		var zero V
		return zero, false
	}
	return c.value, true
}

func (c *repeatCursor[V]) ValueMut() (*V, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}

func (c *repeatCursor[V]) SizeHint() (int, int, bool) {
	return math.MaxInt, 0, false
}

// RepeatFunc returns an endless cursor that computes its element on every Advance
// by calling the given function.
// A mutation through ValueMut only lasts until the next Advance overwrites the slot.
func RepeatFunc[V any](fn func() V) DoubleEndedMutCursor[V] {
	return &repeatFuncCursor[V]{fn: fn}
}

type repeatFuncCursor[V any] struct {
	fn func() V

	value V
	ok    bool
}

func (c *repeatFuncCursor[V]) Advance() {
	c.value, c.ok = c.fn(), true
}

func (c *repeatFuncCursor[V]) AdvanceBack() {
	c.Advance()
}

func (c *repeatFuncCursor[V]) Value() (V, bool) {
	if !c.ok {
		var zero V
		return zero, false
	}
	return c.value, true
}

func (c *repeatFuncCursor[V]) ValueMut() (*V, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}

func (c *repeatFuncCursor[V]) SizeHint() (int, int, bool) {
	return math.MaxInt, 0, false
}
