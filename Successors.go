package cursorkit

// Successors returns a cursor that yields the seed value first,
// then keeps applying next to the previously yielded element,
// until next reports that there is no successor.
// After that the cursor stays exhausted.
//
// The successor is computed from the element as the consumer last saw it,
// so a mutation through ValueMut feeds into the rest of the stream.
func Successors[V any](seed V, next func(V) (V, bool)) MutCursor[V] {
	return &successorsCursor[V]{next: next, value: seed}
}

type successorsCursor[V any] struct {
	next func(V) (V, bool)

	value   V
	ok      bool
	started bool
}

func (c *successorsCursor[V]) Advance() {
	if !c.started {
		c.started = true
		c.ok = true
		return
	}
	if !c.ok {
		return
	}
	c.value, c.ok = c.next(c.value)
	if !c.ok {
		var zero V
		c.value = zero
		c.next = nil
	}
}

func (c *successorsCursor[V]) Value() (V, bool) {
	if !c.ok {
		var zero V
		return zero, false
	}
	return c.value, true
}

func (c *successorsCursor[V]) ValueMut() (*V, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}
