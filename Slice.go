package cursorkit

// Slice returns a double ended cursor over the elements of a slice.
// Value copies the elements out, the slice itself is never written.
func Slice[V any](vs []V) DoubleEndedCursor[V] {
	return &sliceCursor[V]{rest: vs}
}

type sliceCursor[V any] struct {
	rest  []V
	value V
	ok    bool
}

func (c *sliceCursor[V]) Advance() {
	if len(c.rest) == 0 {
		var zero V
		c.value, c.ok = zero, false
		return
	}
	c.value, c.ok = c.rest[0], true
	c.rest = c.rest[1:]
}

func (c *sliceCursor[V]) AdvanceBack() {
	if len(c.rest) == 0 {
		var zero V
		c.value, c.ok = zero, false
		return
	}
	c.value, c.ok = c.rest[len(c.rest)-1], true
	c.rest = c.rest[:len(c.rest)-1]
}

func (c *sliceCursor[V]) Value() (V, bool) {
	return c.value, c.ok
}

func (c *sliceCursor[V]) SizeHint() (int, int, bool) {
	return len(c.rest), len(c.rest), true
}

func (c *sliceCursor[V]) Count() int {
	n := len(c.rest)
	var zero V
	c.rest, c.value, c.ok = nil, zero, false
	return n
}

// SliceMut returns a double ended cursor over the elements of a slice,
// where ValueMut points into the slice's backing array,
// so mutations persist in the slice after the cursor moved on.
func SliceMut[V any](vs []V) DoubleEndedMutCursor[V] {
	return &sliceMutCursor[V]{rest: vs}
}

type sliceMutCursor[V any] struct {
	rest []V
	ptr  *V
}

func (c *sliceMutCursor[V]) Advance() {
	if len(c.rest) == 0 {
		c.ptr = nil
		return
	}
	c.ptr = &c.rest[0]
	c.rest = c.rest[1:]
}

func (c *sliceMutCursor[V]) AdvanceBack() {
	if len(c.rest) == 0 {
		c.ptr = nil
		return
	}
	c.ptr = &c.rest[len(c.rest)-1]
	c.rest = c.rest[:len(c.rest)-1]
}

func (c *sliceMutCursor[V]) Value() (V, bool) {
	if c.ptr == nil {
		var zero V
		return zero, false
	}
	return *c.ptr, true
}

func (c *sliceMutCursor[V]) ValueMut() (*V, bool) {
	if c.ptr == nil {
		return nil, false
	}
	return c.ptr, true
}

func (c *sliceMutCursor[V]) SizeHint() (int, int, bool) {
	return len(c.rest), len(c.rest), true
}

func (c *sliceMutCursor[V]) Count() int {
	n := len(c.rest)
	c.rest, c.ptr = nil, nil
	return n
}
