package cursorkit

import "iter"

// SingleUseSeq is an iter.Seq[V] that can only be iterated once.
// After iteration, it is expected to yield no more values.
// Sequences made from a cursor are single use,
// since the cursor they read from cannot be rewound.
type SingleUseSeq[V any] = iter.Seq[V]

// FromSeq returns a cursor that reads the elements of an iter.Seq.
//
// Each Advance pulls one value of the sequence into a slot owned by the cursor.
// Mutations through ValueMut change the slot only,
// they never reach the sequence the value was pulled from.
// When the sequence runs out, the cursor stops the underlying pull iterator,
// and stays exhausted for good.
func FromSeq[V any](seq iter.Seq[V]) MutCursor[V] {
	next, stop := iter.Pull(seq)
	return &pullCursor[V]{next: next, stop: stop}
}

// FromPull returns a cursor that reads its elements from a pull function,
// which makes it double as the functional source of the package:
// any func() (V, bool) generator can be iterated as a cursor.
//
// The optional stop functions are called once, when the pull function reports no more values.
func FromPull[V any](next func() (V, bool), stops ...func()) MutCursor[V] {
	var stop func()
	if 0 < len(stops) {
		stop = func() {
			for _, fn := range stops {
				fn()
			}
		}
	}
	return &pullCursor[V]{next: next, stop: stop}
}

type pullCursor[V any] struct {
	next func() (V, bool)
	stop func()

	value V
	ok    bool
}

func (c *pullCursor[V]) Advance() {
	if c.next == nil {
		return
	}
	c.value, c.ok = c.next()
	if !c.ok {
		var zero V
		c.value = zero
		if c.stop != nil {
			c.stop()
		}
		c.next, c.stop = nil, nil
	}
}

func (c *pullCursor[V]) Value() (V, bool) {
	if !c.ok {
		var zero V
		return zero, false
	}
	return c.value, true
}

func (c *pullCursor[V]) ValueMut() (*V, bool) {
	if !c.ok {
		return nil, false
	}
	return &c.value, true
}

// FromPtrSeq returns a cursor that reads the elements of a pointer sequence.
//
// Instead of pulling values into an owned slot, the cursor republishes the pointers,
// so mutations through ValueMut land in whatever storage the pointers reference,
// and stay visible after the cursor moved on.
// The sequence must yield non-nil pointers.
func FromPtrSeq[V any](seq iter.Seq[*V]) MutCursor[V] {
	next, stop := iter.Pull(seq)
	return &ptrPullCursor[V]{next: next, stop: stop}
}

type ptrPullCursor[V any] struct {
	next func() (*V, bool)
	stop func()

	ptr *V
	ok  bool
}

func (c *ptrPullCursor[V]) Advance() {
	if c.next == nil {
		return
	}
	c.ptr, c.ok = c.next()
	if !c.ok {
		c.ptr = nil
		c.stop()
		c.next, c.stop = nil, nil
	}
}

func (c *ptrPullCursor[V]) Value() (V, bool) {
	if !c.ok {
		var zero V
		return zero, false
	}
	return *c.ptr, true
}

func (c *ptrPullCursor[V]) ValueMut() (*V, bool) {
	if !c.ok {
		return nil, false
	}
	return c.ptr, true
}

// ToSeq adapts a cursor into an iter.Seq, to make it rangeable.
// The returned sequence reads the cursor's remaining elements, and can be iterated only once.
func ToSeq[V any](c Cursor[V]) SingleUseSeq[V] {
	return func(yield func(V) bool) {
		for {
			c.Advance()
			v, ok := c.Value()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
