package cursorkit

// Reduce goes through the cursor's remaining elements
// and combines them into a single value with the reducer function.
func Reduce[R, V any](c Cursor[V], initial R, fn func(R, V) R) R {
	var v = initial
	for {
		c.Advance()
		item, ok := c.Value()
		if !ok {
			return v
		}
		v = fn(v, item)
	}
}

// ReduceMut is the Reduce variant where the reducer receives the elements for in place mutation.
func ReduceMut[R, V any](c MutCursor[V], initial R, fn func(R, *V) R) R {
	var v = initial
	for {
		c.Advance()
		item, ok := c.ValueMut()
		if !ok {
			return v
		}
		v = fn(v, item)
	}
}

// ReduceBack reduces the cursor's remaining elements back to front.
func ReduceBack[R, V any](c DoubleEndedCursor[V], initial R, fn func(R, V) R) R {
	var v = initial
	for {
		c.AdvanceBack()
		item, ok := c.Value()
		if !ok {
			return v
		}
		v = fn(v, item)
	}
}

// ReduceBackMut reduces the cursor's remaining elements back to front,
// with mutable access to each element.
func ReduceBackMut[R, V any](c DoubleEndedMutCursor[V], initial R, fn func(R, *V) R) R {
	var v = initial
	for {
		c.AdvanceBack()
		item, ok := c.ValueMut()
		if !ok {
			return v
		}
		v = fn(v, item)
	}
}
