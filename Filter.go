package cursorkit

// Filter returns a cursor that only yields the elements the filter function approves.
func Filter[V any](c Cursor[V], filter func(V) bool) Cursor[V] {
	return &filterCursor[V]{Cursor: c, Filter: filter}
}

type filterCursor[V any] struct {
	Cursor Cursor[V]
	Filter func(V) bool
}

func (c *filterCursor[V]) Advance() {
	for {
		c.Cursor.Advance()
		v, ok := c.Cursor.Value()
		if !ok || c.Filter(v) {
			return
		}
	}
}

func (c *filterCursor[V]) Value() (V, bool) {
	return c.Cursor.Value()
}

func (c *filterCursor[V]) SizeHint() (int, int, bool) {
	_, upper, bounded := SizeHint[V](c.Cursor)
	return 0, upper, bounded
}

// FilterMut is the Filter variant that keeps the mutable element access of its source.
func FilterMut[V any](c MutCursor[V], filter func(V) bool) MutCursor[V] {
	return &filterMutCursor[V]{
		filterCursor: filterCursor[V]{Cursor: c, Filter: filter},
		mut:          c,
	}
}

type filterMutCursor[V any] struct {
	filterCursor[V]
	mut MutCursor[V]
}

func (c *filterMutCursor[V]) ValueMut() (*V, bool) {
	return c.mut.ValueMut()
}
