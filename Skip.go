package cursorkit

// Skip returns a cursor that leaves out the first n elements of its source.
// The skipping happens lazily, as part of the first Advance.
func Skip[V any](c Cursor[V], n int) Cursor[V] {
	return &skipCursor[V]{Cursor: c, N: n}
}

type skipCursor[V any] struct {
	Cursor Cursor[V]
	N      int

	skipped bool
}

func (c *skipCursor[V]) Advance() {
	if !c.skipped {
		c.skipped = true
		for i := 0; i < c.N; i++ {
			c.Cursor.Advance()
		}
	}
	c.Cursor.Advance()
}

func (c *skipCursor[V]) Value() (V, bool) {
	return c.Cursor.Value()
}

func (c *skipCursor[V]) SizeHint() (int, int, bool) {
	lower, upper, bounded := SizeHint[V](c.Cursor)
	if c.skipped {
		return lower, upper, bounded
	}
	lower -= c.N
	if lower < 0 {
		lower = 0
	}
	if bounded {
		upper -= c.N
		if upper < 0 {
			upper = 0
		}
	}
	return lower, upper, bounded
}

// SkipMut is the Skip variant that keeps the mutable element access of its source.
func SkipMut[V any](c MutCursor[V], n int) MutCursor[V] {
	return &skipMutCursor[V]{
		skipCursor: skipCursor[V]{Cursor: c, N: n},
		mut:        c,
	}
}

type skipMutCursor[V any] struct {
	skipCursor[V]
	mut MutCursor[V]
}

func (c *skipMutCursor[V]) ValueMut() (*V, bool) {
	return c.mut.ValueMut()
}
