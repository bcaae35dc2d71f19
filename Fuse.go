package cursorkit

// Fuse makes the end of a cursor final.
//
// The base protocol leaves open what a cursor does when it is advanced past its end,
// some sources may even start yielding elements again.
// A fused cursor reports absence forever after the first time it observed absence,
// and stops touching its source from that point on.
func Fuse[V any](c Cursor[V]) Cursor[V] {
	return &fuseCursor[V]{Cursor: c}
}

type fuseState uint8

const (
	fuseStart fuseState = iota
	fuseMiddle
	fuseEnd
)

type fuseCursor[V any] struct {
	Cursor Cursor[V]

	state fuseState
}

func (c *fuseCursor[V]) Advance() {
	switch c.state {
	case fuseStart:
		c.Cursor.Advance()
		if _, ok := c.Cursor.Value(); ok {
			c.state = fuseMiddle
		} else {
			c.state = fuseEnd
		}
	case fuseMiddle:
		c.Cursor.Advance()
		if _, ok := c.Cursor.Value(); !ok {
			c.state = fuseEnd
		}
	case fuseEnd:
	}
}

func (c *fuseCursor[V]) Value() (V, bool) {
	if c.state != fuseMiddle {
		var zero V
		return zero, false
	}
	return c.Cursor.Value()
}

func (c *fuseCursor[V]) SizeHint() (int, int, bool) {
	if c.state == fuseEnd {
		return 0, 0, true
	}
	return SizeHint[V](c.Cursor)
}

// FuseMut is the Fuse variant that keeps the mutable element access of its source.
func FuseMut[V any](c MutCursor[V]) MutCursor[V] {
	return &fuseMutCursor[V]{
		fuseCursor: fuseCursor[V]{Cursor: c},
		mut:        c,
	}
}

type fuseMutCursor[V any] struct {
	fuseCursor[V]
	mut MutCursor[V]
}

func (c *fuseMutCursor[V]) ValueMut() (*V, bool) {
	if c.state != fuseMiddle {
		return nil, false
	}
	return c.mut.ValueMut()
}
