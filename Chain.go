package cursorkit

import "math"

// Chain concatenates two cursors into one,
// yielding every element of the first, then every element of the second.
func Chain[V any](a, b Cursor[V]) Cursor[V] {
	return &chainCursor[V]{A: a, B: b}
}

type chainCursor[V any] struct {
	A, B Cursor[V]

	aDone bool
}

func (c *chainCursor[V]) Advance() {
	if !c.aDone {
		c.A.Advance()
		if _, ok := c.A.Value(); ok {
			return
		}
		c.aDone = true
	}
	c.B.Advance()
}

func (c *chainCursor[V]) Value() (V, bool) {
	if !c.aDone {
		return c.A.Value()
	}
	return c.B.Value()
}

func (c *chainCursor[V]) SizeHint() (int, int, bool) {
	al, au, ab := SizeHint[V](c.A)
	bl, bu, bb := SizeHint[V](c.B)
	lower := saturatingAdd(al, bl)
	if !ab || !bb {
		return lower, 0, false
	}
	return lower, saturatingAdd(au, bu), true
}

// ChainMut is the Chain variant that keeps the mutable element access of its sources.
func ChainMut[V any](a, b MutCursor[V]) MutCursor[V] {
	return &chainMutCursor[V]{
		chainCursor: chainCursor[V]{A: a, B: b},
		mutA:        a,
		mutB:        b,
	}
}

type chainMutCursor[V any] struct {
	chainCursor[V]
	mutA, mutB MutCursor[V]
}

func (c *chainMutCursor[V]) ValueMut() (*V, bool) {
	if !c.aDone {
		return c.mutA.ValueMut()
	}
	return c.mutB.ValueMut()
}

// ChainDoubleEnded concatenates two double ended cursors into one double ended cursor.
//
// Forward advances consume the first cursor and hand over to the second,
// backward advances consume the second cursor and hand over to the first,
// and mixed consumption meets somewhere in the middle.
// The concatenation tracks which of the two sides are still in play,
// so each component only ever sees front and back consumption of its own elements.
func ChainDoubleEnded[V any](a, b DoubleEndedCursor[V]) DoubleEndedCursor[V] {
	return &chainDECursor[V]{A: a, B: b}
}

type chainState uint8

const (
	// both components are in play, the reading position is on the front side
	chainBothForward chainState = iota
	// both components are in play, the reading position is on the back side
	chainBothBackward
	// the second component is exhausted, both ends consume the first
	chainFrontOnly
	// the first component is exhausted, both ends consume the second
	chainBackOnly
)

type chainDECursor[V any] struct {
	A, B DoubleEndedCursor[V]

	state chainState
}

func (c *chainDECursor[V]) Advance() {
	switch c.state {
	case chainBothForward, chainBothBackward:
		c.A.Advance()
		if _, ok := c.A.Value(); ok {
			c.state = chainBothForward
			return
		}
		c.B.Advance()
		c.state = chainBackOnly
	case chainFrontOnly:
		c.A.Advance()
	case chainBackOnly:
		c.B.Advance()
	}
}

func (c *chainDECursor[V]) AdvanceBack() {
	switch c.state {
	case chainBothForward, chainBothBackward:
		c.B.AdvanceBack()
		if _, ok := c.B.Value(); ok {
			c.state = chainBothBackward
			return
		}
		c.A.AdvanceBack()
		c.state = chainFrontOnly
	case chainFrontOnly:
		c.A.AdvanceBack()
	case chainBackOnly:
		c.B.AdvanceBack()
	}
}

func (c *chainDECursor[V]) Value() (V, bool) {
	switch c.state {
	case chainBothForward, chainFrontOnly:
		return c.A.Value()
	default:
		return c.B.Value()
	}
}

func (c *chainDECursor[V]) SizeHint() (int, int, bool) {
	al, au, ab := SizeHint[V](c.A)
	bl, bu, bb := SizeHint[V](c.B)
	lower := saturatingAdd(al, bl)
	if !ab || !bb {
		return lower, 0, false
	}
	return lower, saturatingAdd(au, bu), true
}

// ChainDoubleEndedMut is the ChainDoubleEnded variant
// that keeps the mutable element access of its sources.
func ChainDoubleEndedMut[V any](a, b DoubleEndedMutCursor[V]) DoubleEndedMutCursor[V] {
	return &chainDEMutCursor[V]{
		chainDECursor: chainDECursor[V]{A: a, B: b},
		mutA:          a,
		mutB:          b,
	}
}

type chainDEMutCursor[V any] struct {
	chainDECursor[V]
	mutA, mutB DoubleEndedMutCursor[V]
}

func (c *chainDEMutCursor[V]) ValueMut() (*V, bool) {
	switch c.state {
	case chainBothForward, chainFrontOnly:
		return c.mutA.ValueMut()
	default:
		return c.mutB.ValueMut()
	}
}

func saturatingAdd(a, b int) int {
	if s := a + b; a <= s {
		return s
	}
	return math.MaxInt
}
