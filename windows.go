package cursorkit

import "fmt"

// Windows returns a double ended cursor over every contiguous window of the given size
// within the buffer, in order, overlapping, moving one element per Advance.
//
// The yielded windows are subslices of the buffer itself, not copies,
// so writing into a window writes into the buffer,
// which is what a sequence cannot express:
// iterating overlapping mutable regions is only sound
// because a cursor lends out one window at a time.
//
// A buffer shorter than the window size yields nothing.
// A window size less than one is a caller error and panics.
func Windows[E any](buf []E, size int) DoubleEndedMutCursor[[]E] {
	if size < 1 {
		panic(fmt.Sprintf("[Windows] invalid window size: %d", size))
	}
	return &windowsCursor[E]{rest: buf, size: size}
}

type windowsPos uint8

const (
	// no window presented yet
	windowsInit windowsPos = iota
	// the current window sits at the front of the remaining region
	windowsFront
	// the current window sits at the back of the remaining region
	windowsBack
)

type windowsCursor[E any] struct {
	rest []E
	size int
	pos  windowsPos

	window []E
}

func (c *windowsCursor[E]) Advance() {
	c.turn(windowsFront)
}

func (c *windowsCursor[E]) AdvanceBack() {
	c.turn(windowsBack)
}

// turn consumes one element at the end the previous window sat on,
// then presents the next window at the requested end of the remaining region.
func (c *windowsCursor[E]) turn(to windowsPos) {
	if c.pos != windowsInit && !c.Exhausted() {
		if c.pos == windowsFront {
			c.rest = c.rest[1:]
		} else {
			c.rest = c.rest[:len(c.rest)-1]
		}
	}
	c.pos = to
	if c.Exhausted() {
		c.window = nil
		return
	}
	if to == windowsFront {
		c.window = c.rest[:c.size]
	} else {
		c.window = c.rest[len(c.rest)-c.size:]
	}
}

func (c *windowsCursor[E]) Value() ([]E, bool) {
	if c.window == nil {
		return nil, false
	}
	return c.window, true
}

func (c *windowsCursor[E]) ValueMut() (*[]E, bool) {
	if c.window == nil {
		return nil, false
	}
	return &c.window, true
}

// Exhausted is a direct check on the remaining region,
// it stays accurate even before the first window is presented.
func (c *windowsCursor[E]) Exhausted() bool {
	return len(c.rest) < c.size
}

func (c *windowsCursor[E]) SizeHint() (int, int, bool) {
	n := c.remaining()
	return n, n, true
}

func (c *windowsCursor[E]) Count() int {
	n := c.remaining()
	c.rest = nil
	c.window = nil
	return n
}

// remaining is the number of windows ahead of the cursor,
// not counting the window it currently stands on.
func (c *windowsCursor[E]) remaining() int {
	length := len(c.rest)
	if c.pos != windowsInit {
		length--
	}
	n := length - (c.size - 1)
	if n < 0 {
		n = 0
	}
	return n
}
