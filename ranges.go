package cursorkit

// IntRange returns a double ended cursor that yields the integers
// between begin and end, including both range boundaries.
func IntRange(begin, end int) DoubleEndedCursor[int] {
	return &rangeCursor[int]{begin: begin, end: end}
}

// CharRange returns a double ended cursor that yields the characters
// between begin and end, including both range boundaries.
func CharRange(begin, end rune) DoubleEndedCursor[rune] {
	return &rangeCursor[rune]{begin: begin, end: end}
}

type rangeCursor[T int | rune] struct {
	begin, end T
	value      T
	ok         bool
}

func (c *rangeCursor[T]) Advance() {
	if c.end < c.begin {
		c.value, c.ok = 0, false
		return
	}
	c.value, c.ok = c.begin, true
	c.begin++
}

func (c *rangeCursor[T]) AdvanceBack() {
	if c.end < c.begin {
		c.value, c.ok = 0, false
		return
	}
	c.value, c.ok = c.end, true
	c.end--
}

func (c *rangeCursor[T]) Value() (T, bool) {
	return c.value, c.ok
}

func (c *rangeCursor[T]) SizeHint() (int, int, bool) {
	n := c.length()
	return n, n, true
}

func (c *rangeCursor[T]) Count() int {
	n := c.length()
	c.begin, c.end = 1, 0
	c.value, c.ok = 0, false
	return n
}

func (c *rangeCursor[T]) length() int {
	if c.end < c.begin {
		return 0
	}
	return int(c.end-c.begin) + 1
}
