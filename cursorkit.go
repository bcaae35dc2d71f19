// Package cursorkit provides streaming cursors.
//
// # Summary
//
// A cursor is a stateful reading position over a stream of elements.
// Unlike a sequence that hands each value over to its consumer,
// a cursor separates stepping from reading:
// Advance moves the reading position, and Value lends out the current element.
// The separation makes it possible to expose elements that live in memory owned by the source,
// such as a reusable decode buffer or a window into a slice,
// without copying them out one by one.
// The price of borrowing is that a lent element is only valid until the next Advance.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Cursor_(databases)
package cursorkit

// Cursor is a stateful reading position over a stream of elements.
//
// Iterating is a two step cycle: Advance steps the cursor to its next element,
// then Value reads the element the cursor currently stands on.
// Calling Value repeatedly without an Advance in between is free of side effects
// and keeps returning the same result.
// Value reports false when the cursor holds no element,
// which is the case before the first Advance,
// and once the stream ran out of elements.
// Running out of elements is the only way a stream ends,
// the protocol has no error reporting.
//
// Advancing past the end is allowed,
// though what the cursor reports afterwards is left to the implementation.
// Wrap a cursor with Fuse when the consumer needs the end to be final.
type Cursor[V any] interface {
	// Advance steps the cursor to its next element.
	Advance()
	// Value returns the element the cursor currently stands on.
	// The returned element is valid until the next Advance.
	Value() (V, bool)
}

// MutCursor is a Cursor that can lend out its current element for in place mutation.
//
// Whether a mutation is visible anywhere beyond the lent out element
// depends on the source, and is documented on each constructor.
type MutCursor[V any] interface {
	Cursor[V]
	// ValueMut returns a pointer to the element the cursor currently stands on.
	// Between two Advance calls it keeps returning the same pointer.
	ValueMut() (*V, bool)
}

// DoubleEndedCursor is a Cursor over a finite stream that can be consumed from both ends.
//
// Advance and AdvanceBack share the reading position:
// Value reports the element of whichever end was advanced last.
// Each element is yielded at most once,
// and when the two ends meet in the middle, both directions report absence.
type DoubleEndedCursor[V any] interface {
	Cursor[V]
	// AdvanceBack steps the cursor to the next element from the back of the stream.
	AdvanceBack()
}

// DoubleEndedMutCursor is a DoubleEndedCursor with mutable element access.
type DoubleEndedMutCursor[V any] interface {
	DoubleEndedCursor[V]
	MutCursor[V]
}

// Next advances the cursor and reads the element it arrived on.
// It is the conventional way to drain a cursor:
//
//	for v, ok := cursorkit.Next(c); ok; v, ok = cursorkit.Next(c) {
//		...
//	}
func Next[V any](c Cursor[V]) (V, bool) {
	c.Advance()
	return c.Value()
}

// NextMut advances the cursor and lends out the element it arrived on.
func NextMut[V any](c MutCursor[V]) (*V, bool) {
	c.Advance()
	return c.ValueMut()
}

// NextBack advances the cursor from the back and reads the element it arrived on.
func NextBack[V any](c DoubleEndedCursor[V]) (V, bool) {
	c.AdvanceBack()
	return c.Value()
}

// NextBackMut advances the cursor from the back and lends out the element it arrived on.
func NextBackMut[V any](c DoubleEndedMutCursor[V]) (*V, bool) {
	c.AdvanceBack()
	return c.ValueMut()
}

// Sized is an optional Cursor interface,
// implemented by cursors that can estimate how many elements they have left.
//
// The estimate never includes the element the cursor currently stands on.
// The lower bound is always safe to rely on, the stream has at least that many elements left.
// The upper bound only means something when bounded is reported true.
// Cursors without an upper bound, like an endless source, report a saturated lower bound.
type Sized interface {
	SizeHint() (lower int, upper int, bounded bool)
}

// SizeHint reports the cursor's estimate on how many elements it has left.
// Cursors not implementing Sized report the conservative default:
// no guaranteed elements, no known upper bound.
func SizeHint[V any](c Cursor[V]) (lower int, upper int, bounded bool) {
	if sized, ok := c.(Sized); ok {
		return sized.SizeHint()
	}
	return 0, 0, false
}

// Exhausted reports whether the cursor has no elements left.
//
// By default it is equivalent to checking Value for absence,
// so before the first Advance it can report true for a cursor
// that still has its whole stream ahead of it.
// Cursors with a cheaper or more precise check provide their own Exhausted method.
func Exhausted[V any](c Cursor[V]) bool {
	if done, ok := c.(interface{ Exhausted() bool }); ok {
		return done.Exhausted()
	}
	_, ok := c.Value()
	return !ok
}
