package cursorkit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
	"go.llib.dev/cursorkit/cursorkitcontract"
)

func TestTake(t *testing.T) {
	t.Run("only the first n elements are yielded", func(t *testing.T) {
		c := cursorkit.Take[int](cursorkit.Slice([]int{0, 1, 2, 3}), 2)
		assert.Equal(t, []int{0, 1}, cursorkit.Collect[int](c))
	})

	t.Run("taking zero makes an empty stream", func(t *testing.T) {
		c := cursorkit.Take[int](cursorkit.Slice([]int{1, 2}), 0)
		assert.Empty(t, cursorkit.Collect[int](c))
	})

	t.Run("taking more than available just drains the source", func(t *testing.T) {
		c := cursorkit.Take[int](cursorkit.Slice([]int{1, 2}), 5)
		assert.Equal(t, []int{1, 2}, cursorkit.Collect[int](c))
	})

	t.Run("a shorter view on an endless stream terminates", func(t *testing.T) {
		c := cursorkit.Take[int](cursorkit.Repeat(42), 3)
		assert.Equal(t, []int{42, 42, 42}, cursorkit.Collect[int](c))
	})

	t.Run("the source is not advanced past the allowance", func(t *testing.T) {
		src := &advanceCounter[int]{Cursor: cursorkit.Slice([]int{1, 2, 3, 4})}
		c := cursorkit.Take[int](src, 2)

		cursorkit.Collect[int](c)
		c.Advance()
		c.Advance()

		assert.Equal(t, 2, src.advances)
	})

	t.Run("the size hint is clamped by the allowance", func(t *testing.T) {
		lower, upper, bounded := cursorkit.SizeHint[int](cursorkit.Take[int](cursorkit.Slice([]int{1, 2, 3, 4}), 2))
		assert.Equal(t, 2, lower)
		assert.Equal(t, 2, upper)
		assert.True(t, bounded)

		lower, upper, bounded = cursorkit.SizeHint[int](cursorkit.Take[int](cursorkit.Repeat(0), 3))
		assert.Equal(t, 3, lower)
		assert.Equal(t, 3, upper)
		assert.True(t, bounded, "taking from an endless stream still bounds it")
	})
}

func TestTake_implementsCursor(t *testing.T) {
	cursorkitcontract.Cursor[int](func(tb testing.TB) cursorkit.Cursor[int] {
		return cursorkit.Take[int](cursorkit.IntRange(1, 100), 7)
	}).Test(t)
}

func TestTakeMut(t *testing.T) {
	t.Run("mutations pass through within the allowance", func(t *testing.T) {
		vs := []int{1, 2, 3}
		c := cursorkit.TakeMut[int](cursorkit.SliceMut(vs), 2)

		for ptr, ok := cursorkit.NextMut[int](c); ok; ptr, ok = cursorkit.NextMut[int](c) {
			*ptr *= 10
		}

		assert.Equal(t, []int{10, 20, 3}, vs)
	})

	t.Run("no mutable access once the allowance is spent", func(t *testing.T) {
		c := cursorkit.TakeMut[int](cursorkit.SliceMut([]int{1, 2}), 1)
		c.Advance()
		c.Advance()

		ptr, ok := c.ValueMut()
		assert.False(t, ok)
		assert.Nil(t, ptr)
	})
}

func TestTakeMut_implementsMutCursor(t *testing.T) {
	cursorkitcontract.MutCursor[int](func(tb testing.TB) cursorkit.MutCursor[int] {
		return cursorkit.TakeMut[int](cursorkit.SliceMut([]int{1, 2, 3, 4, 5}), 3)
	}).Test(t)
}
