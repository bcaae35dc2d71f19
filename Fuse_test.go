package cursorkit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
	"go.llib.dev/cursorkit/cursorkitcontract"
)

func TestFuse(t *testing.T) {
	t.Run("a well behaved source passes through unchanged", func(t *testing.T) {
		c := cursorkit.Fuse[int](cursorkit.Slice([]int{1, 2, 3}))
		assert.Equal(t, []int{1, 2, 3}, cursorkit.Collect[int](c))
	})

	t.Run("a source that would start up again is kept ended", func(t *testing.T) {
		c := cursorkit.Fuse[int](&resurrectingCursor{})
		assert.Equal(t, []int{1, 2}, cursorkit.Collect[int](c))

		for i := 0; i < 3; i++ {
			c.Advance()
			_, ok := c.Value()
			assert.False(t, ok)
		}
	})

	t.Run("the source is not touched after its end was observed", func(t *testing.T) {
		src := &advanceCounter[int]{Cursor: cursorkit.Slice([]int{1})}
		c := cursorkit.Fuse[int](src)

		cursorkit.Collect[int](c)
		assert.Equal(t, 2, src.advances)

		c.Advance()
		c.Advance()
		assert.Equal(t, 2, src.advances)
	})

	t.Run("an immediately absent source ends the stream for good", func(t *testing.T) {
		c := cursorkit.Fuse[int](cursorkit.Empty[int]())

		c.Advance()
		_, ok := c.Value()
		assert.False(t, ok)

		lower, upper, bounded := cursorkit.SizeHint[int](c)
		assert.Equal(t, 0, lower)
		assert.Equal(t, 0, upper)
		assert.True(t, bounded)
	})
}

func TestFuse_implementsCursor(t *testing.T) {
	cursorkitcontract.Cursor[int](func(tb testing.TB) cursorkit.Cursor[int] {
		return cursorkit.Fuse[int](&resurrectingCursor{})
	}).Test(t)
}

func TestFuseMut(t *testing.T) {
	t.Run("mutations pass through until the end", func(t *testing.T) {
		vs := []int{1, 2}
		c := cursorkit.FuseMut[int](cursorkit.SliceMut(vs))

		for ptr, ok := cursorkit.NextMut[int](c); ok; ptr, ok = cursorkit.NextMut[int](c) {
			*ptr *= 10
		}

		assert.Equal(t, []int{10, 20}, vs)

		ptr, ok := c.ValueMut()
		assert.False(t, ok)
		assert.Nil(t, ptr)
	})
}

func TestFuseMut_implementsMutCursor(t *testing.T) {
	cursorkitcontract.MutCursor[int](func(tb testing.TB) cursorkit.MutCursor[int] {
		return cursorkit.FuseMut[int](cursorkit.SliceMut([]int{1, 2, 3}))
	}).Test(t)
}
