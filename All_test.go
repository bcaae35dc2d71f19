package cursorkit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
)

func TestAll(t *testing.T) {
	t.Run("it holds when every element passes", func(t *testing.T) {
		assert.True(t, cursorkit.All[int](cursorkit.Slice([]int{2, 4, 6}), func(n int) bool {
			return n%2 == 0
		}))
	})

	t.Run("it is vacuously true on an empty stream", func(t *testing.T) {
		assert.True(t, cursorkit.All[int](cursorkit.Empty[int](), func(int) bool {
			return false
		}))
	})

	t.Run("it short circuits on the first failing element", func(t *testing.T) {
		src := &advanceCounter[int]{Cursor: cursorkit.Slice([]int{2, 4, 5, 6})}

		assert.False(t, cursorkit.All[int](src, func(n int) bool { return n%2 == 0 }))
		assert.Equal(t, 3, src.advances)

		v, ok := src.Value()
		assert.True(t, ok)
		assert.Equal(t, 5, v, "the cursor stands on the failing element")
	})
}

func TestAny(t *testing.T) {
	t.Run("it holds when at least one element passes", func(t *testing.T) {
		assert.True(t, cursorkit.Any[int](cursorkit.Slice([]int{1, 3, 4}), func(n int) bool {
			return n%2 == 0
		}))
	})

	t.Run("it fails when no element passes", func(t *testing.T) {
		assert.False(t, cursorkit.Any[int](cursorkit.Slice([]int{1, 3, 5}), func(n int) bool {
			return n%2 == 0
		}))
	})

	t.Run("it fails on an empty stream", func(t *testing.T) {
		assert.False(t, cursorkit.Any[int](cursorkit.Empty[int](), func(int) bool {
			return true
		}))
	})

	t.Run("it short circuits on the first passing element", func(t *testing.T) {
		c := cursorkit.Slice([]int{1, 3, 4, 6})

		assert.True(t, cursorkit.Any[int](c, func(n int) bool { return n%2 == 0 }))

		v, ok := c.Value()
		assert.True(t, ok)
		assert.Equal(t, 4, v, "the cursor stands on the passing element")
	})
}
