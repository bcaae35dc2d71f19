package cursorkit_test

import (
	"strings"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
	"go.llib.dev/cursorkit/cursorkitcontract"
)

func TestFlatMap(t *testing.T) {
	t.Run("the mapped cursors are yielded back to back", func(t *testing.T) {
		c := cursorkit.FlatMap[int](cursorkit.Slice([]int{1, 2, 3}), func(n int) cursorkit.Cursor[int] {
			return cursorkit.IntRange(1, n)
		})
		assert.Equal(t, []int{1, 1, 2, 1, 2, 3}, cursorkit.Collect[int](c))
	})

	t.Run("words of sentences read as one stream", func(t *testing.T) {
		c := cursorkit.FlatMap[string](cursorkit.Slice([]string{"foo bar", "baz"}), func(s string) cursorkit.Cursor[string] {
			return cursorkit.Slice(strings.Fields(s))
		})
		assert.Equal(t, []string{"foo", "bar", "baz"}, cursorkit.Collect[string](c))
	})

	t.Run("empty mapped cursors are skipped over", func(t *testing.T) {
		c := cursorkit.FlatMap[int](cursorkit.Slice([]int{0, 2, 0, 1, 0}), func(n int) cursorkit.Cursor[int] {
			return cursorkit.IntRange(1, n)
		})
		assert.Equal(t, []int{1, 2, 1}, cursorkit.Collect[int](c))
	})

	t.Run("an empty source makes an empty stream", func(t *testing.T) {
		c := cursorkit.FlatMap[int](cursorkit.Empty[int](), func(n int) cursorkit.Cursor[int] {
			return cursorkit.Slice([]int{n})
		})
		assert.Empty(t, cursorkit.Collect[int](c))
	})
}

func TestFlatMap_implementsCursor(t *testing.T) {
	cursorkitcontract.Cursor[int](func(tb testing.TB) cursorkit.Cursor[int] {
		return cursorkit.FlatMap[int](cursorkit.IntRange(1, 3), func(n int) cursorkit.Cursor[int] {
			return cursorkit.IntRange(0, n)
		})
	}).Test(t)
}

func TestFlatMapMut(t *testing.T) {
	t.Run("mutations land in the mapped cursors", func(t *testing.T) {
		words := [][]string{{"foo", "bar"}, {"baz"}}
		c := cursorkit.FlatMapMut[string](cursorkit.IntRange(0, 1), func(i int) cursorkit.MutCursor[string] {
			return cursorkit.SliceMut(words[i])
		})

		for ptr, ok := cursorkit.NextMut[string](c); ok; ptr, ok = cursorkit.NextMut[string](c) {
			*ptr = strings.ToUpper(*ptr)
		}

		assert.Equal(t, [][]string{{"FOO", "BAR"}, {"BAZ"}}, words)
	})
}

func TestFlatMapMut_implementsMutCursor(t *testing.T) {
	cursorkitcontract.MutCursor[int](func(tb testing.TB) cursorkit.MutCursor[int] {
		return cursorkit.FlatMapMut[int](cursorkit.IntRange(1, 3), func(n int) cursorkit.MutCursor[int] {
			return cursorkit.SliceMut([]int{n, n * 10})
		})
	}).Test(t)
}
