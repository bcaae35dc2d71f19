package cursorkit_test

import (
	"fmt"
	"strconv"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
)

func ExampleReduce() {
	sum := cursorkit.Reduce[int](cursorkit.IntRange(1, 10), 0, func(acc, n int) int {
		return acc + n
	})

	fmt.Println(sum)
}

func TestReduce(t *testing.T) {
	t.Run("elements are combined front to back", func(t *testing.T) {
		got := cursorkit.Reduce[string](cursorkit.Slice([]int{1, 2, 3}), "", func(acc string, n int) string {
			return acc + strconv.Itoa(n)
		})
		assert.Equal(t, "123", got)
	})

	t.Run("an empty stream reduces to the initial value", func(t *testing.T) {
		got := cursorkit.Reduce[int](cursorkit.Empty[int](), 42, func(acc, n int) int {
			return acc + n
		})
		assert.Equal(t, 42, got)
	})

	t.Run("reducing picks up where the cursor stands", func(t *testing.T) {
		c := cursorkit.Slice([]int{1, 2, 3})
		cursorkit.Next[int](c)

		got := cursorkit.Reduce[int](c, 0, func(acc, n int) int {
			return acc + n
		})
		assert.Equal(t, 5, got)
	})
}

func TestReduceBack(t *testing.T) {
	t.Run("elements are combined back to front", func(t *testing.T) {
		got := cursorkit.ReduceBack[string](cursorkit.Slice([]int{1, 2, 3, 4}), "", func(acc string, n int) string {
			return acc + strconv.Itoa(n)
		})
		assert.Equal(t, "4321", got)
	})

	t.Run("an empty stream reduces to the initial value", func(t *testing.T) {
		got := cursorkit.ReduceBack[int](cursorkit.Empty[int](), -1, func(acc, n int) int {
			return acc + n
		})
		assert.Equal(t, -1, got)
	})
}

func TestReduceMut(t *testing.T) {
	t.Run("the reducer can mutate the elements while combining them", func(t *testing.T) {
		vs := []int{1, 2, 3}
		sum := cursorkit.ReduceMut[int](cursorkit.SliceMut(vs), 0, func(acc int, n *int) int {
			acc += *n
			*n = 0
			return acc
		})

		assert.Equal(t, 6, sum)
		assert.Equal(t, []int{0, 0, 0}, vs)
	})
}

func TestReduceBackMut(t *testing.T) {
	t.Run("mutations land while combining back to front", func(t *testing.T) {
		vs := []string{"a", "b", "c"}
		got := cursorkit.ReduceBackMut[string](cursorkit.SliceMut(vs), "", func(acc string, s *string) string {
			acc += *s
			*s = "-"
			return acc
		})

		assert.Equal(t, "cba", got)
		assert.Equal(t, []string{"-", "-", "-"}, vs)
	})
}
