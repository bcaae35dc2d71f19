package cursorkit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
)

func TestEmpty(t *testing.T) {
	t.Run("it reports absence from both ends, no matter how often it is advanced", func(t *testing.T) {
		c := cursorkit.Empty[string]()
		for i := 0; i < 3; i++ {
			_, ok := cursorkit.Next[string](c)
			assert.False(t, ok)
			_, ok = cursorkit.NextBack[string](c)
			assert.False(t, ok)
			ptr, ok := c.ValueMut()
			assert.False(t, ok)
			assert.Nil(t, ptr)
		}
	})

	t.Run("its size is exactly zero", func(t *testing.T) {
		lower, upper, bounded := cursorkit.SizeHint[int](cursorkit.Empty[int]())
		assert.True(t, bounded)
		assert.Equal(t, 0, lower)
		assert.Equal(t, 0, upper)
		assert.Equal(t, 0, cursorkit.Count[int](cursorkit.Empty[int]()))
	})

	t.Run("collecting it yields nothing", func(t *testing.T) {
		assert.Empty(t, cursorkit.Collect[int](cursorkit.Empty[int]()))
	})
}
