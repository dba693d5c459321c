package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := NewOrderedMap[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Equal(t, 0, val)
	})

	t.Run("order survives overwrite", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("b", 1)
		om.Set("a", 2)
		om.Set("b", 3)

		assert.Equal(t, []string{"b", "a"}, om.Keys())
		assert.Equal(t, []int{3, 2}, om.Values())
		assert.Equal(t, 2, om.Count())
	})

	t.Run("set if absent keeps first value", func(t *testing.T) {
		om := NewOrderedMap[string, string]()

		v, inserted := om.SetIfAbsent("k", "first")
		assert.True(t, inserted)
		assert.Equal(t, "first", v)

		v, inserted = om.SetIfAbsent("k", "second")
		assert.False(t, inserted)
		assert.Equal(t, "first", v)
		assert.True(t, om.Has("k"))
	})

	t.Run("range stops early", func(t *testing.T) {
		om := NewOrderedMap[int, int]()
		for i := 0; i < 5; i++ {
			om.Set(i, i*i)
		}

		var seen []int
		om.Range(func(k, v int) bool {
			seen = append(seen, v)
			return k < 2
		})
		assert.Equal(t, []int{0, 1, 4}, seen)
	})

	t.Run("copies are detached", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("x", 1)

		keys := om.Keys()
		keys[0] = "y"
		assert.True(t, om.Has("x"))
		assert.False(t, om.Has("y"))
	})
}
