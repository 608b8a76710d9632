package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantities_Set(t *testing.T) {
	q := Quantities{"a": 1, "b": 2}

	t.Run("PositiveValueSticks", func(t *testing.T) {
		q.Set("a", 4)
		assert.Equal(t, 4, q["a"])
	})

	t.Run("ZeroRemovesKey", func(t *testing.T) {
		before := q.TotalCount()
		q.Set("a", 0)

		_, ok := q["a"]
		assert.False(t, ok)
		assert.Equal(t, before-4, q.TotalCount())
	})

	t.Run("NegativeRemovesKey", func(t *testing.T) {
		q.Set("b", -3)
		_, ok := q["b"]
		assert.False(t, ok)
	})
}

func TestQuantities_TotalCount(t *testing.T) {
	assert.Equal(t, 0, Quantities{}.TotalCount())
	assert.Equal(t, 6, Quantities{"a": 1, "b": 2, "c": 3}.TotalCount())
}

func TestQuantities_TotalAmount(t *testing.T) {
	q := Quantities{"a": 2, "b": 1, "ghost": 5}
	prices := map[string]float64{"a": 10, "b": 3.5}

	// Unknown ids contribute zero.
	assert.Equal(t, 23.5, q.TotalAmount(prices))
	assert.Equal(t, 0.0, Quantities{}.TotalAmount(prices))
}

func TestMerge(t *testing.T) {
	t.Run("ServerWinsOnConflict", func(t *testing.T) {
		local := Quantities{"a": 1, "b": 2}
		server := Quantities{"b": 5, "c": 1}

		merged := Merge(local, server)

		assert.Equal(t, Quantities{"a": 1, "b": 5, "c": 1}, merged)
	})

	t.Run("EmptyLocal", func(t *testing.T) {
		merged := Merge(Quantities{}, Quantities{"x": 3})
		assert.Equal(t, Quantities{"x": 3}, merged)
	})

	t.Run("EmptyServer", func(t *testing.T) {
		merged := Merge(Quantities{"x": 3}, Quantities{})
		assert.Equal(t, Quantities{"x": 3}, merged)
	})

	t.Run("InputsUntouched", func(t *testing.T) {
		local := Quantities{"a": 1}
		server := Quantities{"a": 9}

		Merge(local, server)

		assert.Equal(t, 1, local["a"])
		assert.Equal(t, 9, server["a"])
	})
}

func TestQuantities_Clone(t *testing.T) {
	q := Quantities{"a": 1}
	c := q.Clone()
	c["a"] = 7

	assert.Equal(t, 1, q["a"])
}
