package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Run("no args returns the query itself", func(t *testing.T) {
		assert.Equal(t, "SELECT 1", Key("SELECT 1"))
	})

	t.Run("args are rendered into the key", func(t *testing.T) {
		k := Key("SELECT * FROM t WHERE a=$1 AND b=$2", "x", 7)
		assert.Equal(t, "SELECT * FROM t WHERE a=$1 AND b=$2|x|7", k)
	})

	t.Run("different args give different keys", func(t *testing.T) {
		q := "SELECT * FROM t WHERE a=$1"
		assert.NotEqual(t, Key(q, "x"), Key(q, "y"))
	})
}

func TestQueryCache(t *testing.T) {
	c := NewQueryCache()

	t.Run("miss on empty cache", func(t *testing.T) {
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		c.Set("k", []int{1, 2, 3})
		v, ok := c.Get("k")
		assert.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, v)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		c.Set("k2", "v2")
		assert.Equal(t, 2, c.Len())
		c.Clear()
		assert.Equal(t, 0, c.Len())
		_, ok := c.Get("k")
		assert.False(t, ok)
	})
}
