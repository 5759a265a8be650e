package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ordered_index/pkg/cache"
)

func TestAddGet(t *testing.T) {
	c := cache.New[string, int](4, nil)

	c.Add("a", 1)
	c.Add("b", 2)
	require.Equal(t, 2, c.Len())

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestAddExistingKeeps(t *testing.T) {
	c := cache.New[string, int](4, nil)

	c.Add("a", 1)
	c.Add("a", 99)
	require.Equal(t, 1, c.Len())

	v, _ := c.Get("a")
	require.Equal(t, 1, v)
}

func TestEvictsOldest(t *testing.T) {
	var evicted []string
	c := cache.New[string, int](2, func(key string, val int) {
		evicted = append(evicted, key)
	})

	c.Add("a", 1)
	c.Add("b", 2)

	// touching a makes b the eviction candidate
	c.Get("a")
	c.Add("c", 3)

	require.Equal(t, []string{"b"}, evicted)
	require.Equal(t, 2, c.Len())

	_, ok := c.Get("b")
	require.False(t, ok)
	_, ok = c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
}

func TestDel(t *testing.T) {
	c := cache.New[string, int](2, nil)

	c.Add("a", 1)
	c.Del("a")
	c.Del("a") // absent delete is a no-op

	require.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	require.False(t, ok)
}

func TestFlush(t *testing.T) {
	var evicted []string
	c := cache.New[string, int](4, func(key string, val int) {
		evicted = append(evicted, key)
	})

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)
	c.Flush()

	require.Equal(t, 0, c.Len())
	require.ElementsMatch(t, []string{"a", "b", "c"}, evicted)
	// oldest out first
	require.Equal(t, "a", evicted[0])
}
