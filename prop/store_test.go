package prop_test

import (
	"testing"

	"github.com/gographlib/algo/prop"
	"github.com/stretchr/testify/require"
)

func TestStore_DefaultOnUnsetIndex(t *testing.T) {
	s := prop.New(-1)
	require.Equal(t, -1, s.Get(5))
	require.False(t, s.IsSet(5))
}

func TestStore_SetAndGet(t *testing.T) {
	s := prop.New(0)
	s.Set(3, 42)
	require.Equal(t, 42, s.Get(3))
	require.Equal(t, 0, s.Get(2), "intermediate slot materialises to the default")
	require.True(t, s.IsSet(3))
	require.False(t, s.IsSet(2))
}

func TestStore_Clear(t *testing.T) {
	s := prop.New("x")
	s.Set(0, "a")
	s.Set(1, "b")
	s.Clear()
	require.Equal(t, "x", s.Get(0))
	require.False(t, s.IsSet(0))
}

func TestStore_SetDefault(t *testing.T) {
	s := prop.New(0)
	s.Set(1, 5)
	s.SetDefault(9)
	require.Equal(t, 9, s.Get(2))
	require.Equal(t, 5, s.Get(1), "already-set slots keep their value")
}
