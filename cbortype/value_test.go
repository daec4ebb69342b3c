package cbortype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrderAndUpdates(t *testing.T) {
	m := NewMap()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("b", 20) // update in place, order unchanged

	require.Equal(t, 2, m.Len())
	entries := m.Entries()
	require.Equal(t, "b", entries[0].Key)
	require.Equal(t, 20, entries[0].Value)
	require.Equal(t, "a", entries[1].Key)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("missing")
	require.False(t, ok)
}

func TestMapAppendAllowsDuplicateKeys(t *testing.T) {
	m := NewMap()
	m.Append(1, "first")
	m.Append(1, "second")
	require.Equal(t, 2, m.Len())
}

func TestMapUncomparableKeyAlwaysAppends(t *testing.T) {
	m := NewMap()
	k := []byte{1}
	m.Set(k, "x")
	m.Set(k, "y")
	require.Equal(t, 2, m.Len())
}

func TestSetAddDeduplicates(t *testing.T) {
	s := NewSet()
	s.Add(1)
	s.Add(2)
	s.Add(1)
	require.Equal(t, 2, s.Len())
	require.Equal(t, []any{1, 2}, s.Items())
}

func TestSetAddUncomparableAlwaysAppends(t *testing.T) {
	s := NewSet()
	s.Add([]byte{1})
	s.Add([]byte{1})
	require.Equal(t, 2, s.Len())
}

func TestSelfReferentialArray(t *testing.T) {
	a := &Array{}
	a.Items = append(a.Items, a)
	require.Same(t, a, a.Items[0])
}
