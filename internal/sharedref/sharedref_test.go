package sharedref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeTableLookupMissThenHit(t *testing.T) {
	tbl := NewEncodeTable()
	type obj struct{ n int }
	o := &obj{1}

	_, found := tbl.Lookup(o)
	require.False(t, found)

	idx := tbl.Begin(o)
	require.Equal(t, 0, idx)
	tbl.End(o)

	got, found := tbl.Lookup(o)
	require.True(t, found)
	require.Equal(t, 0, got)
}

func TestEncodeTableSequentialIndices(t *testing.T) {
	tbl := NewEncodeTable()
	a, b := new(int), new(int)

	idxA := tbl.Begin(a)
	tbl.End(a)
	idxB := tbl.Begin(b)
	tbl.End(b)

	require.Equal(t, 0, idxA)
	require.Equal(t, 1, idxB)
}

func TestEncodeTableInProgressDetectsCycle(t *testing.T) {
	tbl := NewEncodeTable()
	o := new(int)

	require.False(t, tbl.InProgress(o))
	tbl.BeginInProgressOnly(o)
	require.True(t, tbl.InProgress(o))
	tbl.End(o)
	require.False(t, tbl.InProgress(o))
}

func TestEncodeTableReset(t *testing.T) {
	tbl := NewEncodeTable()
	o := new(int)
	tbl.Begin(o)
	tbl.Reset()

	_, found := tbl.Lookup(o)
	require.False(t, found)
}

func TestDecodeTableReserveFillGet(t *testing.T) {
	tbl := NewDecodeTable()
	idx := tbl.Reserve()

	_, found := tbl.Get(idx)
	require.False(t, found, "not yet filled")

	tbl.Fill(idx, "value")
	v, found := tbl.Get(idx)
	require.True(t, found)
	require.Equal(t, "value", v)
}

func TestDecodeTableGetOutOfRange(t *testing.T) {
	tbl := NewDecodeTable()
	tbl.Reserve()

	_, found := tbl.Get(5)
	require.False(t, found)
}

func TestDecodeTableReset(t *testing.T) {
	tbl := NewDecodeTable()
	idx := tbl.Reserve()
	tbl.Fill(idx, 1)
	tbl.Reset()

	require.Equal(t, 0, tbl.Len())
}
