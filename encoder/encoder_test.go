package encoder

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/binorbit/cbor/cbortype"
)

func encodeHex(t *testing.T, v any, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	enc, err := New(&buf, opts...)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(v))
	return hex.EncodeToString(buf.Bytes())
}

func TestEncodeLargeUint(t *testing.T) {
	require.Equal(t, "1b000000e8d4a51000", encodeHex(t, uint64(1000000000000)))
}

func TestEncodeBigIntNegative(t *testing.T) {
	n := new(big.Int)
	n.SetString("-18446744073709551617", 10)
	require.Equal(t, "c349010000000000000000", encodeHex(t, n))
}

func TestEncodeFloatDouble(t *testing.T) {
	require.Equal(t, "fb3ff199999999999a", encodeHex(t, 1.1))
}

func TestEncodeNestedArray(t *testing.T) {
	a := &cbortype.Array{Items: []any{
		int64(1),
		&cbortype.Array{Items: []any{int64(2), int64(3)}},
		&cbortype.Array{Items: []any{int64(4), int64(5)}},
	}}
	require.Equal(t, "8301820203820405", encodeHex(t, a))
}

func TestEncodeMapOrderPreserved(t *testing.T) {
	m := cbortype.NewMap()
	m.Set(int64(1), int64(2))
	m.Set(int64(3), int64(4))
	require.Equal(t, "a201020304", encodeHex(t, m))
}

func TestEncodeDatetimeAsTimestamp(t *testing.T) {
	dt := time.Date(2013, 3, 21, 20, 4, 0, 0, time.UTC)
	require.Equal(t, "c11a514b67b0", encodeHex(t, dt, WithDatetimeAsTimestamp()))
}

func TestEncodeRational(t *testing.T) {
	r := big.NewRat(2, 5)
	require.Equal(t, "d81e820205", encodeHex(t, r))
}

func TestEncodeSelfReferentialArray(t *testing.T) {
	a := &cbortype.Array{}
	a.Items = append(a.Items, a)
	require.Equal(t, "d81c81d81d00", encodeHex(t, a, WithValueSharing(true)))
}

func TestEncodeSelfReferentialMap(t *testing.T) {
	m := cbortype.NewMap()
	a := m
	m.Set(int64(0), a)
	require.Equal(t, "d81ca100d81d00", encodeHex(t, m, WithValueSharing(true)))
}

func TestEncodeCyclicWithoutSharingFails(t *testing.T) {
	a := &cbortype.Array{}
	a.Items = append(a.Items, a)

	var buf bytes.Buffer
	enc, err := New(&buf)
	require.NoError(t, err)
	err = enc.Encode(a)
	require.Error(t, err)
}

func TestEncodeCanonicalMapKeyOrdering(t *testing.T) {
	m := cbortype.NewMap()
	m.Set("bb", int64(1))
	m.Set("a", int64(2))
	m.Set(int64(1), int64(3))

	var buf bytes.Buffer
	enc, err := New(&buf, WithCanonical(CanonicalOn))
	require.NoError(t, err)
	require.NoError(t, enc.Encode(m))

	// int64(1) encodes as a single byte (0x01), shortest; "a" is 2 bytes
	// ("\x61a"); "bb" is 3 bytes ("\x62bb") -- length-then-lex order.
	got := buf.Bytes()
	require.Equal(t, byte(0xA3), got[0]) // map, 3 pairs
	require.Equal(t, byte(0x01), got[1]) // key int64(1) first
}

func TestEncodeSimpleReservedFails(t *testing.T) {
	var buf bytes.Buffer
	enc, err := New(&buf)
	require.NoError(t, err)
	err = enc.EncodeSimple(cbortype.Simple(24))
	require.Error(t, err)
}

func TestEncodeToBytesPreservesSharedTable(t *testing.T) {
	var buf bytes.Buffer
	enc, err := New(&buf, WithValueSharing(true))
	require.NoError(t, err)

	shared := &cbortype.Array{Items: []any{int64(1)}}
	outer := &cbortype.Array{Items: []any{shared, shared}}
	require.NoError(t, enc.Encode(outer))

	// shared is only defined once (tag 28) and referenced once (tag 29).
	require.Contains(t, hex.EncodeToString(buf.Bytes()), "d81c")
	require.Contains(t, hex.EncodeToString(buf.Bytes()), "d81d")

	// EncodeToBytes uses the same table: shared (slot 1, after outer's slot
	// 0) now comes out as a bare back reference.
	b, err := enc.EncodeToBytes(shared)
	require.NoError(t, err)
	require.Equal(t, "d81d01", hex.EncodeToString(b))
}
