package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binorbit/cbor/errs"
	"github.com/binorbit/cbor/format"
)

func TestAppendHeaderWidths(t *testing.T) {
	cases := []struct {
		arg  uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 24}},
		{0xFF, []byte{0x18, 0xFF}},
		{0x100, []byte{0x19, 0x01, 0x00}},
		{0xFFFF, []byte{0x19, 0xFF, 0xFF}},
		{0x10000, []byte{0x1A, 0x00, 0x01, 0x00, 0x00}},
		{0xFFFFFFFF, []byte{0x1A, 0xFF, 0xFF, 0xFF, 0xFF}},
		{0x100000000, []byte{0x1B, 0, 0, 0, 1, 0, 0, 0, 0}},
	}

	for _, c := range cases {
		got := AppendHeader(nil, format.MajorUnsigned, c.arg)
		require.Equal(t, c.want, got, "arg=%d", c.arg)
		require.Equal(t, len(c.want)-1, HeaderLen(c.arg))
	}
}

func TestReadHeaderRoundTrip(t *testing.T) {
	for _, arg := range []uint64{0, 1, 23, 24, 255, 256, 65535, 65536, 1 << 32, 1<<64 - 1} {
		buf := AppendHeader(nil, format.MajorArray, arg)
		pos := 0
		read := func(n int) ([]byte, error) {
			b := buf[pos : pos+n]
			pos += n
			return b, nil
		}

		h, err := ReadHeader(read)
		require.NoError(t, err)
		require.Equal(t, format.MajorArray, h.Major)
		require.Equal(t, arg, h.Arg)
		require.False(t, h.Indefinite)
	}
}

func TestReadHeaderIndefinite(t *testing.T) {
	buf := AppendIndefiniteHeader(nil, format.MajorMap)
	pos := 0
	read := func(n int) ([]byte, error) {
		b := buf[pos : pos+n]
		pos += n
		return b, nil
	}

	h, err := ReadHeader(read)
	require.NoError(t, err)
	require.True(t, h.Indefinite)
	require.Equal(t, format.MajorMap, h.Major)
}

func TestReadHeaderReservedInfo(t *testing.T) {
	for _, info := range []byte{28, 29, 30} {
		pos := 0
		buf := []byte{byte(format.MajorSimple)<<5 | info}
		read := func(n int) ([]byte, error) {
			b := buf[pos : pos+n]
			pos += n
			return b, nil
		}
		_, err := ReadHeader(read)
		require.ErrorIs(t, err, errs.ErrUnknownSubtype)
	}
}

// TestReadHeaderIndefiniteIllegalMajorTypes covers spec.md §4.5: indefinite
// length (info 31) is only legal for byte/text strings, arrays, maps, and
// major type 7's break. Major types 0, 1 and 6 with info 31 must error
// rather than silently yielding Arg 0 (e.g. 0x1F was previously decoded as
// unsigned-int 0).
func TestReadHeaderIndefiniteIllegalMajorTypes(t *testing.T) {
	for _, major := range []format.MajorType{format.MajorUnsigned, format.MajorNegative, format.MajorTag} {
		pos := 0
		buf := []byte{byte(major)<<5 | format.InfoIndefinite}
		read := func(n int) ([]byte, error) {
			b := buf[pos : pos+n]
			pos += n
			return b, nil
		}
		_, err := ReadHeader(read)
		require.ErrorIs(t, err, errs.ErrUnknownSubtype, "major=%s", major)
	}
}
