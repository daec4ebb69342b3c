package decoder

import (
	"math"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/binorbit/cbor/internal/halffloat"
)

// bigNegFromArg handles the negative integers that don't fit in int64:
// major type 1 with an argument above math.MaxInt64, i.e. -1-arg from
// -2^63-1 down to -2^64 (argument math.MaxUint64).
func bigNegFromArg(arg uint64) *big.Int {
	n := new(big.Int).SetUint64(arg)
	n.Neg(n)
	return n.Sub(n, big.NewInt(1))
}

// decodeFloat reinterprets the argument bits that wire.ReadHeader already
// read for a major-type-7 float (info 25/26/27) as a half, single or
// double.
func decodeFloat(width int, bits uint64) float64 {
	switch width {
	case 2:
		return halffloat.UnpackHalf(uint16(bits))
	case 4:
		return float64(math.Float32frombits(uint32(bits)))
	default:
		return math.Float64frombits(bits)
	}
}

func replaceInvalidUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

func dropInvalidUTF8(b []byte) string {
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			b = b[1:]
			continue
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
