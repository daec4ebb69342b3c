package halffloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 2, 0.5, 1.5, 100, -100, 65504, 6.103515625e-05}
	for _, v := range values {
		h := PackHalf(v)
		got := UnpackHalf(h)
		require.Equal(t, v, got, "value=%v", v)
	}
}

func TestPackSpecialValues(t *testing.T) {
	require.Equal(t, uint16(0x7E00), PackHalf(math.NaN()))
	require.Equal(t, uint16(0x7C00), PackHalf(math.Inf(1)))
	require.Equal(t, uint16(0xFC00), PackHalf(math.Inf(-1)))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		v    float64
		want Width
	}{
		{0, Half},
		{1, Half},
		{-2, Half},
		{math.NaN(), Half},
		{math.Inf(1), Half},
		{math.Inf(-1), Half},
		{1.5, Half},
		{100000.0, Single},    // out of half range
		{math.MaxFloat32, Single}, // max float32, not representable as half
		{1.1, Double},
	}

	for _, c := range cases {
		require.Equal(t, c.want, Classify(c.v), "value=%v", c.v)
	}
}

func TestClassifySingleRoundTrips(t *testing.T) {
	// A value that fits exactly in float32 but not float64->half.
	f := float32(123456.75)
	w := Classify(float64(f))
	require.Equal(t, Single, w)
}
