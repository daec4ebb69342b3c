package cbor

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    any
		hex  string
	}{
		{"uint", uint64(1000000000000), "1b000000e8d4a51000"},
		{"float64", 1.1, "fb3ff199999999999a"},
		{"bool-true", true, "f5"},
		{"nil", nil, "f6"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Marshal(tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.hex, hex.EncodeToString(got))

			b, err := hex.DecodeString(tc.hex)
			require.NoError(t, err)
			v, err := Unmarshal(b)
			require.NoError(t, err)
			if tc.v == nil {
				require.Nil(t, v)
			}
		})
	}
}

func TestMarshalArrayRoundTrip(t *testing.T) {
	a := &Array{Items: []any{int64(1), int64(2), int64(3)}}
	got, err := Marshal(a)
	require.NoError(t, err)
	require.Equal(t, "83010203", hex.EncodeToString(got))

	v, err := Unmarshal(got)
	require.NoError(t, err)
	back := v.(*Array)
	require.Equal(t, []any{uint64(1), uint64(2), uint64(3)}, back.Items)
}

func TestMarshalMapRoundTrip(t *testing.T) {
	m := NewMap()
	m.Set(int64(1), "one")
	got, err := Marshal(m)
	require.NoError(t, err)

	v, err := Unmarshal(got)
	require.NoError(t, err)
	back := v.(*Map)
	val, ok := back.Get(uint64(1))
	require.True(t, ok)
	require.Equal(t, "one", val)
}
