package registry

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct{ N int }

func TestRegisterAndLookupDirect(t *testing.T) {
	r := New()
	r.Register(reflect.TypeOf(widget{}), func(v any) ([]byte, error) {
		w := v.(widget)
		return []byte(fmt.Sprintf("widget:%d", w.N)), nil
	})

	fn, ok := r.Lookup(reflect.TypeOf(widget{}))
	require.True(t, ok)

	b, err := fn(widget{N: 3})
	require.NoError(t, err)
	require.Equal(t, "widget:3", string(b))
}

func TestLookupMissWithoutDefault(t *testing.T) {
	r := New()
	_, ok := r.Lookup(reflect.TypeOf(widget{}))
	require.False(t, ok)
}

func TestSetDefaultUsedWhenNoMatch(t *testing.T) {
	r := New()
	r.SetDefault(func(v any) ([]byte, error) {
		return []byte("default"), nil
	})

	fn, ok := r.Lookup(reflect.TypeOf(widget{}))
	require.True(t, ok)
	b, err := fn(nil)
	require.NoError(t, err)
	require.Equal(t, "default", string(b))
}

func TestRegisterNameResolvesLazilyAndCaches(t *testing.T) {
	r := New()
	r.RegisterName("registry", "widget", func(v any) ([]byte, error) {
		return []byte("deferred-match"), nil
	})

	wt := reflect.TypeOf(widget{})
	fn, ok := r.Lookup(wt)
	require.True(t, ok)
	b, err := fn(nil)
	require.NoError(t, err)
	require.Equal(t, "deferred-match", string(b))

	// Second lookup should hit the now-cached byType entry.
	fn2, ok := r.Lookup(wt)
	require.True(t, ok)
	b2, err := fn2(nil)
	require.NoError(t, err)
	require.Equal(t, "deferred-match", string(b2))
}

func TestRegisterTakesPriorityOverEarlierRegisterName(t *testing.T) {
	r := New()
	r.RegisterName("registry", "widget", func(v any) ([]byte, error) {
		return []byte("deferred"), nil
	})
	r.Register(reflect.TypeOf(widget{}), func(v any) ([]byte, error) {
		return []byte("direct"), nil
	})

	fn, ok := r.Lookup(reflect.TypeOf(widget{}))
	require.True(t, ok)
	b, err := fn(nil)
	require.NoError(t, err)
	require.Equal(t, "direct", string(b))
}

func TestDescribe(t *testing.T) {
	r := New()
	r.RegisterName("some/module", "Thing", nil)
	require.Contains(t, r.entries[0].Describe(), "deferred")
}
