// Package cbortype defines the host value-model types the encoder accepts
// and the decoder produces beyond Go's own primitives (bool, string, []byte,
// int64/uint64, float64, *big.Int): ordered arrays and maps, sets, raw tags,
// and the major-type-7 sentinels.
//
// Array, Map, Set and Tag are always used through a pointer. That pointer is
// what gives them a stable identity for the shared-reference table (spec §3):
// with value sharing enabled, two calls to encode the same *Map value
// produce a tag-29 back-reference the second time, and a pointer is the only thing in Go with object
// identity cheap enough to use as that key. Build cyclic graphs by mutating
// a container after taking its address, e.g.:
//
//	a := &cbortype.Array{}
//	a.Items = append(a.Items, a) // a now refers to itself
package cbortype

// Array is an ordered, indexable CBOR array (major type 4).
type Array struct {
	Items []any
}

// MapEntry is one key/value pair of a Map, preserving the order it was
// inserted or decoded in.
type MapEntry struct {
	Key   any
	Value any
}

// Map is CBOR's major type 5: an ordered sequence of key/value pairs. Unlike
// a Go map, iteration order is insertion order, which the decoder must
// preserve (spec §3 "Map (ordered key/value pairs...)").
//
// Lookup is O(n); Map is sized for the handful-to-dozens of keys typical of
// CBOR documents, not as a general-purpose associative container.
type Map struct {
	entries []MapEntry
}

// NewMap creates an empty ordered map.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Set inserts key/value, or updates value in place if key already exists
// (by Go equality, so pointer keys such as *Map match by identity; keys that
// aren't comparable, e.g. a []byte key, are always treated as new).
func (m *Map) Set(key, value any) {
	if isComparable(key) {
		for i := range m.entries {
			if m.entries[i].Key == key {
				m.entries[i].Value = value
				return
			}
		}
	}
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
}

// Append adds a key/value pair without checking for an existing key. Used
// by the decoder, which must preserve duplicate keys exactly as they
// appeared on the wire rather than silently overwrite.
func (m *Map) Append(key, value any) {
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
}

// Get looks up a key by Go equality.
func (m *Map) Get(key any) (any, bool) {
	if !isComparable(key) {
		return nil, false
	}
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Entries returns the map's entries in insertion order. The caller must not
// mutate the returned slice.
func (m *Map) Entries() []MapEntry {
	return m.entries
}

// Range calls fn for every entry in insertion order, stopping early if fn
// returns false.
func (m *Map) Range(fn func(key, value any) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

func isComparable(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return v == v
}

// Set is CBOR's tag-258 unordered collection, modelled here as an
// order-preserving, deduplicating-on-Add slice: decode order is preserved
// (useful for canonical round-tripping) while Add still rejects values
// already present by Go equality.
type Set struct {
	items []any
}

// NewSet creates an empty set, optionally pre-populated with items (not
// deduplicated; use Add for that).
func NewSet(items ...any) *Set {
	return &Set{items: items}
}

// Add appends v if an equal item (by Go equality) is not already present.
// Values that aren't comparable (e.g. []byte) are always appended.
func (s *Set) Add(v any) {
	if isComparable(v) {
		for _, existing := range s.items {
			if isComparable(existing) && existing == v {
				return
			}
		}
	}
	s.items = append(s.items, v)
}

// Items returns the set's elements in insertion order.
func (s *Set) Items() []any {
	return s.items
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.items)
}

// Tag is a CBOR tag number paired with its content, surfaced to caller code
// when the decoder has no built-in handler for Number (spec §3 "Tag...
// exposed to user code when no built-in handler exists").
type Tag struct {
	Number  uint64
	Content any
}

// Simple is a CBOR major-type-7 simple value outside the sentinel range:
// 0..19 or 32..255 (20..23 are false/true/null/undefined, handled as native
// Go bool/nil/Undefined instead; 24..31 are reserved or float-tag markers).
type Simple uint8

// Undefined is the CBOR "undefined" sentinel (major type 7, info 23). CBOR
// null decodes to a plain Go nil instead, since Go already has a zero-cost
// absent-value sentinel for that.
type Undefined struct{}
