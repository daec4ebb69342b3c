package encoder

import (
	"bytes"
	"sort"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/format"
)

// EncodeArray emits a as a definite-length major-type-4 array, routed
// through the shared-reference table (arrays are always shareable).
func (e *Encoder) EncodeArray(a *cbortype.Array) error {
	return e.encodeShared(a, func() error {
		if err := e.EncodeLength(format.MajorArray, uint64(len(a.Items))); err != nil {
			return err
		}
		for _, item := range a.Items {
			if err := e.encodeDispatch(item); err != nil {
				return err
			}
		}
		return nil
	})
}

// EncodeMap emits m as a major-type-5 map. In canonical mode, pairs are
// sorted by their encoded key bytes (length-then-lexicographic, RFC 7049
// §3.9); otherwise they're emitted in insertion order.
func (e *Encoder) EncodeMap(m *cbortype.Map) error {
	return e.encodeShared(m, func() error {
		entries := m.Entries()

		if e.cfg.canonical == CanonicalOff {
			if err := e.EncodeLength(format.MajorMap, uint64(len(entries))); err != nil {
				return err
			}
			for _, en := range entries {
				if err := e.encodeDispatch(en.Key); err != nil {
					return err
				}
				if err := e.encodeDispatch(en.Value); err != nil {
					return err
				}
			}
			return nil
		}

		type pair struct {
			keyBytes []byte
			value    any
		}

		pairs := make([]pair, len(entries))
		for i, en := range entries {
			kb, err := e.EncodeToBytes(en.Key)
			if err != nil {
				return err
			}
			pairs[i] = pair{keyBytes: kb, value: en.Value}
		}

		sort.SliceStable(pairs, func(i, j int) bool {
			return lessCanonical(pairs[i].keyBytes, pairs[j].keyBytes)
		})

		if err := e.EncodeLength(format.MajorMap, uint64(len(pairs))); err != nil {
			return err
		}
		for _, p := range pairs {
			e.cur.MustWrite(p.keyBytes)
			if err := e.encodeDispatch(p.value); err != nil {
				return err
			}
		}
		return nil
	})
}

// EncodeSet emits s as tag 258 wrapping a major-type-4 array of its
// elements. In canonical mode, elements are sorted by their own encoded
// byte ordering.
func (e *Encoder) EncodeSet(s *cbortype.Set) error {
	return e.encodeShared(s, func() error {
		if err := e.EncodeLength(format.MajorTag, format.TagSet); err != nil {
			return err
		}

		items := s.Items()

		if e.cfg.canonical == CanonicalOff {
			if err := e.EncodeLength(format.MajorArray, uint64(len(items))); err != nil {
				return err
			}
			for _, it := range items {
				if err := e.encodeDispatch(it); err != nil {
					return err
				}
			}
			return nil
		}

		encoded := make([][]byte, len(items))
		for i, it := range items {
			b, err := e.EncodeToBytes(it)
			if err != nil {
				return err
			}
			encoded[i] = b
		}

		sort.Slice(encoded, func(i, j int) bool {
			return lessCanonical(encoded[i], encoded[j])
		})

		if err := e.EncodeLength(format.MajorArray, uint64(len(encoded))); err != nil {
			return err
		}
		for _, b := range encoded {
			e.cur.MustWrite(b)
		}
		return nil
	})
}

func lessCanonical(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return bytes.Compare(a, b) < 0
}
