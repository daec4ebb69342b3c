// Package cbor implements a Concise Binary Object Representation (RFC
// 8949) codec: an Encoder/Decoder pair with a type-dispatch registry,
// shared-reference support for cyclic graphs, canonical-encoding modes,
// and a built-in tag registry for common semantic types (big integers,
// decimals, rationals, datetimes, UUIDs, IP addresses, regexes, MIME
// messages, and sets).
//
// Marshal/Unmarshal cover the one-shot case; NewEncoder/NewDecoder expose
// the streaming engines in encoder and decoder for callers that need
// registry customisation, value sharing, or incremental I/O.
package cbor

import (
	"bytes"
	"io"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/decoder"
	"github.com/binorbit/cbor/encoder"
)

// Re-exported value-model types, so callers need only import this package
// for the common case.
type (
	Array     = cbortype.Array
	Map       = cbortype.Map
	MapEntry  = cbortype.MapEntry
	Set       = cbortype.Set
	Tag       = cbortype.Tag
	Simple    = cbortype.Simple
	Undefined = cbortype.Undefined
	NaiveTime = cbortype.NaiveTime
	Date      = cbortype.Date
)

// NewMap creates an empty ordered map; see cbortype.NewMap.
func NewMap() *Map { return cbortype.NewMap() }

// NewSet creates a set, optionally pre-populated with items; see
// cbortype.NewSet.
func NewSet(items ...any) *Set { return cbortype.NewSet(items...) }

// Marshal encodes v to CBOR bytes.
func Marshal(v any, opts ...encoder.Option) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := encoder.New(&buf, opts...)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(w, opts...)
}

// Unmarshal decodes the single top-level CBOR item in data.
func Unmarshal(data []byte, opts ...decoder.Option) (any, error) {
	dec, err := decoder.New(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}
	return dec.Decode()
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...decoder.Option) (*decoder.Decoder, error) {
	return decoder.New(r, opts...)
}
