// Package decoder implements the CBOR decoding engine: it reads RFC 8949
// bytes from an io.Reader one item at a time, builds Go values, resolves
// shared/cyclic references, and applies tag semantics.
//
// A Decoder is NOT safe for concurrent use by multiple goroutines.
package decoder

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/errs"
	"github.com/binorbit/cbor/format"
	"github.com/binorbit/cbor/internal/options"
	"github.com/binorbit/cbor/internal/sharedref"
	"github.com/binorbit/cbor/internal/wire"
)

// Decoder reads CBOR-encoded values from an underlying io.Reader.
type Decoder struct {
	r      io.Reader
	cfg    *config
	shared *sharedref.DecodeTable
}

// New creates a Decoder reading from r.
func New(r io.Reader, opts ...Option) (*Decoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{
		r:      r,
		cfg:    cfg,
		shared: sharedref.NewDecodeTable(),
	}, nil
}

// read reads exactly n bytes, reporting a short read as
// errs.ErrPrematureEoS.
func (d *Decoder) read(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, fmt.Errorf("%w: wanted %d bytes: %v", errs.ErrPrematureEoS, n, err)
	}
	return buf, nil
}

// Decode reads one top-level CBOR item from the stream.
func (d *Decoder) Decode() (any, error) {
	return d.decodeValue()
}

// DecodeFromBytes swaps the active input source for data for one decode
// call, returning the decoded value. The decoder's shared-reference table
// is preserved, matching EncodeToBytes's symmetric behaviour on the encode
// side.
func (d *Decoder) DecodeFromBytes(data []byte) (any, error) {
	prev := d.r
	d.r = bytes.NewReader(data)
	v, err := d.decodeValue()
	d.r = prev
	return v, err
}

// decodeValue reads one complete CBOR item, including any wrapping tags.
func (d *Decoder) decodeValue() (any, error) {
	hdr, err := wire.ReadHeader(d.read)
	if err != nil {
		return nil, err
	}
	return d.decodeFromHeader(hdr)
}

func (d *Decoder) decodeFromHeader(hdr wire.Header) (any, error) {
	switch hdr.Major {
	case format.MajorUnsigned:
		return hdr.Arg, nil
	case format.MajorNegative:
		return negativeValue(hdr.Arg), nil
	case format.MajorBytes:
		return d.decodeByteString(hdr)
	case format.MajorText:
		return d.decodeTextString(hdr)
	case format.MajorArray:
		return d.decodeArray(hdr)
	case format.MajorMap:
		return d.decodeMap(hdr)
	case format.MajorTag:
		return d.decodeTag(hdr)
	case format.MajorSimple:
		return d.decodeSimple(hdr)
	default:
		return nil, fmt.Errorf("%w: major type %d", errs.ErrUnknownSubtype, hdr.Major)
	}
}

// negativeValue returns the signed integer represented by major type 1's
// argument. -1-arg fits in int64 whenever arg <= math.MaxInt64 and is
// returned as int64 then; for any larger arg it needs up to 65 bits (-2^64
// at arg == math.MaxUint64) and is returned as a *big.Int.
func negativeValue(arg uint64) any {
	if arg <= 1<<63-1 {
		return -1 - int64(arg)
	}
	return bigNegFromArg(arg)
}

func (d *Decoder) decodeByteString(hdr wire.Header) (any, error) {
	if hdr.Indefinite {
		return d.decodeIndefiniteString(format.MajorBytes)
	}
	b, err := d.read(int(hdr.Arg))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Decoder) decodeTextString(hdr wire.Header) (any, error) {
	if hdr.Indefinite {
		v, err := d.decodeIndefiniteString(format.MajorText)
		if err != nil {
			return nil, err
		}
		return d.validateUTF8(v.([]byte))
	}
	b, err := d.read(int(hdr.Arg))
	if err != nil {
		return nil, err
	}
	return d.validateUTF8(b)
}

func (d *Decoder) validateUTF8(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	switch d.cfg.stringErrs {
	case StringErrorsReplace:
		return replaceInvalidUTF8(b), nil
	case StringErrorsIgnore:
		return dropInvalidUTF8(b), nil
	default:
		return "", fmt.Errorf("%w", errs.ErrInvalidUTF8)
	}
}

// decodeIndefiniteString concatenates a sequence of definite-length chunks
// of major type mt until a break, per spec §4.5 ("Indefinite form:
// concatenate... heterogeneous chunks -> error").
func (d *Decoder) decodeIndefiniteString(mt format.MajorType) (any, error) {
	var out []byte
	for {
		hdr, err := wire.ReadHeader(d.read)
		if err != nil {
			return nil, err
		}
		if hdr.Indefinite && hdr.Info == format.Break {
			return out, nil
		}
		if hdr.Major != mt {
			return nil, fmt.Errorf("%w", errs.ErrHeterogeneousStreamChunks)
		}
		chunk, err := d.read(int(hdr.Arg))
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
}

func (d *Decoder) decodeArray(hdr wire.Header) (any, error) {
	a := &cbortype.Array{}
	if err := d.fillArray(a, hdr); err != nil {
		return nil, err
	}
	return a, nil
}

// fillArray decodes hdr's elements into the already-allocated a. Used both
// for a fresh array and for one pre-registered in the shared-reference
// table so its own elements may refer back to it (spec §4.5 "place the
// empty container into the slot first so its children may refer back").
func (d *Decoder) fillArray(a *cbortype.Array, hdr wire.Header) error {
	if hdr.Indefinite {
		for {
			done, err := d.decodeContainerItem(func(v any) { a.Items = append(a.Items, v) })
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}

	a.Items = make([]any, 0, hdr.Arg)
	for i := uint64(0); i < hdr.Arg; i++ {
		v, err := d.decodeValue()
		if err != nil {
			return err
		}
		a.Items = append(a.Items, v)
	}
	return nil
}

// decodeContainerItem reads one element of an indefinite-length array,
// reporting done=true if it was the closing break.
func (d *Decoder) decodeContainerItem(add func(v any)) (done bool, err error) {
	hdr, err := wire.ReadHeader(d.read)
	if err != nil {
		return false, err
	}
	if hdr.Major == format.MajorSimple && hdr.Info == format.Break {
		return true, nil
	}
	v, err := d.decodeFromHeader(hdr)
	if err != nil {
		return false, err
	}
	add(v)
	return false, nil
}

func (d *Decoder) decodeMap(hdr wire.Header) (any, error) {
	m := cbortype.NewMap()
	if err := d.fillMap(m, hdr); err != nil {
		return nil, err
	}

	if d.cfg.objectHook != nil {
		return d.cfg.objectHook(d, m)
	}
	return m, nil
}

// fillMap decodes hdr's key/value pairs into the already-allocated m, for
// the same pre-registration reason as fillArray.
func (d *Decoder) fillMap(m *cbortype.Map, hdr wire.Header) error {
	readPair := func() (done bool, err error) {
		hdr, err := wire.ReadHeader(d.read)
		if err != nil {
			return false, err
		}
		if hdr.Major == format.MajorSimple && hdr.Info == format.Break {
			return true, nil
		}
		key, err := d.decodeFromHeader(hdr)
		if err != nil {
			return false, err
		}
		val, err := d.decodeValue()
		if err != nil {
			return false, err
		}
		m.Append(key, val)
		return false, nil
	}

	if hdr.Indefinite {
		for {
			done, err := readPair()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}

	for i := uint64(0); i < hdr.Arg; i++ {
		key, err := d.decodeValue()
		if err != nil {
			return err
		}
		val, err := d.decodeValue()
		if err != nil {
			return err
		}
		m.Append(key, val)
	}
	return nil
}

func (d *Decoder) decodeSimple(hdr wire.Header) (any, error) {
	switch hdr.Info {
	case format.SimpleFalse:
		return false, nil
	case format.SimpleTrue:
		return true, nil
	case format.SimpleNull:
		return nil, nil
	case format.SimpleUndefined:
		return cbortype.Undefined{}, nil
	case format.Float16:
		return decodeFloat(2, hdr.Arg), nil
	case format.Float32:
		return decodeFloat(4, hdr.Arg), nil
	case format.Float64:
		return decodeFloat(8, hdr.Arg), nil
	case format.InfoOneByte:
		if hdr.Arg < 32 {
			return nil, fmt.Errorf("%w: 1-byte simple value %d must be >= 32", errs.ErrUnknownSubtype, hdr.Arg)
		}
		return cbortype.Simple(hdr.Arg), nil
	case format.Break:
		return nil, fmt.Errorf("%w", errs.ErrUnexpectedBreak)
	default:
		if hdr.Info <= 19 {
			return cbortype.Simple(hdr.Info), nil
		}
		return nil, fmt.Errorf("%w: info %d", errs.ErrUnknownSubtype, hdr.Info)
	}
}
