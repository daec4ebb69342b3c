package encoder

import (
	"encoding/binary"
	"math"

	"github.com/binorbit/cbor/format"
	"github.com/binorbit/cbor/internal/halffloat"
)

// EncodeFloat emits x as the narrowest of half/single/double precision that
// represents it exactly when the encoder's canonical mode is not
// CanonicalOff; otherwise always as double precision (spec §4.4
// "encode_float").
func (e *Encoder) EncodeFloat(x float64) error {
	if e.cfg.canonical == CanonicalOff {
		return e.encodeFloat64(x)
	}

	switch halffloat.Classify(x) {
	case halffloat.Half:
		return e.encodeFloat16(x)
	case halffloat.Single:
		return e.encodeFloat32(x)
	default:
		return e.encodeFloat64(x)
	}
}

func (e *Encoder) encodeFloat16(x float64) error {
	e.cur.MustWriteByte(byte(format.MajorSimple)<<5 | format.Float16)
	e.cur.B = binary.BigEndian.AppendUint16(e.cur.B, halffloat.PackHalf(x))
	return nil
}

func (e *Encoder) encodeFloat32(x float64) error {
	e.cur.MustWriteByte(byte(format.MajorSimple)<<5 | format.Float32)
	e.cur.B = binary.BigEndian.AppendUint32(e.cur.B, math.Float32bits(float32(x)))
	return nil
}

func (e *Encoder) encodeFloat64(x float64) error {
	e.cur.MustWriteByte(byte(format.MajorSimple)<<5 | format.Float64)
	e.cur.B = binary.BigEndian.AppendUint64(e.cur.B, math.Float64bits(x))
	return nil
}
