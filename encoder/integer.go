package encoder

import (
	"math/big"

	"github.com/binorbit/cbor/format"
)

// EncodeUint emits n as a major-type-0 unsigned integer.
func (e *Encoder) EncodeUint(n uint64) error {
	return e.EncodeLength(format.MajorUnsigned, n)
}

// EncodeInt emits n as major type 0 (non-negative) or major type 1
// (negative, argument = -1-n), per spec §4.4's integer-encoding algorithm.
// Every int64/uint64 value fits this fast path; values outside that range
// need EncodeBigInt.
func (e *Encoder) EncodeInt(n int64) error {
	if n >= 0 {
		return e.EncodeUint(uint64(n))
	}
	return e.EncodeLength(format.MajorNegative, ^uint64(n))
}

// EncodeBigInt emits n, falling back to tag 2 (positive) or tag 3
// (negative) with a minimal big-endian magnitude byte string once n's
// magnitude no longer fits in int64/uint64.
func (e *Encoder) EncodeBigInt(n *big.Int) error {
	switch {
	case n.IsInt64():
		return e.EncodeInt(n.Int64())
	case n.Sign() > 0 && n.IsUint64():
		return e.EncodeUint(n.Uint64())
	}

	var tag uint64
	var mag *big.Int
	if n.Sign() < 0 {
		tag = format.TagBigNeg
		mag = new(big.Int).Sub(new(big.Int).Neg(n), big.NewInt(1))
	} else {
		tag = format.TagBigPos
		mag = n
	}

	if err := e.EncodeLength(format.MajorTag, tag); err != nil {
		return err
	}

	b := mag.Bytes()
	if err := e.EncodeLength(format.MajorBytes, uint64(len(b))); err != nil {
		return err
	}
	e.cur.MustWrite(b)
	return nil
}
