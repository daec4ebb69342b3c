// Package wire implements the lowest-level CBOR item framing shared by the
// encoder and decoder: packing/unpacking the initial byte and its argument,
// and choosing the shortest legal argument width.
//
// This is the equivalent, for a byte-stream protocol, of mebo's section
// package: both own the precise binary layout rules (there: fixed headers
// and index entries; here: the variable-width initial-byte/argument pair)
// that the higher-level encoder/decoder packages build on.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/binorbit/cbor/errs"
	"github.com/binorbit/cbor/format"
)

// HeaderLen returns the number of bytes AppendHeader will write for the
// given argument, not counting the initial byte itself: 0, 1, 2, 4 or 8.
func HeaderLen(arg uint64) int {
	switch {
	case arg <= 23:
		return 0
	case arg <= 0xFF:
		return 1
	case arg <= 0xFFFF:
		return 2
	case arg <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

// AppendHeader appends the initial byte for (major, arg) plus however many
// big-endian argument bytes are needed, using the narrowest legal width
// (spec §4.4 "Initial byte length choice").
func AppendHeader(buf []byte, major format.MajorType, arg uint64) []byte {
	b := byte(major) << 5

	switch {
	case arg <= 23:
		return append(buf, b|byte(arg))
	case arg <= 0xFF:
		return append(buf, b|format.InfoOneByte, byte(arg))
	case arg <= 0xFFFF:
		buf = append(buf, b|format.InfoTwoByte)
		return binary.BigEndian.AppendUint16(buf, uint16(arg))
	case arg <= 0xFFFFFFFF:
		buf = append(buf, b|format.InfoFourByte)
		return binary.BigEndian.AppendUint32(buf, uint32(arg))
	default:
		buf = append(buf, b|format.InfoEightByte)
		return binary.BigEndian.AppendUint64(buf, arg)
	}
}

// AppendIndefiniteHeader appends the initial byte that opens an
// indefinite-length array, map, byte string or text string.
func AppendIndefiniteHeader(buf []byte, major format.MajorType) []byte {
	return append(buf, byte(major)<<5|format.InfoIndefinite)
}

// AppendBreak appends the break byte (0xFF) that closes an
// indefinite-length item.
func AppendBreak(buf []byte) []byte {
	return append(buf, 0xFF)
}

// Header is a decoded initial byte: its major type, its additional
// information field, and (for info <= 27) the resolved argument.
type Header struct {
	Major      format.MajorType
	Info       uint8
	Arg        uint64
	Indefinite bool
}

// ReadHeader reads one initial byte plus its argument bytes (if any) from r.
// r.read must return exactly the requested number of bytes or an error;
// short reads are reported as errs.ErrPrematureEoS by the caller-supplied
// reader (see decoder.Decoder.read).
func ReadHeader(read func(n int) ([]byte, error)) (Header, error) {
	b, err := read(1)
	if err != nil {
		return Header{}, err
	}

	major := format.MajorType(b[0] >> 5)
	info := b[0] & 0x1F

	switch {
	case info <= 23:
		return Header{Major: major, Info: info, Arg: uint64(info)}, nil
	case info == format.InfoOneByte:
		a, err := read(1)
		if err != nil {
			return Header{}, err
		}
		return Header{Major: major, Info: info, Arg: uint64(a[0])}, nil
	case info == format.InfoTwoByte:
		a, err := read(2)
		if err != nil {
			return Header{}, err
		}
		return Header{Major: major, Info: info, Arg: uint64(binary.BigEndian.Uint16(a))}, nil
	case info == format.InfoFourByte:
		a, err := read(4)
		if err != nil {
			return Header{}, err
		}
		return Header{Major: major, Info: info, Arg: uint64(binary.BigEndian.Uint32(a))}, nil
	case info == format.InfoEightByte:
		a, err := read(8)
		if err != nil {
			return Header{}, err
		}
		return Header{Major: major, Info: info, Arg: binary.BigEndian.Uint64(a)}, nil
	case info >= format.InfoReservedLo && info <= format.InfoReservedHi:
		return Header{}, fmt.Errorf("%w: reserved additional information %d", errs.ErrUnknownSubtype, info)
	default: // info == 31
		switch major {
		case format.MajorBytes, format.MajorText, format.MajorArray, format.MajorMap, format.MajorSimple:
			return Header{Major: major, Info: info, Indefinite: true}, nil
		default:
			return Header{}, fmt.Errorf("%w: indefinite length not legal for major type %s", errs.ErrUnknownSubtype, major)
		}
	}
}
