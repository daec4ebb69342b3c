// Package format defines the wire-level constants of the CBOR data model:
// major types, the well-known tag numbers this codec gives built-in
// handling to, and the simple-value sentinels of major type 7.
//
// Mirrors the shape of a teacher-style format package: small value types
// with a String() method, no behaviour.
package format

// MajorType is the top 3 bits of a CBOR initial byte.
type MajorType uint8

const (
	MajorUnsigned MajorType = 0
	MajorNegative MajorType = 1
	MajorBytes    MajorType = 2
	MajorText     MajorType = 3
	MajorArray    MajorType = 4
	MajorMap      MajorType = 5
	MajorTag      MajorType = 6
	MajorSimple   MajorType = 7
)

func (m MajorType) String() string {
	switch m {
	case MajorUnsigned:
		return "unsigned-int"
	case MajorNegative:
		return "negative-int"
	case MajorBytes:
		return "byte-string"
	case MajorText:
		return "text-string"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorSimple:
		return "simple/float/break"
	default:
		return "unknown"
	}
}

// Additional-information values with special meaning, independent of major
// type.
const (
	InfoOneByte    = 24
	InfoTwoByte    = 25
	InfoFourByte   = 26
	InfoEightByte  = 27
	InfoReservedLo = 28
	InfoReservedHi = 30
	InfoIndefinite = 31
)

// Major type 7 (simple/float/break) additional-information values.
const (
	SimpleFalse     = 20
	SimpleTrue      = 21
	SimpleNull      = 22
	SimpleUndefined = 23
	Float16         = 25
	Float32         = 26
	Float64         = 27
	Break           = 31
)

// Tag numbers this codec gives built-in encode/decode handling to (spec §4.5).
const (
	TagDatetimeText  uint64 = 0
	TagDatetimeEpoch uint64 = 1
	TagBigPos        uint64 = 2
	TagBigNeg        uint64 = 3
	TagDecimal       uint64 = 4
	TagBigFloat      uint64 = 5
	TagShareableDef  uint64 = 28
	TagSharedRef     uint64 = 29
	TagRational      uint64 = 30
	TagRegexp        uint64 = 35
	TagMIME          uint64 = 36
	TagUUID          uint64 = 37
	TagSelfDescribe  uint64 = 55799
	TagSet           uint64 = 258
	TagIPAddress     uint64 = 260
	TagIPNetwork     uint64 = 261
)
