// Package errs defines the sentinel errors returned by the encoder and
// decoder. Call sites wrap these with fmt.Errorf("%w: ...") to attach the
// offending value, so callers can still match on the sentinel with
// errors.Is while getting a descriptive message. No stream byte offset is
// attached, and errors returned by user hooks are passed through unwrapped.
package errs

import "errors"

// Encode errors (spec §7).
var (
	// ErrCannotSerialize is returned when no registry entry, no default
	// routine, and no built-in encoder can handle a value's type.
	ErrCannotSerialize = errors.New("cbor: cannot serialize value")

	// ErrCyclicNoSharing is returned when a cyclic structure is encountered
	// while value sharing is disabled.
	ErrCyclicNoSharing = errors.New("cbor: cyclic structure requires value sharing")

	// ErrNaiveDatetimeNoTZ is returned when a timezone-less datetime is
	// encoded without a default timezone configured.
	ErrNaiveDatetimeNoTZ = errors.New("cbor: naive datetime with no default timezone configured")

	// ErrInvalidSimpleValue is returned when EncodeSimple is called with a
	// value in 20..31 (the sentinel and reserved range).
	ErrInvalidSimpleValue = errors.New("cbor: invalid simple value")

	// ErrDeferredTypeSpecMalformed names a deferred (module, name) registry
	// key that cannot be resolved. No code path in this module returns it:
	// a deferred entry that never matches simply stays unresolved.
	ErrDeferredTypeSpecMalformed = errors.New("cbor: malformed deferred type specification")

	// ErrIntegerTooLarge is returned when an integer's magnitude cannot be
	// represented even via the tag 2/3 bignum fallback (practically
	// unreachable, kept for interface symmetry with the reference).
	ErrIntegerTooLarge = errors.New("cbor: integer too large to encode")
)

// Decode errors (spec §7).
var (
	// ErrPrematureEoS is returned when the stream ends before the number of
	// bytes an item claims to need have been read.
	ErrPrematureEoS = errors.New("cbor: premature end of stream")

	// ErrUnknownSubtype is returned for a reserved/undefined initial-byte
	// info value.
	ErrUnknownSubtype = errors.New("cbor: unknown major type 7 subtype")

	// ErrUnexpectedBreak is returned when a break byte (0xFF) is seen
	// outside an indefinite-length container.
	ErrUnexpectedBreak = errors.New("cbor: unexpected break outside indefinite-length item")

	// ErrHeterogeneousStreamChunks is returned when an indefinite-length
	// byte/text string contains chunks of a different major type.
	ErrHeterogeneousStreamChunks = errors.New("cbor: heterogeneous chunks in indefinite-length string")

	// ErrInvalidUTF8 is returned decoding a text string under the strict
	// UTF-8 error policy.
	ErrInvalidUTF8 = errors.New("cbor: invalid UTF-8 in text string")

	// ErrInvalidDatetimeSyntax is returned when tag 0's text payload is not
	// a parseable RFC 3339 timestamp.
	ErrInvalidDatetimeSyntax = errors.New("cbor: invalid datetime syntax")

	// ErrInvalidBigInt is returned when tag 2/3's payload is not a byte
	// string.
	ErrInvalidBigInt = errors.New("cbor: invalid bignum encoding")

	// ErrBadSharedRef is returned when a tag 29 index has no corresponding
	// definition at all.
	ErrBadSharedRef = errors.New("cbor: shared reference index out of range")

	// ErrUninitialisedSharedRef is returned when a tag 29 index refers to a
	// scalar slot that has not finished decoding yet.
	ErrUninitialisedSharedRef = errors.New("cbor: shared reference to uninitialised value")

	// ErrInvalidTagArgument is returned when a built-in tag handler
	// receives a child value of the wrong shape (e.g. tag 258 wrapping
	// something other than an array).
	ErrInvalidTagArgument = errors.New("cbor: invalid argument for tag")
)
