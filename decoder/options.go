package decoder

import (
	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/internal/options"
)

// StringErrorPolicy controls how a text string (major type 3) chunk that
// fails UTF-8 validation is handled.
type StringErrorPolicy int

const (
	// StringErrorsStrict fails the decode with errs.ErrInvalidUTF8.
	StringErrorsStrict StringErrorPolicy = iota
	// StringErrorsReplace substitutes the Unicode replacement character
	// for invalid sequences.
	StringErrorsReplace
	// StringErrorsIgnore drops invalid bytes silently.
	StringErrorsIgnore
)

type config struct {
	tagHook    func(*Decoder, *cbortype.Tag) (any, error)
	objectHook func(*Decoder, *cbortype.Map) (any, error)
	stringErrs StringErrorPolicy
}

func newConfig() *config {
	return &config{}
}

// Option represents a functional option for configuring a Decoder.
type Option = options.Option[*config]

// WithTagHook installs fn to handle tag numbers with no built-in handler.
// Without it, an unrecognised tag decodes to *cbortype.Tag{Number, Content}.
func WithTagHook(fn func(*Decoder, *cbortype.Tag) (any, error)) Option {
	return options.NoError(func(c *config) {
		c.tagHook = fn
	})
}

// WithObjectHook installs fn to post-process every decoded map; its return
// value replaces the map in the result tree.
func WithObjectHook(fn func(*Decoder, *cbortype.Map) (any, error)) Option {
	return options.NoError(func(c *config) {
		c.objectHook = fn
	})
}

// WithStringErrors sets the UTF-8 error policy for major-type-3 text
// strings. The default is StringErrorsStrict.
func WithStringErrors(policy StringErrorPolicy) Option {
	return options.NoError(func(c *config) {
		c.stringErrs = policy
	})
}
