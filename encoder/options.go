package encoder

import (
	"time"

	"github.com/binorbit/cbor/internal/options"
)

// CanonicalMode selects how aggressively the encoder normalises its output
// (spec §6 "canonical: {off, on, full}").
type CanonicalMode int

const (
	// CanonicalOff keeps built-in fast-path encoders, emits maps/sets in
	// iteration order, and always writes floats as 8 bytes.
	CanonicalOff CanonicalMode = iota
	// CanonicalOn sorts map/set elements by encoded-key ordering and
	// minimises float width, per RFC 8949 §4.10.
	CanonicalOn
	// CanonicalFull behaves like CanonicalOn but also routes built-in
	// types through the user registry first, so a caller can override
	// even the fast-path encoders.
	CanonicalFull
)

type config struct {
	canonical           CanonicalMode
	datetimeAsTimestamp bool
	timezone            *time.Location
	valueSharing        bool
	defaultFn           func(*Encoder, any) error
}

func newConfig() *config {
	return &config{}
}

// Option represents a functional option for configuring an Encoder.
type Option = options.Option[*config]

// WithCanonical sets the canonical encoding mode. The default is
// CanonicalOff.
func WithCanonical(mode CanonicalMode) Option {
	return options.NoError(func(c *config) {
		c.canonical = mode
	})
}

// WithDatetimeAsTimestamp selects tag 1 (numeric epoch) for datetimes
// instead of the default tag 0 (RFC 3339 text).
func WithDatetimeAsTimestamp() Option {
	return options.NoError(func(c *config) {
		c.datetimeAsTimestamp = true
	})
}

// WithTimezone sets the default timezone attached to a NaiveTime value that
// carries no zone of its own. Without this option, encoding a NaiveTime
// fails with errs.ErrNaiveDatetimeNoTZ.
func WithTimezone(loc *time.Location) Option {
	return options.NoError(func(c *config) {
		c.timezone = loc
	})
}

// WithValueSharing enables tag-28/29 shared-value encoding, which is also
// required to encode cyclic graphs. Disabled by default, in which case a
// cyclic graph fails with errs.ErrCyclicNoSharing.
func WithValueSharing(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.valueSharing = enabled
	})
}

// WithDefault installs a fallback routine invoked with (encoder, value)
// when no built-in encoder or registry entry matches value's type. The
// routine must finish by encoding something through the passed Encoder.
func WithDefault(fn func(e *Encoder, v any) error) Option {
	return options.NoError(func(c *config) {
		c.defaultFn = fn
	})
}
