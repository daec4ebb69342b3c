package encoder

import (
	"fmt"
	"time"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/errs"
	"github.com/binorbit/cbor/format"
)

// EncodeDateTime emits t as tag 1 (numeric epoch, shortest exact form) if
// WithDatetimeAsTimestamp is set, else as tag 0 (RFC 3339 text).
func (e *Encoder) EncodeDateTime(t time.Time) error {
	if e.cfg.datetimeAsTimestamp {
		return e.EncodeTag(&cbortype.Tag{Number: format.TagDatetimeEpoch, Content: epochValue(t)})
	}
	return e.EncodeTag(&cbortype.Tag{Number: format.TagDatetimeText, Content: t.UTC().Format(time.RFC3339Nano)})
}

// EncodeNaiveDateTime attaches the encoder's configured default timezone
// (WithTimezone) to t and encodes the result, failing with
// errs.ErrNaiveDatetimeNoTZ if none is configured.
func (e *Encoder) EncodeNaiveDateTime(t cbortype.NaiveTime) error {
	if e.cfg.timezone == nil {
		return fmt.Errorf("%w", errs.ErrNaiveDatetimeNoTZ)
	}
	full := time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, e.cfg.timezone)
	return e.EncodeDateTime(full)
}

// EncodeDate emits midnight UTC of d through EncodeDateTime.
func (e *Encoder) EncodeDate(d cbortype.Date) error {
	return e.EncodeDateTime(time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC))
}

func epochValue(t time.Time) any {
	if t.Nanosecond() == 0 {
		return t.Unix()
	}
	return float64(t.UnixNano()) / 1e9
}
