package cbortype

// NaiveTime is a timezone-less civil timestamp: the CBOR data model allows
// datetimes that carry no zone of their own (Go's time.Time always does),
// so a distinct type is needed to represent one on the way into the
// encoder. Encoding a NaiveTime requires a default timezone to be
// configured (spec §4.4 "Naive datetimes... if no default timezone
// configured, fail").
type NaiveTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Nanosecond           int
}

// Date is a calendar date with no time-of-day component, encoded as
// midnight UTC of that date (spec §4.4 "encode_date... midnight UTC of
// that date through encode_datetime").
type Date struct {
	Year, Month, Day int
}
