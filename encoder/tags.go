package encoder

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"net"
	"net/mail"

	"github.com/google/uuid"
	"github.com/grafana/regexp"
	"github.com/shopspring/decimal"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/errs"
	"github.com/binorbit/cbor/format"
)

// EncodeDecimal emits d as tag 4, an array of [exponent, coefficient].
func (e *Encoder) EncodeDecimal(d decimal.Decimal) error {
	arr := &cbortype.Array{Items: []any{int64(d.Exponent()), d.Coefficient()}}
	return e.EncodeTag(&cbortype.Tag{Number: format.TagDecimal, Content: arr})
}

// EncodeRational emits r as tag 30, an array of [numerator, denominator].
func (e *Encoder) EncodeRational(r *big.Rat) error {
	arr := &cbortype.Array{Items: []any{r.Num(), r.Denom()}}
	return e.EncodeTag(&cbortype.Tag{Number: format.TagRational, Content: arr})
}

// EncodeRegexp emits re's pattern text as tag 35.
func (e *Encoder) EncodeRegexp(re *regexp.Regexp) error {
	return e.EncodeTag(&cbortype.Tag{Number: format.TagRegexp, Content: re.String()})
}

// EncodeMIME serialises m (headers plus body) as RFC 2045 message text
// wrapped in tag 36.
func (e *Encoder) EncodeMIME(m *mail.Message) error {
	var buf bytes.Buffer
	for k, vs := range m.Header {
		for _, v := range vs {
			fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
		}
	}
	buf.WriteString("\r\n")
	if m.Body != nil {
		if _, err := io.Copy(&buf, m.Body); err != nil {
			return err
		}
	}
	return e.EncodeTag(&cbortype.Tag{Number: format.TagMIME, Content: buf.String()})
}

// EncodeUUID emits u's 16 raw bytes wrapped in tag 37.
func (e *Encoder) EncodeUUID(u uuid.UUID) error {
	b := make([]byte, len(u))
	copy(b, u[:])
	return e.EncodeTag(&cbortype.Tag{Number: format.TagUUID, Content: b})
}

// EncodeIPAddress emits ip's 4- or 16-byte form wrapped in tag 260.
func (e *Encoder) EncodeIPAddress(ip net.IP) error {
	b := ip.To4()
	if b == nil {
		b = ip.To16()
	}
	if b == nil {
		return fmt.Errorf("%w: invalid IP address %v", errs.ErrCannotSerialize, ip)
	}
	return e.EncodeTag(&cbortype.Tag{Number: format.TagIPAddress, Content: []byte(b)})
}

// EncodeIPNetwork emits n as tag 261, a single-entry map of
// {network-address-bytes: prefix-length}.
func (e *Encoder) EncodeIPNetwork(n *net.IPNet) error {
	ones, _ := n.Mask.Size()
	addr := n.IP.To4()
	if addr == nil {
		addr = n.IP.To16()
	}
	if addr == nil {
		return fmt.Errorf("%w: invalid IP network %v", errs.ErrCannotSerialize, n)
	}

	m := cbortype.NewMap()
	m.Append([]byte(addr), int64(ones))
	return e.EncodeTag(&cbortype.Tag{Number: format.TagIPNetwork, Content: m})
}

// EncodeTag emits t's tag number followed by its content (spec
// "encode_semantic(CBORTag)").
func (e *Encoder) EncodeTag(t *cbortype.Tag) error {
	return e.encodeShared(t, func() error {
		if err := e.EncodeLength(format.MajorTag, t.Number); err != nil {
			return err
		}
		return e.encodeDispatch(t.Content)
	})
}

// EncodeSimple emits v as a major-type-7 simple value: inline for 0..19,
// 1-byte form for 32..255. Values 20..31 are reserved for sentinels and the
// float-width markers, so they're rejected here.
func (e *Encoder) EncodeSimple(v cbortype.Simple) error {
	n := uint8(v)
	switch {
	case n <= 19:
		e.cur.MustWriteByte(byte(format.MajorSimple)<<5 | n)
		return nil
	case n >= 32:
		e.cur.MustWriteByte(byte(format.MajorSimple)<<5 | format.InfoOneByte)
		e.cur.MustWriteByte(n)
		return nil
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidSimpleValue, n)
	}
}

// EncodeUndefined emits the CBOR "undefined" sentinel (0xF7).
func (e *Encoder) EncodeUndefined() error {
	e.cur.MustWriteByte(0xF7)
	return nil
}

// EncodeNil emits the CBOR "null" sentinel (0xF6).
func (e *Encoder) EncodeNil() error {
	e.cur.MustWriteByte(0xF6)
	return nil
}

// EncodeBool emits CBOR false (0xF4) or true (0xF5).
func (e *Encoder) EncodeBool(b bool) error {
	if b {
		e.cur.MustWriteByte(0xF5)
	} else {
		e.cur.MustWriteByte(0xF4)
	}
	return nil
}
