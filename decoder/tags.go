package decoder

import (
	"fmt"
	"math/big"
	"net"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grafana/regexp"
	"github.com/shopspring/decimal"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/errs"
	"github.com/binorbit/cbor/format"
	"github.com/binorbit/cbor/internal/wire"
)

// decodeTag reads one tag-wrapped item and applies its built-in handler
// (spec §4.5's tag handler table), falling back to tag_hook or a bare
// *cbortype.Tag when none matches.
func (d *Decoder) decodeTag(hdr wire.Header) (any, error) {
	switch hdr.Arg {
	case format.TagShareableDef:
		return d.decodeShareableDef()
	case format.TagSharedRef:
		return d.decodeSharedRef()
	case format.TagSelfDescribe:
		return d.decodeValue()
	}

	child, err := d.decodeValue()
	if err != nil {
		return nil, err
	}

	switch hdr.Arg {
	case format.TagDatetimeText:
		return decodeDatetimeText(child)
	case format.TagDatetimeEpoch:
		return decodeDatetimeEpoch(child)
	case format.TagBigPos:
		return decodeBigNum(child, false)
	case format.TagBigNeg:
		return decodeBigNum(child, true)
	case format.TagDecimal:
		return decodeDecimal(child)
	case format.TagBigFloat:
		return decodeBigFloat(child)
	case format.TagRational:
		return decodeRational(child)
	case format.TagRegexp:
		return decodeRegexpTag(child)
	case format.TagMIME:
		return decodeMIMETag(child)
	case format.TagUUID:
		return decodeUUIDTag(child)
	case format.TagSet:
		return decodeSetTag(child)
	case format.TagIPAddress:
		return decodeIPAddressTag(child)
	case format.TagIPNetwork:
		return decodeIPNetworkTag(child)
	default:
		t := &cbortype.Tag{Number: hdr.Arg, Content: child}
		if d.cfg.tagHook != nil {
			return d.cfg.tagHook(d, t)
		}
		return t, nil
	}
}

// decodeShareableDef implements the "place the empty container into the
// slot first" half of spec §4.5: array and map content is reserved and
// registered before its elements are read, so a child may refer back to
// the container it belongs to. Everything else (including other tags) is
// fully decoded first and only then registered, so a premature reference
// into it is reported as errs.ErrUninitialisedSharedRef.
func (d *Decoder) decodeShareableDef() (any, error) {
	hdr, err := wire.ReadHeader(d.read)
	if err != nil {
		return nil, err
	}

	switch hdr.Major {
	case format.MajorArray:
		a := &cbortype.Array{}
		idx := d.shared.Reserve()
		d.shared.Fill(idx, a)
		if err := d.fillArray(a, hdr); err != nil {
			return nil, err
		}
		return a, nil
	case format.MajorMap:
		m := cbortype.NewMap()
		idx := d.shared.Reserve()
		d.shared.Fill(idx, m)
		if err := d.fillMap(m, hdr); err != nil {
			return nil, err
		}
		if d.cfg.objectHook != nil {
			return d.cfg.objectHook(d, m)
		}
		return m, nil
	default:
		idx := d.shared.Reserve()
		v, err := d.decodeFromHeader(hdr)
		if err != nil {
			return nil, err
		}
		d.shared.Fill(idx, v)
		return v, nil
	}
}

func (d *Decoder) decodeSharedRef() (any, error) {
	v, err := d.decodeValue()
	if err != nil {
		return nil, err
	}

	idx, ok := asSharedIndex(v)
	if !ok {
		return nil, fmt.Errorf("%w: tag 29 argument must be a non-negative integer", errs.ErrInvalidTagArgument)
	}
	if idx < 0 || idx >= d.shared.Len() {
		return nil, fmt.Errorf("%w: %d", errs.ErrBadSharedRef, idx)
	}

	val, found := d.shared.Get(idx)
	if !found {
		return nil, fmt.Errorf("%w: %d", errs.ErrUninitialisedSharedRef, idx)
	}
	return val, nil
}

func asSharedIndex(v any) (int, bool) {
	switch x := v.(type) {
	case uint64:
		return int(x), true
	case int64:
		if x < 0 {
			return 0, false
		}
		return int(x), true
	default:
		return 0, false
	}
}

func decodeDatetimeText(child any) (any, error) {
	s, ok := child.(string)
	if !ok {
		return nil, fmt.Errorf("%w: tag 0 content must be text", errs.ErrInvalidTagArgument)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidDatetimeSyntax, s)
	}
	return t, nil
}

func decodeDatetimeEpoch(child any) (any, error) {
	switch x := child.(type) {
	case uint64:
		return time.Unix(int64(x), 0).UTC(), nil
	case int64:
		return time.Unix(x, 0).UTC(), nil
	case float64:
		sec := int64(x)
		nsec := int64((x - float64(sec)) * 1e9)
		return time.Unix(sec, nsec).UTC(), nil
	default:
		return nil, fmt.Errorf("%w: tag 1 content must be numeric", errs.ErrInvalidTagArgument)
	}
}

func decodeBigNum(child any, negative bool) (any, error) {
	b, ok := child.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w", errs.ErrInvalidBigInt)
	}
	n := new(big.Int).SetBytes(b)
	if negative {
		n.Neg(n)
		n.Sub(n, big.NewInt(1))
	}
	return n, nil
}

func decodeDecimal(child any) (any, error) {
	a, ok := child.(*cbortype.Array)
	if !ok || len(a.Items) != 2 {
		return nil, fmt.Errorf("%w: tag 4 content must be [exponent, mantissa]", errs.ErrInvalidTagArgument)
	}
	exp, ok := toInt64(a.Items[0])
	if !ok {
		return nil, fmt.Errorf("%w: tag 4 exponent must be an integer", errs.ErrInvalidTagArgument)
	}
	mant, ok := toBigInt(a.Items[1])
	if !ok {
		return nil, fmt.Errorf("%w: tag 4 mantissa must be an integer", errs.ErrInvalidTagArgument)
	}
	return decimal.NewFromBigInt(mant, int32(exp)), nil
}

func decodeBigFloat(child any) (any, error) {
	a, ok := child.(*cbortype.Array)
	if !ok || len(a.Items) != 2 {
		return nil, fmt.Errorf("%w: tag 5 content must be [exponent, mantissa]", errs.ErrInvalidTagArgument)
	}
	exp, ok := toInt64(a.Items[0])
	if !ok {
		return nil, fmt.Errorf("%w: tag 5 exponent must be an integer", errs.ErrInvalidTagArgument)
	}
	mant, ok := toBigInt(a.Items[1])
	if !ok {
		return nil, fmt.Errorf("%w: tag 5 mantissa must be an integer", errs.ErrInvalidTagArgument)
	}
	// bigfloat is mantissa * 2^exponent; represented as a decimal.Decimal
	// via an exact big.Float conversion, matching spec §4.5 "big float ->
	// Decimal".
	f := new(big.Float).SetInt(mant)
	f.Mul(f, twoPow(exp))
	d, _ := decimal.NewFromString(f.Text('f', -1))
	return d, nil
}

func twoPow(exp int64) *big.Float {
	r := big.NewFloat(1)
	two := big.NewFloat(2)
	if exp >= 0 {
		for i := int64(0); i < exp; i++ {
			r.Mul(r, two)
		}
		return r
	}
	for i := int64(0); i < -exp; i++ {
		r.Quo(r, two)
	}
	return r
}

func decodeRational(child any) (any, error) {
	a, ok := child.(*cbortype.Array)
	if !ok || len(a.Items) != 2 {
		return nil, fmt.Errorf("%w: tag 30 content must be [numerator, denominator]", errs.ErrInvalidTagArgument)
	}
	num, ok := toBigInt(a.Items[0])
	if !ok {
		return nil, fmt.Errorf("%w: tag 30 numerator must be an integer", errs.ErrInvalidTagArgument)
	}
	den, ok := toBigInt(a.Items[1])
	if !ok {
		return nil, fmt.Errorf("%w: tag 30 denominator must be an integer", errs.ErrInvalidTagArgument)
	}
	return new(big.Rat).SetFrac(num, den), nil
}

func decodeRegexpTag(child any) (any, error) {
	s, ok := child.(string)
	if !ok {
		return nil, fmt.Errorf("%w: tag 35 content must be text", errs.ErrInvalidTagArgument)
	}
	return regexp.Compile(s)
}

func decodeMIMETag(child any) (any, error) {
	s, ok := child.(string)
	if !ok {
		return nil, fmt.Errorf("%w: tag 36 content must be text", errs.ErrInvalidTagArgument)
	}
	return mail.ReadMessage(strings.NewReader(s))
}

func decodeUUIDTag(child any) (any, error) {
	b, ok := child.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: tag 37 content must be 16 bytes", errs.ErrInvalidTagArgument)
	}
	return uuid.FromBytes(b)
}

func decodeSetTag(child any) (any, error) {
	a, ok := child.(*cbortype.Array)
	if !ok {
		return nil, fmt.Errorf("%w: tag 258 content must be an array", errs.ErrInvalidTagArgument)
	}
	return cbortype.NewSet(a.Items...), nil
}

func decodeIPAddressTag(child any) (any, error) {
	b, ok := child.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: tag 260 content must be a byte string", errs.ErrInvalidTagArgument)
	}
	switch len(b) {
	case 4, 16:
		return net.IP(b), nil
	default:
		// 6-byte MAC-address form and any other length are left opaque
		// (spec §9 "Tag 260 with a 6-byte payload... callers should not
		// assume a MAC type on decode").
		return &cbortype.Tag{Number: format.TagIPAddress, Content: b}, nil
	}
}

func decodeIPNetworkTag(child any) (any, error) {
	m, ok := child.(*cbortype.Map)
	if !ok || m.Len() != 1 {
		return nil, fmt.Errorf("%w: tag 261 content must be a single-entry map", errs.ErrInvalidTagArgument)
	}
	entry := m.Entries()[0]
	addr, ok := entry.Key.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: tag 261 key must be address bytes", errs.ErrInvalidTagArgument)
	}
	ones, ok := toInt64(entry.Value)
	if !ok {
		return nil, fmt.Errorf("%w: tag 261 value must be a prefix length", errs.ErrInvalidTagArgument)
	}

	bits := len(addr) * 8
	return &net.IPNet{IP: net.IP(addr), Mask: net.CIDRMask(int(ones), bits)}, nil
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case uint64:
		return int64(x), true
	default:
		return 0, false
	}
}

func toBigInt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		return x, true
	case int64:
		return big.NewInt(x), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	default:
		return nil, false
	}
}
