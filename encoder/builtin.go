package encoder

import (
	"math/big"
	"net"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/grafana/regexp"
	"github.com/shopspring/decimal"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/format"
)

// encodeBuiltin dispatches v to its built-in encoder by concrete Go type.
// This is the fast path spec §4.3 describes as bypassing the registry;
// handled reports whether v matched one of these types at all.
func (e *Encoder) encodeBuiltin(v any) (handled bool, err error) {
	switch x := v.(type) {
	case nil:
		return true, e.EncodeNil()
	case bool:
		return true, e.EncodeBool(x)
	case string:
		return true, e.encodeTextString(x)
	case []byte:
		return true, e.encodeByteString(x)
	case int:
		return true, e.EncodeInt(int64(x))
	case int8:
		return true, e.EncodeInt(int64(x))
	case int16:
		return true, e.EncodeInt(int64(x))
	case int32:
		return true, e.EncodeInt(int64(x))
	case int64:
		return true, e.EncodeInt(x)
	case uint:
		return true, e.EncodeUint(uint64(x))
	case uint8:
		return true, e.EncodeUint(uint64(x))
	case uint16:
		return true, e.EncodeUint(uint64(x))
	case uint32:
		return true, e.EncodeUint(uint64(x))
	case uint64:
		return true, e.EncodeUint(x)
	case float32:
		return true, e.EncodeFloat(float64(x))
	case float64:
		return true, e.EncodeFloat(x)
	case *big.Int:
		return true, e.EncodeBigInt(x)
	case *big.Rat:
		return true, e.EncodeRational(x)
	case decimal.Decimal:
		return true, e.EncodeDecimal(x)
	case time.Time:
		return true, e.EncodeDateTime(x)
	case cbortype.NaiveTime:
		return true, e.EncodeNaiveDateTime(x)
	case cbortype.Date:
		return true, e.EncodeDate(x)
	case *regexp.Regexp:
		return true, e.EncodeRegexp(x)
	case *mail.Message:
		return true, e.EncodeMIME(x)
	case uuid.UUID:
		return true, e.EncodeUUID(x)
	case net.IP:
		return true, e.EncodeIPAddress(x)
	case *net.IPNet:
		return true, e.EncodeIPNetwork(x)
	case *cbortype.Array:
		return true, e.EncodeArray(x)
	case *cbortype.Map:
		return true, e.EncodeMap(x)
	case *cbortype.Set:
		return true, e.EncodeSet(x)
	case *cbortype.Tag:
		return true, e.EncodeTag(x)
	case cbortype.Simple:
		return true, e.EncodeSimple(x)
	case cbortype.Undefined:
		return true, e.EncodeUndefined()
	default:
		return false, nil
	}
}

func (e *Encoder) encodeTextString(s string) error {
	if err := e.EncodeLength(format.MajorText, uint64(len(s))); err != nil {
		return err
	}
	e.cur.B = append(e.cur.B, s...)
	return nil
}

func (e *Encoder) encodeByteString(b []byte) error {
	if err := e.EncodeLength(format.MajorBytes, uint64(len(b))); err != nil {
		return err
	}
	e.cur.MustWrite(b)
	return nil
}
