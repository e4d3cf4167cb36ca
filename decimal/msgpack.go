package decimal

import (
	"bytes"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/bcd"
)

// Numbers travel as the MessagePack decimal extension used by Tarantool:
//
//	+--------+-------------------+------------+===============+
//	| MP_EXT | length (optional) | MP_DECIMAL | PackedDecimal |
//	+--------+-------------------+------------+===============+
//
// PackedDecimal is a MessagePack int scale followed by the digits packed two
// per byte and a trailing sign nibble. An odd number of nibbles gets a
// leading zero nibble. The value is digits × 10^-scale.
const (
	// ExtID is the MessagePack extension type of MP_DECIMAL.
	ExtID = 1

	// Integers are written with scale 0 while they need at most this many
	// trailing zeros, like Tarantool does.
	maxZeroPad = 38

	signPlus  = 0x0C
	signMinus = 0x0D
)

// MarshalMsgpack implements the msgpack Marshaler interface. It returns the
// extension payload.
func (n Number) MarshalMsgpack() (data []byte, err error) {
	defer Error.WrapP(&err)

	var digits []byte
	if !n.IsZero() {
		digits = bcd.Unpack(n.Digits)

		end := len(digits)
		for digits[end-1] == 0 {
			end--
		}
		digits = digits[:end]
	}

	scale := int64(len(digits)) - int64(n.Exponent)
	if scale < 0 && -scale <= maxZeroPad {
		digits = append(digits, make([]byte, -scale)...)
		scale = 0
	}

	buf := &bytes.Buffer{}

	err = msgpack.NewEncoder(buf).EncodeInt(scale)
	if err != nil {
		return nil, err
	}

	sign := byte(signPlus)
	if n.Negative && !n.IsZero() {
		sign = signMinus
	}

	nibbles := append(digits, sign)
	if len(nibbles)%2 == 1 {
		nibbles = append([]byte{0}, nibbles...)
	}

	for i := 0; i < len(nibbles); i += 2 {
		buf.WriteByte(nibbles[i]<<4 | nibbles[i+1])
	}

	return buf.Bytes(), nil
}

// UnmarshalMsgpack implements the msgpack Unmarshaler interface. A number
// with a buffer keeps its precision and fails when the digits do not fit. A
// number without one gets the default precision or more if the digits need
// it.
func (n *Number) UnmarshalMsgpack(data []byte) (err error) {
	defer Error.WrapP(&err)

	r := bytes.NewReader(data)

	scale, err := msgpack.NewDecoder(r).DecodeInt64()
	if err != nil {
		return err
	}

	if scale < -math.MaxUint32 || scale > math.MaxUint32 {
		return bcd.ContractError.New("scale out of range: %d", scale)
	}

	packed := data[len(data)-r.Len():]
	if len(packed) == 0 {
		return Error.New("missing digits")
	}

	digits := bcd.Unpack(packed)

	negative := false
	switch sign := digits[len(digits)-1]; sign {
	case 0x0A, signPlus, 0x0E, 0x0F:
	case 0x0B, signMinus:
		negative = true
	default:
		return Error.New("invalid sign nibble: %#x", sign)
	}
	digits = digits[:len(digits)-1]

	for i, d := range digits {
		if d > 9 {
			return bcd.ContractError.New("invalid digit nibble %d: %#x", i, d)
		}
	}

	lz := 0
	for lz < len(digits) && digits[lz] == 0 {
		lz++
	}
	digits = digits[lz:]

	sig := len(digits)
	for sig > 0 && digits[sig-1] == 0 {
		sig--
	}

	size := len(n.Digits)
	if size == 0 {
		size = DefaultContext.Size()
		if need := (sig + 1) / 2; need > size {
			size = need
		}
	}

	v := Number{
		Digits: make([]byte, size),
	}

	if len(digits) == 0 {
		*n = v

		return nil
	}

	e := int64(len(digits)) - scale
	if e < math.MinInt32 || e > math.MaxInt32 {
		return bcd.ContractError.New("exponent out of range: %d", e)
	}

	if bcd.Pack(v.Digits, digits) {
		return Error.New("%d digits do not fit precision %d", len(digits), v.Precision())
	}

	v.Exponent = int32(e)
	v.Negative = negative

	*n = v

	return nil
}
