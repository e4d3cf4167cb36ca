package decimal

import (
	"math"
	"strconv"
	"strings"

	"github.com/calebcase/bcd"
)

// Parse reads a number of the form [+-]digits[.digits][(e|E)[+-]digits].
// Digits beyond the precision are dropped.
func (c Context) Parse(s string) (n Number, err error) {
	defer Error.WrapP(&err)

	src := s

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	var exp10 int64
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp10, err = strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil {
			return Number{}, Error.New("invalid exponent in %q", src)
		}

		s = s[:i]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return Number{}, Error.New("no digits in %q", src)
	}

	digits := make([]byte, 0, len(whole)+len(frac))
	for _, part := range []string{whole, frac} {
		for i := 0; i < len(part); i++ {
			ch := part[i]
			if ch < '0' || ch > '9' {
				return Number{}, Error.New("invalid character %q in %q", ch, src)
			}

			digits = append(digits, ch-'0')
		}
	}

	lz := 0
	for lz < len(digits) && digits[lz] == 0 {
		lz++
	}

	n = c.Zero()
	if lz == len(digits) {
		return n, nil
	}

	e := int64(len(whole)) - int64(lz) + exp10
	if e < math.MinInt32 || e > math.MaxInt32 {
		return Number{}, bcd.ContractError.New("exponent out of range in %q", src)
	}

	bcd.Pack(n.Digits, digits[lz:])
	n.Exponent = int32(e)
	n.Negative = negative

	return n, nil
}

// String formats n. Numbers whose point falls inside the digit buffer are
// written plainly, others as d.ddd followed by E and the exponent. Trailing
// zeros after the point are not written.
func (n Number) String() string {
	if n.IsZero() {
		return "0"
	}

	sb := &strings.Builder{}
	if n.Negative {
		sb.WriteByte('-')
	}

	digits := bcd.Unpack(n.Digits)

	end := len(digits)
	for end > 0 && digits[end-1] == 0 {
		end--
	}

	sig := make([]byte, end)
	for i, d := range digits[:end] {
		sig[i] = '0' + d
	}

	e := int(n.Exponent)

	switch {
	case e < 0 || e > len(digits):
		sb.WriteByte(sig[0])
		if len(sig) > 1 {
			sb.WriteByte('.')
			sb.Write(sig[1:])
		}

		sb.WriteByte('E')
		sb.WriteString(strconv.FormatInt(int64(n.Exponent)-1, 10))
	case e == 0:
		sb.WriteString("0.")
		sb.Write(sig)
	case len(sig) <= e:
		sb.Write(sig)
		sb.WriteString(strings.Repeat("0", e-len(sig)))
	default:
		sb.Write(sig[:e])
		sb.WriteByte('.')
		sb.Write(sig[e:])
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The precision of n is
// kept when it has a buffer.
func (n *Number) UnmarshalText(text []byte) error {
	p, err := n.Context().Parse(string(text))
	if err != nil {
		return err
	}

	*n = p

	return nil
}
