package decimal

import (
	"math"
	"math/bits"

	"github.com/calebcase/bcd"
)

// Add returns n + o. Digits that do not fit the precision are dropped.
func (n Number) Add(o Number) (r Number, err error) {
	defer Error.WrapP(&err)

	a, b := align(n, o)

	var res bcd.DigitsExponent

	if a.Negative == b.Negative {
		_, err = bcd.AddAbs(a.Digits, a.Exponent, b.Digits, b.Exponent, &res)
		if err != nil {
			return Number{}, err
		}

		return result(res, a.Negative), nil
	}

	cmp, err := bcd.CompareAbs(a.Digits, a.Exponent, b.Digits, b.Exponent)
	if err != nil {
		return Number{}, err
	}

	if cmp < 0 {
		a, b = b, a
	}

	_, err = bcd.SubtractAbs(a.Digits, a.Exponent, b.Digits, b.Exponent, &res)
	if err != nil {
		return Number{}, err
	}

	return result(res, a.Negative), nil
}

// Sub returns n - o.
func (n Number) Sub(o Number) (Number, error) {
	return n.Add(o.Neg())
}

// Mul returns n × o keeping the leading digits of the product.
func (n Number) Mul(o Number) (r Number, err error) {
	defer Error.WrapP(&err)

	a, b := align(n, o)

	if a.IsZero() || b.IsZero() {
		return a.Context().Zero(), nil
	}

	ua, ub := bcd.Unpack(a.Digits), bcd.Unpack(b.Digits)

	prod := make([]uint64, len(ua)+len(ub))
	for i := len(ua) - 1; i >= 0; i-- {
		if ua[i] == 0 {
			continue
		}

		for j := len(ub) - 1; j >= 0; j-- {
			prod[i+j+1] += uint64(ua[i]) * uint64(ub[j])
		}
	}

	for k := len(prod) - 1; k > 0; k-- {
		prod[k-1] += prod[k] / 10
		prod[k] %= 10
	}

	digits := make([]byte, len(prod))
	for k, p := range prod {
		digits[k] = byte(p)
	}

	e := int64(a.Exponent) + int64(b.Exponent)

	// Both mantissas are at least 0.1 so at most one leading zero.
	if digits[0] == 0 {
		digits = digits[1:]
		e--
	}

	return pack(a.Context(), digits, e, a.Negative != b.Negative)
}

// Div returns n / o truncated to the precision.
func (n Number) Div(o Number) (r Number, err error) {
	defer Error.WrapP(&err)

	a, b := align(n, o)

	if b.IsZero() {
		return Number{}, Error.New("division by zero")
	}

	if a.IsZero() {
		return a.Context().Zero(), nil
	}

	// Long division on the unpacked digits with one extra position so the
	// remainder always fits.
	rem := append([]byte{0}, bcd.Unpack(a.Digits)...)
	div := append([]byte{0}, bcd.Unpack(b.Digits)...)

	q := make([]byte, len(rem))
	for k := range q {
		for compareDigits(rem, div) >= 0 {
			subtractDigits(rem, div)
			q[k]++
		}

		copy(rem, rem[1:])
		rem[len(rem)-1] = 0
	}

	// q holds q0.q1 q2 ... of a/b which lies in (0.1, 10).
	e := int64(a.Exponent) - int64(b.Exponent) + 1
	if q[0] == 0 {
		q = q[1:]
		e--
	}

	return pack(a.Context(), q, e, a.Negative != b.Negative)
}

// DivInt64 returns n / d truncated to the precision. It is much cheaper than
// Div for small divisors.
func (n Number) DivInt64(d int64) (r Number, err error) {
	defer Error.WrapP(&err)

	if d == 0 {
		return Number{}, Error.New("division by zero")
	}

	a := n.clone()
	if a.IsZero() {
		return a, nil
	}

	negative := a.Negative
	u := uint64(d)
	if d < 0 {
		u = -u
		negative = !negative
	}

	ua := bcd.Unpack(a.Digits)

	// The quotient of a mantissa by a 20 digit divisor has at most 20
	// leading zeros.
	q := make([]byte, len(ua)+20)

	var rem uint64
	for k := range q {
		var digit uint64
		if k < len(ua) {
			digit = uint64(ua[k])
		}

		hi, lo := bits.Mul64(rem, 10)
		lo, carry := bits.Add64(lo, digit, 0)
		hi += carry

		var v uint64
		v, rem = bits.Div64(hi, lo, u)
		q[k] = byte(v)
	}

	lz := 0
	for lz < len(q) && q[lz] == 0 {
		lz++
	}

	return pack(a.Context(), q[lz:], int64(a.Exponent)-int64(lz), negative)
}

// MulInt64 returns n × d keeping the leading digits of the product. It is
// much cheaper than Mul for small factors.
func (n Number) MulInt64(d int64) (r Number, err error) {
	defer Error.WrapP(&err)

	a := n.clone()
	if a.IsZero() || d == 0 {
		return a.Context().Zero(), nil
	}

	negative := a.Negative
	u := uint64(d)
	if d < 0 {
		u = -u
		negative = !negative
	}

	ua := bcd.Unpack(a.Digits)

	// A 20 digit factor adds at most 20 leading digits.
	p := make([]byte, len(ua)+20)

	var carry uint64
	for k := len(p) - 1; k >= 0; k-- {
		var digit uint64
		if i := k - 20; i >= 0 {
			digit = uint64(ua[i])
		}

		hi, lo := bits.Mul64(digit, u)
		lo, c := bits.Add64(lo, carry, 0)
		hi += c

		var rem uint64
		carry, rem = bits.Div64(hi, lo, 10)
		p[k] = byte(rem)
	}

	lz := 0
	for lz < len(p) && p[lz] == 0 {
		lz++
	}

	return pack(a.Context(), p[lz:], int64(a.Exponent)+20-int64(lz), negative)
}

// pack stores leading digits into a fresh number of the context precision.
func pack(c Context, digits []byte, exponent int64, negative bool) (Number, error) {
	r := c.Zero()

	bcd.Pack(r.Digits, digits)
	if r.IsZero() {
		return r, nil
	}

	if exponent < math.MinInt32 || exponent > math.MaxInt32 {
		return Number{}, bcd.ContractError.New("exponent out of range: %d", exponent)
	}

	r.Exponent = int32(exponent)
	r.Negative = negative

	return r, nil
}

func result(res bcd.DigitsExponent, negative bool) Number {
	return Number{
		Digits:   res.Digits,
		Exponent: res.Exponent,
		Negative: negative && !bcd.IsZero(res.Digits),
	}
}

func compareDigits(a, b []byte) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// subtractDigits stores a - b into a. It requires a >= b.
func subtractDigits(a, b []byte) {
	var borrow byte
	for i := len(a) - 1; i >= 0; i-- {
		d := b[i] + borrow
		if a[i] < d {
			a[i] = a[i] + 10 - d
			borrow = 1
		} else {
			a[i] -= d
			borrow = 0
		}
	}
}
