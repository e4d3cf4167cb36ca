package decimal

import (
	"math"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/bcd"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// Context fixes the number of significant digits of the numbers it creates.
type Context struct {
	// Precision is the number of significant digits. Buffers hold two
	// digits per byte, so an odd precision gains one digit.
	Precision int
}

// DefaultContext is used for numbers that do not carry a buffer yet.
var DefaultContext = Context{
	Precision: 20,
}

// Size returns the digit buffer length in bytes.
func (c Context) Size() int {
	if c.Precision < 1 {
		return 1
	}

	return (c.Precision + 1) / 2
}

// Zero returns zero.
func (c Context) Zero() Number {
	return Number{
		Digits: make([]byte, c.Size()),
	}
}

// One returns one.
func (c Context) One() Number {
	n := c.Zero()
	n.Digits[0] = 0x10
	n.Exponent = 1

	return n
}

// FromInt64 returns v. Digits beyond the precision are dropped.
func (c Context) FromInt64(v int64) Number {
	n := c.Zero()

	// The unsigned conversion keeps math.MinInt64 intact.
	u := uint64(v)
	if v < 0 {
		u = -u
		n.Negative = true
	}

	if u == 0 {
		n.Negative = false

		return n
	}

	s := strconv.FormatUint(u, 10)

	digits := make([]byte, len(s))
	for i := range s {
		digits[i] = s[i] - '0'
	}

	bcd.Pack(n.Digits, digits)
	n.Exponent = int32(len(s))

	return n
}

// FromDigits returns the nonnegative number 0.d1 d2 ... × 10^exponent.
// Leading zero digits are removed; digits beyond the precision are dropped.
func (c Context) FromDigits(exponent int32, digits ...byte) (n Number, err error) {
	defer Error.WrapP(&err)

	for i, d := range digits {
		if d > 9 {
			return Number{}, Error.New("digit %d out of range: %d", i, d)
		}
	}

	n = c.Zero()

	lz := 0
	for lz < len(digits) && digits[lz] == 0 {
		lz++
	}

	if lz == len(digits) {
		return n, nil
	}

	e := int64(exponent) - int64(lz)
	if e < math.MinInt32 {
		return Number{}, bcd.ContractError.New("exponent underflow: %d", e)
	}

	bcd.Pack(n.Digits, digits[lz:])
	n.Exponent = int32(e)

	return n, nil
}

// Frac returns num/den truncated to the precision.
func (c Context) Frac(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, Error.New("division by zero")
	}

	q, err := c.FromInt64(num).DivInt64(den)
	if err != nil {
		return Number{}, err
	}

	return q, nil
}

// Number is a signed floating decimal: 0.d1 d2 ... dn × 10^Exponent where
// the digits are packed two per byte, most significant first. Numbers are
// kept normalized: the first digit of a nonzero number is not zero, zero
// has exponent 0 and is never negative.
//
// Operations never modify their operands. The zero value is zero with the
// buffer size of DefaultContext, or of the other operand.
type Number struct {
	Digits   []byte
	Exponent int32
	Negative bool
}

// Context returns the context with this number's precision.
func (n Number) Context() Context {
	if n.Digits == nil {
		return DefaultContext
	}

	return Context{
		Precision: n.Precision(),
	}
}

// Precision returns the number of digits the buffer holds.
func (n Number) Precision() int {
	return 2 * len(n.Digits)
}

// DigitAt returns the i-th digit, 0 being the most significant. Positions
// outside the buffer are zero.
func (n Number) DigitAt(i int) byte {
	if i < 0 || i >= n.Precision() {
		return 0
	}

	return bcd.DigitAt(n.Digits, i)
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return bcd.IsZero(n.Digits)
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	switch {
	case n.IsZero():
		return 0
	case n.Negative:
		return -1
	}

	return 1
}

// Neg returns -n.
func (n Number) Neg() Number {
	r := n.clone()
	r.Negative = !n.Negative && !n.IsZero()

	return r
}

// Abs returns |n|.
func (n Number) Abs() Number {
	r := n.clone()
	r.Negative = false

	return r
}

// Exp10 returns n × 10^e.
func (n Number) Exp10(e int32) (Number, error) {
	r := n.clone()
	if r.IsZero() {
		return r, nil
	}

	x := int64(n.Exponent) + int64(e)
	if x < math.MinInt32 || x > math.MaxInt32 {
		return Number{}, Error.Wrap(bcd.ContractError.New("exponent out of range: %d", x))
	}

	r.Exponent = int32(x)

	return r, nil
}

// Cmp compares n and o returning -1, 0 or +1.
func (n Number) Cmp(o Number) (cmp int, err error) {
	defer Error.WrapP(&err)

	a, b := align(n, o)

	switch sa, sb := a.Sign(), b.Sign(); {
	case sa < sb:
		return -1, nil
	case sa > sb:
		return 1, nil
	case sa == 0:
		return 0, nil
	}

	cmp, err = bcd.CompareAbs(a.Digits, a.Exponent, b.Digits, b.Exponent)
	if err != nil {
		return 0, err
	}

	switch {
	case cmp > 0:
		cmp = 1
	case cmp < 0:
		cmp = -1
	}

	if a.Negative {
		cmp = -cmp
	}

	return cmp, nil
}

// Equal reports whether n and o have the same value.
func (n Number) Equal(o Number) bool {
	cmp, err := n.Cmp(o)

	return err == nil && cmp == 0
}

func (n Number) clone() Number {
	if n.Digits == nil {
		return DefaultContext.Zero()
	}

	r := n
	r.Digits = append([]byte(nil), n.Digits...)

	return r
}

// resize returns n with a buffer of size bytes. Growing is exact; shrinking
// drops the trailing digits.
func (n Number) resize(size int) Number {
	if n.Digits == nil {
		return Number{
			Digits: make([]byte, size),
		}
	}

	r := n
	r.Digits = make([]byte, size)
	copy(r.Digits, n.Digits)

	if r.IsZero() {
		r.Exponent = 0
		r.Negative = false
	}

	return r
}

// align brings both operands to the larger buffer size.
func align(a, b Number) (Number, Number) {
	size := len(a.Digits)
	if len(b.Digits) > size {
		size = len(b.Digits)
	}

	if size == 0 {
		size = DefaultContext.Size()
	}

	if len(a.Digits) != size {
		a = a.resize(size)
	}

	if len(b.Digits) != size {
		b = b.resize(size)
	}

	return a, b
}
