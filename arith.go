package bcd

import "math"

// DigitsExponent receives the result of AddAbs and SubtractAbs.
//
// If Digits is nil a buffer of the operand length is allocated. Otherwise it
// must have the operand length and must not share its backing array with an
// operand. On error the content of Digits is undefined.
type DigitsExponent struct {
	Digits   []byte
	Exponent int32
}

func (r *DigitsExponent) prepare(size int, operands ...[]byte) error {
	if r == nil {
		return ContractError.New("nil result")
	}

	if r.Digits == nil {
		r.Digits = make([]byte, size)
		return nil
	}

	if len(r.Digits) != size {
		return ContractError.New("result length mismatch: %d != %d", len(r.Digits), size)
	}

	for _, op := range operands {
		if overlaps(op, r.Digits) {
			return ContractError.New("result buffer overlaps an operand")
		}
	}

	return nil
}

// overlaps reports whether x and y share any element.
func overlaps(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}

	for i := range x {
		if &x[i] == &y[0] {
			return true
		}
	}

	for i := range y {
		if &y[i] == &x[0] {
			return true
		}
	}

	return false
}

func (r *DigitsExponent) set(digits []byte, exponent int32) {
	copy(r.Digits, digits)
	r.Exponent = exponent

	if IsZero(r.Digits) {
		r.Exponent = 0
	}
}

// normalize removes leading zero digits adjusting the exponent. An all zero
// buffer becomes the canonical zero.
func (r *DigitsExponent) normalize() error {
	zeros := LeadingZeros(r.Digits)

	switch {
	case zeros == 2*len(r.Digits):
		r.Exponent = 0
	case zeros > 0:
		e := int64(r.Exponent) - int64(zeros)
		if e < math.MinInt32 {
			return ContractError.New("exponent underflow: %d", e)
		}

		shiftLeft(r.Digits, r.Digits, zeros)
		r.Exponent = int32(e)
	}

	return nil
}

// alignment returns the number of digits the operand with exponent lo must be
// moved right to line up with the operand with exponent hi.
func alignment(hi, lo int32, size int) int {
	d := int64(hi) - int64(lo)
	if d > int64(2*size) {
		return 2 * size
	}

	return int(d)
}

// AddAbs computes |a| + |b| into result.
//
// The operand with the smaller exponent is aligned to the larger one by
// moving its digits right; digits that fall off the buffer are dropped. A
// carry out of the most significant digit moves the sum right by one digit
// and increments the exponent, dropping the least significant digit.
// truncated reports whether any nonzero digit was dropped.
func AddAbs(a []byte, aExponent int32, b []byte, bExponent int32, result *DigitsExponent) (truncated bool, err error) {
	err = checkLengths(a, b)
	if err != nil {
		return false, err
	}

	err = result.prepare(len(a), a, b)
	if err != nil {
		return false, err
	}

	switch {
	case IsZero(b):
		result.set(a, aExponent)
		return false, nil
	case IsZero(a):
		result.set(b, bExponent)
		return false, nil
	}

	hi, hiExponent, lo, loExponent := a, aExponent, b, bExponent
	if bExponent > aExponent {
		hi, hiExponent, lo, loExponent = b, bExponent, a, aExponent
	}

	sum := result.Digits
	truncated = shiftRight(sum, lo, alignment(hiExponent, loExponent, len(sum)))

	if addPairs(sum, hi, sum) {
		if hiExponent == math.MaxInt32 {
			return truncated, ContractError.New("exponent overflow")
		}

		if shiftRight(sum, sum, 1) {
			truncated = true
		}
		SetDigitAt(sum, 0, 1)

		result.Exponent = hiExponent + 1

		return truncated, nil
	}

	result.Exponent = hiExponent

	return truncated, result.normalize()
}

// SubtractAbs computes |a| - |b| into result. It requires |a| >= |b|; use
// CompareAbs to order the operands.
//
// The difference is formed with one extra byte of guard digits, so after
// leading zeros are removed the result is the exact difference truncated to
// the buffer even when cancellation promotes digits of b that did not fit.
// truncated reports whether the result differs from the exact difference.
func SubtractAbs(a []byte, aExponent int32, b []byte, bExponent int32, result *DigitsExponent) (truncated bool, err error) {
	err = checkLengths(a, b)
	if err != nil {
		return false, err
	}

	err = result.prepare(len(a), a, b)
	if err != nil {
		return false, err
	}

	cmp, err := CompareAbs(a, aExponent, b, bExponent)
	if err != nil {
		return false, err
	}

	if cmp < 0 {
		return false, ContractError.New("subtrahend is larger than minuend")
	}

	if IsZero(b) {
		result.set(a, aExponent)
		return false, nil
	}

	// Both operands are nonzero and aExponent >= bExponent. With b moved
	// two or more digits right the difference loses at most one leading
	// digit, so a single guard byte covers every case where b is cut.
	size := len(a)

	x := make([]byte, size+1)
	copy(x, a)

	y := make([]byte, size+1)
	copy(y, b)
	lost := shiftRight(y, y, alignment(aExponent, bExponent, size+1))

	if subPairs(x, x, y) {
		return false, InvariantError.New("borrow out of the most significant digit")
	}

	// The exact difference lies strictly between x-1 and x in the last
	// guard place; truncating x-1 truncates it.
	if lost {
		decrement(x)
	}

	wide := DigitsExponent{
		Digits:   x,
		Exponent: aExponent,
	}

	err = wide.normalize()
	if err != nil {
		return false, err
	}

	copy(result.Digits, x[:size])
	result.Exponent = wide.Exponent

	return lost || x[size] != 0, nil
}

// decrement subtracts one unit of the last place from digits.
func decrement(digits []byte) {
	for i := len(digits) - 1; i >= 0; i-- {
		borrow := borrowOne[digits[i]]
		digits[i] = subOne[digits[i]]

		if !borrow {
			return
		}
	}
}

// Normalize removes leading zero digits in place and returns the adjusted
// exponent. An all zero buffer gets exponent 0.
func Normalize(digits []byte, exponent int32) (int32, error) {
	r := DigitsExponent{
		Digits:   digits,
		Exponent: exponent,
	}

	err := r.normalize()
	if err != nil {
		return exponent, err
	}

	return r.Exponent, nil
}
