package bcd

import (
	"bytes"
	"math"
)

// CompareAbs compares the magnitudes of two normalized numbers. The result is
// negative when |a| < |b|, zero when they are equal and positive when
// |a| > |b|. Only the sign of the result is meaningful.
//
// When the exponents differ the digits are not inspected beyond the first
// one: a normalized nonzero number with the larger exponent is larger.
func CompareAbs(a []byte, aExponent int32, b []byte, bExponent int32) (cmp int, err error) {
	err = checkLengths(a, b)
	if err != nil {
		return 0, err
	}

	if aExponent != bExponent {
		aNonZero := HighDigit(a[0]) != 0
		bNonZero := HighDigit(b[0]) != 0

		switch {
		case aNonZero && bNonZero:
			return exponentDelta(aExponent, bExponent), nil
		case aNonZero:
			return 1, nil
		case bNonZero:
			return -1, nil
		default:
			// Zero always has exponent 0.
			return 0, InvariantError.New(
				"zero operands with different exponents: %d != %d",
				aExponent,
				bExponent,
			)
		}
	}

	// Packed digits order the same way as unsigned bytes.
	return bytes.Compare(a, b), nil
}

// exponentDelta returns a - b clamped to the int32 range so the sign
// survives on 32 bit platforms.
func exponentDelta(a, b int32) int {
	d := int64(a) - int64(b)

	switch {
	case d > math.MaxInt32:
		d = math.MaxInt32
	case d < -math.MaxInt32:
		d = -math.MaxInt32
	}

	return int(d)
}

func checkLengths(a, b []byte) error {
	if len(a) == 0 || len(b) == 0 {
		return ContractError.New("empty digit buffer: len(a)=%d len(b)=%d", len(a), len(b))
	}

	if len(a) != len(b) {
		return ContractError.New("digit buffer length mismatch: %d != %d", len(a), len(b))
	}

	return nil
}
