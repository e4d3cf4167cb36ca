package bcd

// LowDigit returns the less significant digit of a packed pair.
func LowDigit(b byte) byte {
	return b & 0x0F
}

// HighDigit returns the more significant digit of a packed pair.
func HighDigit(b byte) byte {
	return b >> 4
}

// DigitAt returns the i-th digit of the buffer, 0 being the most significant.
func DigitAt(digits []byte, i int) byte {
	b := digits[i/2]
	if i&1 == 0 {
		return HighDigit(b)
	}

	return LowDigit(b)
}

// SetDigitAt replaces the i-th digit of the buffer.
func SetDigitAt(digits []byte, i int, d byte) {
	j := i / 2
	if i&1 == 0 {
		digits[j] = digits[j]&0x0F | d<<4
	} else {
		digits[j] = digits[j]&0xF0 | d&0x0F
	}
}

// Unpack returns the digits of a packed buffer, one per byte.
func Unpack(digits []byte) []byte {
	out := make([]byte, 2*len(digits))
	for i, b := range digits {
		out[2*i] = HighDigit(b)
		out[2*i+1] = LowDigit(b)
	}

	return out
}

// Pack stores one digit per byte input into dst, most significant first.
// Positions not covered by digits are zeroed. It reports whether nonzero
// digits did not fit.
func Pack(dst []byte, digits []byte) (truncated bool) {
	for i := range dst {
		dst[i] = 0
	}

	for i, d := range digits {
		if i >= 2*len(dst) {
			if d != 0 {
				truncated = true
			}

			continue
		}

		SetDigitAt(dst, i, d)
	}

	return truncated
}

// Validate checks that every nibble holds a decimal digit.
func Validate(digits []byte) error {
	for i, b := range digits {
		if HighDigit(b) > 9 || LowDigit(b) > 9 {
			return ContractError.New("malformed digit pair at byte %d: %#02x", i, b)
		}
	}

	return nil
}

// IsZero reports whether all digits are zero.
func IsZero(digits []byte) bool {
	for _, b := range digits {
		if b != 0 {
			return false
		}
	}

	return true
}

// LeadingZeros counts zero digits before the first nonzero one.
func LeadingZeros(digits []byte) (zeros int) {
	for _, b := range digits {
		switch {
		case b == 0:
			zeros += 2
		case HighDigit(b) == 0:
			return zeros + 1
		default:
			return zeros
		}
	}

	return zeros
}

// CheckNormalized verifies that a buffer and exponent are in normal form.
func CheckNormalized(digits []byte, exponent int32) error {
	if len(digits) == 0 {
		return ContractError.New("empty digit buffer")
	}

	if IsZero(digits) {
		if exponent != 0 {
			return InvariantError.New("zero with exponent %d", exponent)
		}

		return nil
	}

	if HighDigit(digits[0]) == 0 {
		return InvariantError.New("leading zero digit: %#02x", digits[0])
	}

	return nil
}
