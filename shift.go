package bcd

// shiftRight stores src moved n digits towards the least significant end
// into dst. Vacated digits are zero. It reports whether a nonzero digit was
// shifted out. dst and src have the same length and may be the same buffer.
func shiftRight(dst, src []byte, n int) (lost bool) {
	total := 2 * len(src)

	if n <= 0 {
		copy(dst, src)
		return false
	}

	if n >= total {
		lost = !IsZero(src)
		clear(dst)

		return lost
	}

	for i := total - n; i < total; i++ {
		if DigitAt(src, i) != 0 {
			lost = true
			break
		}
	}

	if n&1 == 0 {
		// Whole pairs move, no nibble fiddling needed.
		k := n / 2
		copy(dst[k:], src[:len(src)-k])
		clear(dst[:k])

		return lost
	}

	for i := total - 1; i >= n; i-- {
		SetDigitAt(dst, i, DigitAt(src, i-n))
	}
	for i := 0; i < n; i++ {
		SetDigitAt(dst, i, 0)
	}

	return lost
}

// shiftLeft stores src moved n digits towards the most significant end into
// dst. Vacated digits are zero. dst and src have the same length and may be
// the same buffer.
func shiftLeft(dst, src []byte, n int) {
	total := 2 * len(src)

	if n <= 0 {
		copy(dst, src)
		return
	}

	if n >= total {
		clear(dst)
		return
	}

	if n&1 == 0 {
		k := n / 2
		copy(dst, src[k:])
		clear(dst[len(dst)-k:])

		return
	}

	for i := 0; i < total-n; i++ {
		SetDigitAt(dst, i, DigitAt(src, i+n))
	}
	for i := total - n; i < total; i++ {
		SetDigitAt(dst, i, 0)
	}
}

// ShiftRight moves digits n places towards the least significant end in
// place. It reports whether a nonzero digit was dropped.
func ShiftRight(digits []byte, n int) (lost bool) {
	return shiftRight(digits, digits, n)
}

// ShiftLeft moves digits n places towards the most significant end in place.
// Digits moved past the most significant end are dropped.
func ShiftLeft(digits []byte, n int) {
	shiftLeft(digits, digits, n)
}
