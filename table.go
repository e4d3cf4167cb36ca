package bcd

// Lookup tables indexed by a packed byte.
var (
	// pairValue is the two digit number held by a byte (0-99 for valid
	// digits).
	pairValue [256]uint8

	// pairByte packs 0-99 back into a byte.
	pairByte [100]byte

	// addOne is the byte incremented by one decimal unit and carryOne
	// reports whether that increment carried out of the pair ([9|9]).
	addOne   [256]byte
	carryOne [256]bool

	// subOne is the byte decremented by one decimal unit and borrowOne
	// reports whether that decrement borrowed from the next pair ([0|0]).
	subOne    [256]byte
	borrowOne [256]bool
)

func init() {
	for v := 0; v < 100; v++ {
		pairByte[v] = byte(v/10)<<4 | byte(v%10)
	}

	for i := 0; i < 256; i++ {
		b := byte(i)
		v := int(HighDigit(b))*10 + int(LowDigit(b))

		pairValue[i] = uint8(v)

		addOne[i] = pairByte[(v+1)%100]
		carryOne[i] = v >= 99

		subOne[i] = pairByte[(v+99)%100]
		borrowOne[i] = v == 0
	}
}

// addPairs stores x + y into dst walking from the least significant pair and
// returns the carry out of the most significant one. dst may be x or y.
func addPairs(dst, x, y []byte) (carry bool) {
	for i := len(dst) - 1; i >= 0; i-- {
		s := int(pairValue[x[i]]) + int(pairValue[y[i]])

		r := pairByte[s%100]
		c := s >= 100

		if carry {
			c = c || carryOne[r]
			r = addOne[r]
		}

		dst[i], carry = r, c
	}

	return carry
}

// subPairs stores x - y into dst walking from the least significant pair and
// returns the borrow out of the most significant one. dst may be x or y.
func subPairs(dst, x, y []byte) (borrow bool) {
	for i := len(dst) - 1; i >= 0; i-- {
		s := int(pairValue[x[i]]) - int(pairValue[y[i]])

		b := s < 0
		r := pairByte[(s+200)%100]

		if borrow {
			b = b || borrowOne[r]
			r = subOne[r]
		}

		dst[i], borrow = r, b
	}

	return borrow
}
