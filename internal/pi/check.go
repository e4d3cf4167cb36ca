package pi

import (
	"strings"
)

// Known decimal expansions used to verify results.
const (
	Pi100 = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

	Sqrt2100 = "1.4142135623730950488016887242096980785696718753769480731766797379907324784621070388503875343276415727"
)

// Check verifies the digits of pi against Pi100. Spaces are ignored. It
// returns the number of decimal places that were verified; places beyond
// the known expansion are not checked.
func Check(pi string) (places int, err error) {
	return check(Pi100, pi)
}

// CheckSqrt2 verifies the digits of the square root of two against
// Sqrt2100.
func CheckSqrt2(sqrt2 string) (places int, err error) {
	return check(Sqrt2100, sqrt2)
}

func check(known, actual string) (places int, err error) {
	actual = strings.ReplaceAll(actual, " ", "")

	point := strings.IndexByte(known, '.')

	for i := 0; i < len(actual) && i < len(known); i++ {
		if actual[i] != known[i] {
			return max(0, i-point-1), Error.New("digit at place %d: %c != %c", i-point, actual[i], known[i])
		}
	}

	return max(0, min(len(actual), len(known))-point-1), nil
}

// Truncate cuts the plain notation s to places decimals.
func Truncate(s string, places int) string {
	point := strings.IndexByte(s, '.')
	if point < 0 {
		return s
	}

	if end := point + 1 + places; end < len(s) {
		return s[:end]
	}

	return s
}
