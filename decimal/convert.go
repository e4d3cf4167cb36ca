package decimal

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/calebcase/bcd"
)

// Decimal returns n as an arbitrary precision shopspring decimal.
func (n Number) Decimal() decimal.Decimal {
	if n.IsZero() {
		return decimal.Zero
	}

	digits := bcd.Unpack(n.Digits)

	coefficient := new(big.Int)
	ten := big.NewInt(10)
	for _, d := range digits {
		coefficient.Mul(coefficient, ten)
		coefficient.Add(coefficient, big.NewInt(int64(d)))
	}

	if n.Negative {
		coefficient.Neg(coefficient)
	}

	return decimal.NewFromBigInt(coefficient, n.Exponent-int32(len(digits)))
}

// FromDecimal returns d. Digits beyond the precision are dropped.
func (c Context) FromDecimal(d decimal.Decimal) (n Number, err error) {
	defer Error.WrapP(&err)

	coefficient := d.Coefficient()
	if coefficient.Sign() == 0 {
		return c.Zero(), nil
	}

	s := new(big.Int).Abs(coefficient).String()

	digits := make([]byte, len(s))
	for i := range s {
		digits[i] = s[i] - '0'
	}

	e := int64(len(s)) + int64(d.Exponent())
	if e < math.MinInt32 || e > math.MaxInt32 {
		return Number{}, bcd.ContractError.New("exponent out of range: %d", e)
	}

	n = c.Zero()
	bcd.Pack(n.Digits, digits)
	n.Exponent = int32(e)
	n.Negative = coefficient.Sign() < 0

	return n, nil
}
