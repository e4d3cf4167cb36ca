package pi

import (
	"context"

	"github.com/calebcase/bcd/decimal"
)

// DigitsPerIteration is roughly how many decimals every term of the
// Chudnovsky series adds.
const DigitsPerIteration = 14

// maxChudnovskyIterations keeps 1728*k^3 within an int64.
const maxChudnovskyIterations = 170_000

// c3 is 640320^3.
const c3 = 640320 * 640320 * 640320

// Chudnovsky computes pi to digits decimal places with the Chudnovsky
// series
//
//	pi = 426880 sqrt(10005) / sum (13591409 + 545140134 k) a(k)
//
// where a(k) = (-1)^k (6k)! / ((3k)! (k!)^3 640320^3k). The result carries
// GuardDigits more digits than requested; the trailing ones are not exact.
func Chudnovsky(ctx context.Context, digits int, opts ...Option) (pi decimal.Number, err error) {
	defer Error.WrapP(&err)

	if digits < 1 {
		return decimal.Number{}, Error.New("invalid digits: %d", digits)
	}

	c := decimal.Context{Precision: digits + GuardDigits}

	iterations := c.Precision/DigitsPerIteration + 1
	if iterations > maxChudnovskyIterations {
		return decimal.Number{}, Error.New("too many digits: %d", digits)
	}

	o := apply(opts)

	ak := c.One()
	asum := c.One()
	bsum := c.Zero()

	for k := int64(1); k <= int64(iterations); k++ {
		if err := ctx.Err(); err != nil {
			return decimal.Number{}, err
		}

		// a(k) = a(k-1) * -24 (6k-5)(2k-1)(6k-1) / (k^3 640320^3)
		ak, err = ak.MulInt64(-24 * (6*k - 5) * (2*k - 1) * (6*k - 1))
		if err != nil {
			return decimal.Number{}, err
		}

		ak, err = ak.DivInt64(k * k * k)
		if err != nil {
			return decimal.Number{}, err
		}

		ak, err = ak.DivInt64(c3)
		if err != nil {
			return decimal.Number{}, err
		}

		bk, err := ak.MulInt64(k)
		if err != nil {
			return decimal.Number{}, err
		}

		asum, err = asum.Add(ak)
		if err != nil {
			return decimal.Number{}, err
		}

		bsum, err = bsum.Add(bk)
		if err != nil {
			return decimal.Number{}, err
		}

		if k%ProgressEvery == 0 {
			o.progress("chudnovsky", int(k), iterations)
		}
	}

	o.progress("chudnovsky", iterations, iterations)

	root, err := Sqrt(ctx, c, c.FromInt64(10005))
	if err != nil {
		return decimal.Number{}, err
	}

	num, err := root.MulInt64(426880)
	if err != nil {
		return decimal.Number{}, err
	}

	asum, err = asum.MulInt64(13591409)
	if err != nil {
		return decimal.Number{}, err
	}

	bsum, err = bsum.MulInt64(545140134)
	if err != nil {
		return decimal.Number{}, err
	}

	den, err := asum.Add(bsum)
	if err != nil {
		return decimal.Number{}, err
	}

	return num.Div(den)
}
