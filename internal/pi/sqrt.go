package pi

import (
	"context"
	"math"

	"github.com/shopspring/decimal"

	bcddecimal "github.com/calebcase/bcd/decimal"
)

// maxIterations bounds the Newton iteration. Each step doubles the correct
// digits of the float64 seed, so this is far beyond any usable precision.
const maxIterations = 64

// Sqrt computes the square root of value using the Newton iteration
// x = (x + value/x) / 2. The result has the precision of c, or of value when
// that is larger. The iteration stops once it reaches a fixed point or
// alternates between two neighbours.
func Sqrt(ctx context.Context, c bcddecimal.Context, value bcddecimal.Number) (x bcddecimal.Number, err error) {
	defer Error.WrapP(&err)

	if value.Negative && !value.IsZero() {
		return bcddecimal.Number{}, Error.New("square root of negative number %s", value)
	}

	if value.IsZero() {
		return c.Zero(), nil
	}

	x, err = seed(c, value)
	if err != nil {
		return bcddecimal.Number{}, err
	}

	var prev bcddecimal.Number

	for i := 0; i < maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return x, err
		}

		q, err := value.Div(x)
		if err != nil {
			return x, err
		}

		next, err := x.Add(q)
		if err != nil {
			return x, err
		}

		next, err = next.DivInt64(2)
		if err != nil {
			return x, err
		}

		if next.Equal(x) || (i > 0 && next.Equal(prev)) {
			return next, nil
		}

		prev, x = x, next
	}

	return x, Error.New("no convergence after %d iterations", maxIterations)
}

// seed returns a float64 estimate of the square root. Only the leading
// digits go through floating point; the exponent is halved exactly so huge
// and tiny values do not overflow.
func seed(c bcddecimal.Context, value bcddecimal.Number) (bcddecimal.Number, error) {
	var m float64
	scale := 0.1
	for i := 0; i < 17; i++ {
		m += float64(value.DigitAt(i)) * scale
		scale /= 10
	}

	// value = m * 10^e with 0.1 <= m < 1. An odd exponent moves one digit
	// into m.
	e := int64(value.Exponent)
	if e%2 != 0 {
		m *= 10
		e--
	}

	x, err := c.FromDecimal(decimal.NewFromFloat(math.Sqrt(m)))
	if err != nil {
		return bcddecimal.Number{}, err
	}

	return x.Exp10(int32(e / 2))
}
