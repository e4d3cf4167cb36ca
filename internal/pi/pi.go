// Package pi evaluates series for pi and square roots on packed decimal
// numbers.
package pi

import (
	"context"
	"math"
	"runtime"
	"strconv"

	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/bcd/decimal"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("pi")

// GuardDigits are carried beyond the requested digits to absorb the
// truncation of every series term.
const GuardDigits = 50

// ProgressFunc receives the number of terms summed so far out of total for
// the named series. It may be called from several goroutines at once.
type ProgressFunc func(series string, done, total int)

// ProgressEvery is the number of terms between progress reports.
const ProgressEvery = 100

type options struct {
	progress ProgressFunc
	euler    bool
}

// Option configures a computation.
type Option func(*options)

// WithProgress reports progress to fn.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithEuler sums Machin-like formulas with ArctanEuler.
func WithEuler() Option {
	return func(o *options) {
		o.euler = true
	}
}

func apply(opts []Option) options {
	o := options{
		progress: func(string, int, int) {},
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ArctanTerms returns how many terms of the arctan(1/b) series are needed
// for digits correct decimals. b must be greater than one.
func ArctanTerms(digits int, b int64) int {
	return int(math.Ceil(float64(digits) * math.Ln10 / (2 * math.Log(float64(b)))))
}

// Arctan sums terms of the series x - x^3/3 + x^5/5 - ... It converges for
// |x| < 1.
func Arctan(ctx context.Context, x decimal.Number, terms int) (sum decimal.Number, err error) {
	defer Error.WrapP(&err)

	sum = x.Context().Zero()

	x2, err := x.Mul(x)
	if err != nil {
		return sum, err
	}
	mx2 := x2.Neg()

	xk := x
	for k := 0; k < terms; k++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		term, err := xk.DivInt64(int64(2*k + 1))
		if err != nil {
			return sum, err
		}

		sum, err = sum.Add(term)
		if err != nil {
			return sum, err
		}

		xk, err = xk.Mul(mx2)
		if err != nil {
			return sum, err
		}
	}

	return sum, nil
}

// MaxInverse is the largest b accepted by ArctanInverse and ArctanEuler; b*b
// must fit an int64.
const MaxInverse = 3037000499

// ArctanInverse sums terms of the series for arctan(1/b). Every term is a
// pair of short divisions, so it is much faster than Arctan for integer b.
func ArctanInverse(ctx context.Context, c decimal.Context, b int64, terms int, opts ...Option) (sum decimal.Number, err error) {
	defer Error.WrapP(&err)

	if b < 2 || b > MaxInverse {
		return decimal.Number{}, Error.New("arctan(1/%d) is out of range", b)
	}

	o := apply(opts)
	series := "arctan(1/" + strconv.FormatInt(b, 10) + ")"

	sum = c.Zero()

	// power holds 1/b^(2k+1).
	power, err := c.One().DivInt64(b)
	if err != nil {
		return sum, err
	}

	for k := 0; k < terms; k++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		term, err := power.DivInt64(int64(2*k + 1))
		if err != nil {
			return sum, err
		}

		if k%2 == 1 {
			term = term.Neg()
		}

		sum, err = sum.Add(term)
		if err != nil {
			return sum, err
		}

		power, err = power.DivInt64(b * b)
		if err != nil {
			return sum, err
		}

		if k%ProgressEvery == 0 {
			o.progress(series, k, terms)
		}
	}

	o.progress(series, terms, terms)

	return sum, nil
}

// EulerTerms returns how many terms of the Euler series for arctan(1/b) are
// needed for digits correct decimals.
func EulerTerms(digits int, b int64) int {
	return int(math.Ceil(float64(digits) * math.Ln10 / math.Log1p(float64(b)*float64(b))))
}

// ArctanEuler sums terms of Euler's accelerated series
//
//	arctan(1/b) = b/(1+b^2) * sum 2k!!/(2k+1)!! * (1/(1+b^2))^k
//
// All terms are positive, so no digits cancel.
func ArctanEuler(ctx context.Context, c decimal.Context, b int64, terms int, opts ...Option) (sum decimal.Number, err error) {
	defer Error.WrapP(&err)

	if b < 2 || b > MaxInverse {
		return decimal.Number{}, Error.New("arctan(1/%d) is out of range", b)
	}

	o := apply(opts)
	series := "euler(1/" + strconv.FormatInt(b, 10) + ")"

	q := 1 + b*b

	term, err := c.FromInt64(b).DivInt64(q)
	if err != nil {
		return decimal.Number{}, err
	}

	sum = term

	for k := 1; k < terms; k++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		term, err = term.MulInt64(int64(2 * k))
		if err != nil {
			return sum, err
		}

		term, err = term.DivInt64(int64(2*k + 1))
		if err != nil {
			return sum, err
		}

		term, err = term.DivInt64(q)
		if err != nil {
			return sum, err
		}

		sum, err = sum.Add(term)
		if err != nil {
			return sum, err
		}

		if k%ProgressEvery == 0 {
			o.progress(series, k, terms)
		}
	}

	o.progress(series, terms, terms)

	return sum, nil
}

// Term is one Coef * arctan(1/B) summand of a Machin-like formula for pi/4.
type Term struct {
	Coef int64
	B    int64
}

// Machin-like formulas for pi/4.
var (
	MachinTerms = []Term{{4, 5}, {-1, 239}}

	TakanoTerms = []Term{{12, 49}, {32, 57}, {-5, 239}, {12, 110443}}

	ChienLihTerms = []Term{
		{36462, 390112}, {135908, 485298}, {274509, 683982},
		{-39581, 1984933}, {178477, 2478328}, {-114569, 3449051},
		{-146571, 18975991}, {61914, 22709274}, {-69044, 24208144},
		{-89431, 201229582}, {-43938, 2189376182},
	}
)

// MachinLike computes pi = 4 * sum Coef*arctan(1/B) to digits decimal
// places. The arctan series are summed concurrently, at most GOMAXPROCS at
// a time. The result carries GuardDigits more digits than requested; the
// trailing ones are not exact.
func MachinLike(ctx context.Context, digits int, terms []Term, opts ...Option) (pi decimal.Number, err error) {
	defer Error.WrapP(&err)

	if digits < 1 {
		return decimal.Number{}, Error.New("invalid digits: %d", digits)
	}

	if len(terms) == 0 {
		return decimal.Number{}, Error.New("no terms")
	}

	o := apply(opts)
	c := decimal.Context{Precision: digits + GuardDigits}

	parts := make([]decimal.Number, len(terms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, t := range terms {
		i, t := i, t
		g.Go(func() (err error) {
			var a decimal.Number
			if o.euler {
				a, err = ArctanEuler(gctx, c, t.B, EulerTerms(c.Precision, t.B), opts...)
			} else {
				a, err = ArctanInverse(gctx, c, t.B, ArctanTerms(c.Precision, t.B), opts...)
			}
			if err != nil {
				return err
			}

			parts[i], err = a.MulInt64(t.Coef)

			return err
		})
	}

	err = g.Wait()
	if err != nil {
		return decimal.Number{}, err
	}

	sum := c.Zero()
	for _, p := range parts {
		sum, err = sum.Add(p)
		if err != nil {
			return decimal.Number{}, err
		}
	}

	return sum.MulInt64(4)
}

// Machin computes pi = 16 arctan(1/5) - 4 arctan(1/239) to digits decimal
// places.
func Machin(ctx context.Context, digits int, opts ...Option) (decimal.Number, error) {
	return MachinLike(ctx, digits, MachinTerms, opts...)
}

// Takano computes pi with Takano's four term formula.
func Takano(ctx context.Context, digits int, opts ...Option) (decimal.Number, error) {
	return MachinLike(ctx, digits, TakanoTerms, opts...)
}

// ChienLih computes pi with Hwang Chien-Lih's eleven term formula. Its
// arguments are large, so few terms of every series are needed.
func ChienLih(ctx context.Context, digits int, opts ...Option) (decimal.Number, error) {
	return MachinLike(ctx, digits, ChienLihTerms, opts...)
}

// Leibniz sums terms of 4 - 4/3 + 4/5 - ... It converges too slowly to be of
// use beyond a demonstration.
func Leibniz(ctx context.Context, c decimal.Context, terms int, opts ...Option) (sum decimal.Number, err error) {
	defer Error.WrapP(&err)

	o := apply(opts)

	sum = c.Zero()
	four := c.FromInt64(4)

	for k := 0; k < terms; k++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		term, err := four.DivInt64(int64(2*k + 1))
		if err != nil {
			return sum, err
		}

		if k%2 == 1 {
			term = term.Neg()
		}

		sum, err = sum.Add(term)
		if err != nil {
			return sum, err
		}

		if k%ProgressEvery == 0 {
			o.progress("leibniz", k, terms)
		}
	}

	o.progress("leibniz", terms, terms)

	return sum, nil
}
