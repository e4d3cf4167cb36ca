package pi_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	bcddecimal "github.com/calebcase/bcd/decimal"
	"github.com/calebcase/bcd/internal/pi"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestArctanTerms(t *testing.T) {
	require.Equal(t, 72, pi.ArctanTerms(100, 5))
	require.Equal(t, 22, pi.ArctanTerms(100, 239))
}

func TestArctan(t *testing.T) {
	ctx := context.Background()
	c := bcddecimal.Context{Precision: 60}

	fifth, err := c.Frac(1, 5)
	require.NoError(t, err)

	general, err := pi.Arctan(ctx, fifth, pi.ArctanTerms(c.Precision, 5))
	require.NoError(t, err)

	inverse, err := pi.ArctanInverse(ctx, c, 5, pi.ArctanTerms(c.Precision, 5))
	require.NoError(t, err)

	diff := general.Decimal().Sub(inverse.Decimal()).Abs()
	require.True(t, diff.LessThan(decimal.New(1, -55)), "%s != %s", general, inverse)

	half, err := c.Frac(1, 2)
	require.NoError(t, err)

	r, err := pi.Arctan(ctx, half, 100)
	require.NoError(t, err)

	f, _ := r.Decimal().Float64()
	require.InDelta(t, math.Atan(0.5), f, 1e-15)

	_, err = pi.ArctanInverse(ctx, c, 1, 10)
	require.True(t, pi.Error.Has(err))

	_, err = pi.ArctanInverse(ctx, c, pi.MaxInverse+1, 10)
	require.True(t, pi.Error.Has(err))
}

func TestArctanEuler(t *testing.T) {
	ctx := context.Background()
	c := bcddecimal.Context{Precision: 60}

	for _, b := range []int64{2, 5, 57, 239, 110443, pi.MaxInverse} {
		inverse, err := pi.ArctanInverse(ctx, c, b, pi.ArctanTerms(c.Precision, b))
		require.NoError(t, err)

		euler, err := pi.ArctanEuler(ctx, c, b, pi.EulerTerms(c.Precision, b))
		require.NoError(t, err)

		diff := inverse.Decimal().Sub(euler.Decimal()).Abs()
		require.True(t, diff.LessThan(decimal.New(1, -55)), "1/%d: %s != %s", b, inverse, euler)
	}

	require.Equal(t, 1, pi.EulerTerms(10, 110443))

	_, err := pi.ArctanEuler(ctx, c, 1, 10)
	require.True(t, pi.Error.Has(err))

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = pi.ArctanEuler(canceled, c, 5, 100)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestMachinLike(t *testing.T) {
	type TC struct {
		name    string
		compute func(context.Context, int, ...pi.Option) (bcddecimal.Number, error)
	}

	tcs := []TC{
		{name: "machin", compute: pi.Machin},
		{name: "takano", compute: pi.Takano},
		{name: "chien-lih", compute: pi.ChienLih},
		{name: "chudnovsky", compute: pi.Chudnovsky},
	}

	for _, tc := range tcs {
		for _, euler := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s euler=%t", tc.name, euler), func(t *testing.T) {
				var opts []pi.Option
				if euler {
					opts = append(opts, pi.WithEuler())
				}

				r, err := tc.compute(context.Background(), 100, opts...)
				require.NoError(t, err)
				require.Equal(t, 100+pi.GuardDigits, r.Precision())

				places, err := pi.Check(pi.Truncate(r.String(), 100))
				require.NoError(t, err, r.String())
				require.Equal(t, 100, places)
			})
		}
	}

	t.Run("euler progress", func(t *testing.T) {
		var mu sync.Mutex
		series := map[string]bool{}

		_, err := pi.Takano(context.Background(), 50, pi.WithEuler(), pi.WithProgress(func(name string, done, total int) {
			mu.Lock()
			defer mu.Unlock()

			series[name] = true
		}))
		require.NoError(t, err)
		require.Equal(t, map[string]bool{
			"euler(1/49)":     true,
			"euler(1/57)":     true,
			"euler(1/239)":    true,
			"euler(1/110443)": true,
		}, series)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := pi.MachinLike(context.Background(), 10, nil)
		require.True(t, pi.Error.Has(err))

		_, err = pi.MachinLike(context.Background(), 10, []pi.Term{{Coef: 1, B: 1}})
		require.True(t, pi.Error.Has(err))

		_, err = pi.Chudnovsky(context.Background(), 0)
		require.True(t, pi.Error.Has(err))

		_, err = pi.Chudnovsky(context.Background(), 10_000_000)
		require.True(t, pi.Error.Has(err))
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pi.ChienLih(ctx, 1000)
		require.True(t, errors.Is(err, context.Canceled))

		_, err = pi.Chudnovsky(ctx, 1000)
		require.True(t, errors.Is(err, context.Canceled))
	})
}

func TestMachin(t *testing.T) {
	var mu sync.Mutex
	final := map[string]int{}
	overrun := false

	progress := func(series string, done, total int) {
		mu.Lock()
		defer mu.Unlock()

		if done > total {
			overrun = true
		}

		if done == total {
			final[series]++
		}
	}

	r, err := pi.Machin(context.Background(), 100, pi.WithProgress(progress))
	require.NoError(t, err)
	require.Equal(t, 100+pi.GuardDigits, r.Precision())

	s := pi.Truncate(r.String(), 100)
	require.Len(t, s, 102)

	places, err := pi.Check(s)
	require.NoError(t, err)
	require.Equal(t, 100, places)

	require.Equal(t, map[string]int{"arctan(1/5)": 1, "arctan(1/239)": 1}, final)
	require.False(t, overrun)

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pi.Machin(ctx, 1000)
		require.Error(t, err)
		require.True(t, errors.Is(err, context.Canceled))
		require.True(t, pi.Error.Has(err))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := pi.Machin(context.Background(), 0)
		require.True(t, pi.Error.Has(err))
	})
}

func TestLeibniz(t *testing.T) {
	calls := 0

	sum, err := pi.Leibniz(context.Background(), bcddecimal.DefaultContext, 1000, pi.WithProgress(func(series string, done, total int) {
		require.Equal(t, "leibniz", series)
		require.Equal(t, 1000, total)
		calls++
	}))
	require.NoError(t, err)
	require.Equal(t, 11, calls)

	// pi - 1/N + 1/(4N^3) for N = 1000.
	expected := decimal.RequireFromString("3.14059265383979292596")
	require.True(t, expected.Sub(sum.Decimal()).Abs().LessThan(decimal.New(1, -14)), sum.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pi.Leibniz(ctx, bcddecimal.DefaultContext, 1000)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSqrt(t *testing.T) {
	ctx := context.Background()

	t.Run("two", func(t *testing.T) {
		c := bcddecimal.Context{Precision: 110}

		r, err := pi.Sqrt(ctx, c, c.FromInt64(2))
		require.NoError(t, err)
		require.Equal(t, 110, r.Precision())

		places, err := pi.CheckSqrt2(pi.Truncate(r.String(), 100))
		require.NoError(t, err)
		require.Equal(t, 100, places)
	})

	t.Run("exact", func(t *testing.T) {
		c := bcddecimal.Context{Precision: 30}

		for input, output := range map[string]string{
			"1.44E-10": "1.2E-5",
			"4E400":    "2E200",
			"144":      "12",
			"0":        "0",
		} {
			v, err := c.Parse(input)
			require.NoError(t, err)

			r, err := pi.Sqrt(ctx, c, v)
			require.NoError(t, err, input)
			require.Equal(t, output, r.String(), input)
		}
	})

	t.Run("negative", func(t *testing.T) {
		_, err := pi.Sqrt(ctx, bcddecimal.DefaultContext, bcddecimal.DefaultContext.FromInt64(-4))
		require.True(t, pi.Error.Has(err))
	})
}

func TestCheck(t *testing.T) {
	places, err := pi.Check("3.14159")
	require.NoError(t, err)
	require.Equal(t, 5, places)

	places, err = pi.Check("3.1415926536")
	require.True(t, pi.Error.Has(err))
	require.Equal(t, 9, places)

	places, err = pi.Check("3.1415926535 8979323846")
	require.NoError(t, err)
	require.Equal(t, 20, places)

	places, err = pi.Check(pi.Pi100 + "999")
	require.NoError(t, err)
	require.Equal(t, 100, places)

	require.Equal(t, "3.14", pi.Truncate("3.14159", 2))
	require.Equal(t, "3.14159", pi.Truncate("3.14159", 10))
	require.Equal(t, "3", pi.Truncate("3", 5))
}
