package bcd_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bcd"
)

// random returns a normalized nonzero buffer of size bytes.
func random(r *rand.Rand, size int) []byte {
	digits := make([]byte, 2*size)
	digits[0] = byte(1 + r.Intn(9))
	for i := 1; i < len(digits); i++ {
		digits[i] = byte(r.Intn(10))
	}

	packed := make([]byte, size)
	bcd.Pack(packed, digits)

	return packed
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

func TestCompareAbs(t *testing.T) {
	type TC struct {
		name string
		a    []byte
		ae   int32
		b    []byte
		be   int32
		cmp  int
	}

	tcs := []TC{
		{
			name: "exponent dominates",
			a:    []byte{0x91, 0x00}, ae: 1,
			b: []byte{0x50, 0x00}, be: 0,
			cmp: 1,
		},
		{
			name: "zeros",
			a:    []byte{0x00, 0x00}, ae: 0,
			b: []byte{0x00, 0x00}, be: 0,
			cmp: 0,
		},
		{
			name: "zero and small",
			a:    []byte{0x00, 0x00}, ae: 0,
			b: []byte{0x10, 0x00}, be: -5,
			cmp: -1,
		},
		{
			name: "small and zero",
			a:    []byte{0x10, 0x00}, ae: -5,
			b: []byte{0x00, 0x00}, be: 0,
			cmp: 1,
		},
		{
			name: "same exponent",
			a:    []byte{0x12, 0x34}, ae: 4,
			b: []byte{0x33, 0x99}, be: 4,
			cmp: -1,
		},
		{
			name: "low nibble decides",
			a:    []byte{0x12, 0x35}, ae: -2,
			b: []byte{0x12, 0x34}, be: -2,
			cmp: 1,
		},
		{
			name: "130 vs 13",
			a:    []byte{0x13, 0x00}, ae: 3,
			b: []byte{0x13, 0x00}, be: 2,
			cmp: 1,
		},
		{
			name: "equal",
			a:    []byte{0x22, 0x30}, ae: 3,
			b: []byte{0x22, 0x30}, be: 3,
			cmp: 0,
		},
		{
			name: "extreme exponents",
			a:    []byte{0x10}, ae: math.MinInt32,
			b: []byte{0x10}, be: math.MaxInt32,
			cmp: -1,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			cmp, err := bcd.CompareAbs(tc.a, tc.ae, tc.b, tc.be)
			require.NoError(t, err)
			require.Equal(t, tc.cmp, sign(cmp))

			cmp, err = bcd.CompareAbs(tc.b, tc.be, tc.a, tc.ae)
			require.NoError(t, err)
			require.Equal(t, -tc.cmp, sign(cmp))
		})
	}

	t.Run("exponent difference", func(t *testing.T) {
		cmp, err := bcd.CompareAbs([]byte{0x91, 0x00}, 1, []byte{0x50, 0x00}, 0)
		require.NoError(t, err)
		require.Equal(t, 1, cmp)

		cmp, err = bcd.CompareAbs([]byte{0x10}, -3, []byte{0x99}, 4)
		require.NoError(t, err)
		require.Equal(t, -7, cmp)
	})

	t.Run("zeros with different exponents", func(t *testing.T) {
		_, err := bcd.CompareAbs([]byte{0x00, 0x00}, 1, []byte{0x00, 0x00}, 0)
		require.Error(t, err)
		require.True(t, bcd.InvariantError.Has(err))
		require.False(t, bcd.ContractError.Has(err))
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := bcd.CompareAbs([]byte{0x10, 0x00}, 1, []byte{0x10}, 1)
		require.Error(t, err)
		require.True(t, bcd.ContractError.Has(err))

		_, err = bcd.CompareAbs(nil, 0, nil, 0)
		require.Error(t, err)
		require.True(t, bcd.ContractError.Has(err))
	})

	t.Run("properties", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))

		for i := 0; i < 1000; i++ {
			a, b := random(r, 4), random(r, 4)
			ae, be := int32(r.Intn(7)-3), int32(r.Intn(7)-3)

			ab, err := bcd.CompareAbs(a, ae, b, be)
			require.NoError(t, err)

			ba, err := bcd.CompareAbs(b, be, a, ae)
			require.NoError(t, err)
			require.Equal(t, sign(ab), -sign(ba), "%x e%d vs %x e%d", a, ae, b, be)

			aa, err := bcd.CompareAbs(a, ae, a, ae)
			require.NoError(t, err)
			require.Equal(t, 0, aa)

			if ae > be {
				require.Positive(t, ab)
			}
		}
	})
}
