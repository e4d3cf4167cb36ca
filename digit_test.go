package bcd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	t.Run("nibbles", func(t *testing.T) {
		require.Equal(t, byte(7), HighDigit(0x71))
		require.Equal(t, byte(1), LowDigit(0x71))
		require.Equal(t, byte(0), HighDigit(0x09))
		require.Equal(t, byte(9), LowDigit(0x09))
		require.Equal(t, byte(0xF), HighDigit(0xFA))
		require.Equal(t, byte(0xA), LowDigit(0xFA))
	})

	t.Run("at", func(t *testing.T) {
		digits := []byte{0x71, 0x23, 0x40}

		var got []byte
		for i := 0; i < 2*len(digits); i++ {
			got = append(got, DigitAt(digits, i))
		}
		require.Equal(t, []byte{7, 1, 2, 3, 4, 0}, got)

		SetDigitAt(digits, 5, 9)
		SetDigitAt(digits, 0, 8)
		require.Equal(t, []byte{0x81, 0x23, 0x49}, digits)
	})

	t.Run("pack", func(t *testing.T) {
		dst := []byte{0xFF, 0xFF}

		truncated := Pack(dst, []byte{1, 2, 3})
		require.False(t, truncated)
		require.Equal(t, []byte{0x12, 0x30}, dst)
		require.Equal(t, []byte{1, 2, 3, 0}, Unpack(dst))

		truncated = Pack(dst, []byte{1, 2, 3, 4, 0, 0})
		require.False(t, truncated)
		require.Equal(t, []byte{0x12, 0x34}, dst)

		truncated = Pack(dst, []byte{1, 2, 3, 4, 0, 5})
		require.True(t, truncated)
		require.Equal(t, []byte{0x12, 0x34}, dst)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]byte{0x00, 0x99, 0x45}))

	err := Validate([]byte{0x00, 0x9A})
	require.Error(t, err)
	require.True(t, ContractError.Has(err))

	err = Validate([]byte{0xA0})
	require.Error(t, err)
	require.True(t, ContractError.Has(err))
}

func TestLeadingZeros(t *testing.T) {
	type TC struct {
		digits []byte
		zeros  int
	}

	tcs := []TC{
		{digits: []byte{0x11, 0x22, 0x33}, zeros: 0},
		{digits: []byte{0x01, 0x22, 0x33}, zeros: 1},
		{digits: []byte{0x00, 0x22, 0x33}, zeros: 2},
		{digits: []byte{0x00, 0x02, 0x33}, zeros: 3},
		{digits: []byte{0x00, 0x00, 0x00}, zeros: 6},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x", i, tc.digits), func(t *testing.T) {
			require.Equal(t, tc.zeros, LeadingZeros(tc.digits))
		})
	}
}

func TestCheckNormalized(t *testing.T) {
	require.NoError(t, CheckNormalized([]byte{0x00, 0x00}, 0))
	require.NoError(t, CheckNormalized([]byte{0x12, 0x00}, -7))

	err := CheckNormalized([]byte{0x00, 0x00}, 3)
	require.True(t, InvariantError.Has(err))

	err = CheckNormalized([]byte{0x01, 0x00}, 3)
	require.True(t, InvariantError.Has(err))

	err = CheckNormalized(nil, 0)
	require.True(t, ContractError.Has(err))
}

func TestNormalize(t *testing.T) {
	digits := []byte{0x00, 0x12, 0x30}
	exponent, err := Normalize(digits, 4)
	require.NoError(t, err)
	require.Equal(t, int32(1), exponent)
	require.Equal(t, []byte{0x12, 0x30, 0x00}, digits)

	digits = []byte{0x00, 0x00}
	exponent, err = Normalize(digits, 4)
	require.NoError(t, err)
	require.Equal(t, int32(0), exponent)

	_, err = Normalize([]byte{0x01}, -2147483648)
	require.True(t, ContractError.Has(err))

	digits = []byte{0x12, 0x34}
	require.True(t, ShiftRight(digits, 1))
	require.Equal(t, []byte{0x01, 0x23}, digits)
	ShiftLeft(digits, 1)
	require.Equal(t, []byte{0x12, 0x30}, digits)
}
