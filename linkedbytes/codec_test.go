package linkedbytes_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigbit/linkedbytes"
)

func TestEncodeUint(t *testing.T) {
	type TC struct {
		Input  uint64
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  0,
			Output: []byte{0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  1,
			Output: []byte{0b_0000_0001},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  127,
			Output: []byte{0b_0111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  128,
			Output: []byte{0b_1000_0000, 0b_0000_0001},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  300,
			Output: []byte{0b_1010_1100, 0b_0000_0010},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  16383,
			Output: []byte{0b_1111_1111, 0b_0111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  16384,
			Output: []byte{0b_1000_0000, 0b_1000_0000, 0b_0000_0001},
			Mark:   oops.New("unexpected"),
		},
		{
			Input: math.MaxUint64,
			Output: []byte{
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
				0xFF, 0xFF, 0xFF, 0xFF, 0x01,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%d", i, tc.Input), func(t *testing.T) {
			output := linkedbytes.EncodeUint(tc.Input)
			require.Equal(t, tc.Output, output, tc.Mark)
		})
	}
}

func TestDecodeUint(t *testing.T) {
	type TC struct {
		Input    []byte
		Value    uint64
		Consumed int
		Mark     error
	}

	tcs := []TC{
		{
			Input:    []byte{0b_0000_0000},
			Value:    0,
			Consumed: 1,
			Mark:     oops.New("unexpected"),
		},
		{
			Input:    []byte{0b_0111_1111},
			Value:    127,
			Consumed: 1,
			Mark:     oops.New("unexpected"),
		},
		{
			Input:    []byte{0b_1000_0000, 0b_0000_0001},
			Value:    128,
			Consumed: 2,
			Mark:     oops.New("unexpected"),
		},
		{
			// Trailing bytes beyond the terminal digit are left
			// for the caller.
			Input:    []byte{0b_0000_0101, 0b_0111_1111},
			Value:    5,
			Consumed: 1,
			Mark:     oops.New("unexpected"),
		},
		{
			// Non-canonical: a superfluous high zero digit.
			Input:    []byte{0b_1000_0001, 0b_0000_0000},
			Value:    1,
			Consumed: 2,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%x", i, tc.Input), func(t *testing.T) {
			value, n, err := linkedbytes.DecodeUint(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Value, value, tc.Mark)
			require.Equal(t, tc.Consumed, n, tc.Mark)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		tcs := [][]byte{
			{},
			{0b_1000_0000},
			{0b_1000_0001, 0b_1000_0001},
		}

		for i, input := range tcs {
			t.Run(fmt.Sprintf("%02d/%x", i, input), func(t *testing.T) {
				_, _, err := linkedbytes.DecodeUint(input)
				require.Error(t, err)
				require.True(t, errors.Is(err, linkedbytes.ErrInvalidEncoding))
			})
		}
	})

	t.Run("overflow", func(t *testing.T) {
		// Eleven digits: 2^70, one past the widest uint64.
		input := []byte{
			0x80, 0x80, 0x80, 0x80, 0x80,
			0x80, 0x80, 0x80, 0x80, 0x80,
			0x01,
		}

		_, _, err := linkedbytes.DecodeUint(input)
		require.Error(t, err)
		require.True(t, errors.Is(err, linkedbytes.ErrOverflow))
	})
}

func TestRoundtripUint(t *testing.T) {
	values := []uint64{
		0, 1, 2, 126, 127, 128, 129, 255, 256,
		16383, 16384, 16385, 1<<21 - 1, 1 << 21,
		1<<32 - 1, 1 << 32, 1<<63 - 1, 1 << 63, math.MaxUint64,
	}

	for _, v := range values {
		encoded := linkedbytes.EncodeUint(v)

		decoded, n, err := linkedbytes.DecodeUint(encoded)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), n)
	}
}
