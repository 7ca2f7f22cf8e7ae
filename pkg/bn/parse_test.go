package bn_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockchainethdev/ethereum-util/pkg/bn"
	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
)

func TestIsNegative(t *testing.T) {
	assert.True(t, bn.IsNegative("-1"))
	assert.True(t, bn.IsNegative("-0x12"))
	assert.False(t, bn.IsNegative("1"))
	assert.False(t, bn.IsNegative(""))
	assert.False(t, bn.IsNegative("1-"))
}

func TestToBn_Integer(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected int64
	}{
		{"empty string", "", 0},
		{"native int", 11, 11},
		{"native int64", int64(-42), -42},
		{"native uint8", uint8(255), 255},
		{"prefixed hex", "0x12", 18},
		{"negative prefixed hex", "-0x12", -18},
		{"bare hex", "ae", 174},
		{"bare uppercase hex", "AE", 174},
		{"negative bare hex", "-ae", -174},
		{"bare digits are hex", "11", 17},
		{"negative digit", "-1", -1},
		{"prefix only", "0x", 0},
		{"whole float", 11.0, 11},
		{"negative whole float", float32(-3), -3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := bn.ToBn(test.in)
			require.NoError(t, err)

			i, ok := n.(bn.Integer)
			require.True(t, ok, "expected Integer, got %T", n)
			assert.Equal(t, 0, big.NewInt(test.expected).Cmp(i.Int), "got %s", i.Int)
		})
	}

	t.Run("hex string equals native value", func(t *testing.T) {
		a := bn.MustToBn("0x12").(bn.Integer)
		b := bn.MustToBn(18).(bn.Integer)
		assert.Equal(t, 0, a.Int.Cmp(b.Int))
	})

	t.Run("max uint64", func(t *testing.T) {
		n, err := bn.ToBn(uint64(math.MaxUint64))
		require.NoError(t, err)
		assert.Equal(t, "18446744073709551615", n.String())
	})
}

func TestToBn_Identity(t *testing.T) {
	x := big.NewInt(200)
	n, err := bn.ToBn(x)
	require.NoError(t, err)

	i, ok := n.(bn.Integer)
	require.True(t, ok)
	assert.Same(t, x, i.Int)

	again, err := bn.ToBn(n)
	require.NoError(t, err)
	assert.Equal(t, n, again)
}

func TestToBn_Decimal(t *testing.T) {
	tests := []struct {
		name           string
		in             any
		integer        int64
		fraction       int64
		fractionDigits int
		negative       bool
	}{
		{"negative string", "-0.1", 0, 1, 1, true},
		{"negative float", -0.1, 0, 1, 1, true},
		{"positive string", "0.1", 0, 1, 1, false},
		{"positive float", 0.1, 0, 1, 1, false},
		{"negative two digits", "-1.69", 1, 69, 2, true},
		{"negative two digits float", -1.69, 1, 69, 2, true},
		{"positive two digits", "1.69", 1, 69, 2, false},
		{"trailing zero kept", "0.10", 0, 10, 2, false},
		{"leading fraction zero", "1.05", 1, 5, 2, false},
		{"no integer part", ".5", 0, 5, 1, false},
		{"no fraction part", "7.", 7, 0, 0, false},
		{"float32", float32(2.5), 2, 5, 1, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := bn.ToBn(test.in)
			require.NoError(t, err)

			d, ok := n.(bn.DecimalParts)
			require.True(t, ok, "expected DecimalParts, got %T", n)
			assert.Equal(t, 0, big.NewInt(test.integer).Cmp(d.Integer))
			assert.Equal(t, 0, big.NewInt(test.fraction).Cmp(d.Fraction))
			assert.Equal(t, test.fractionDigits, d.FractionDigits)
			assert.Equal(t, test.negative, d.Negative())
			if test.negative {
				require.NotNil(t, d.Sign)
				assert.Equal(t, int64(-1), d.Sign.Int64())
			} else {
				assert.Nil(t, d.Sign)
			}
		})
	}
}

func TestDecimalParts(t *testing.T) {
	t.Run("String keeps written form", func(t *testing.T) {
		for _, in := range []string{"-1.69", "0.10", "1.05", "0.1", "7."} {
			assert.Equal(t, in, bn.MustToBn(in).String())
		}
		assert.Equal(t, "0.5", bn.MustToBn(".5").String())
	})

	t.Run("Exact", func(t *testing.T) {
		d := bn.MustToBn("-1.69").(bn.DecimalParts)
		assert.True(t, decimal.RequireFromString("-1.69").Equal(d.Exact()))

		d = bn.MustToBn("0.10").(bn.DecimalParts)
		assert.True(t, decimal.RequireFromString("0.1").Equal(d.Exact()))
	})
}

func TestToBn_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		target error
	}{
		{"struct", struct{}{}, bn.ErrInvalidInputType},
		{"nil", nil, bn.ErrInvalidInputType},
		{"nil big.Int", (*big.Int)(nil), bn.ErrInvalidInputType},
		{"bool", true, bn.ErrInvalidInputType},
		{"byte slice", []byte{1}, bn.ErrInvalidInputType},
		{"non-hex string", "hello", hexstr.ErrInvalidHex},
		{"double prefix", "0x0x12", hexstr.ErrInvalidHex},
		{"sign after prefix", "0x-12", hexstr.ErrInvalidHex},
		{"double minus", "--12", hexstr.ErrInvalidHex},
		{"two points", "1.2.3", bn.ErrInvalidNumber},
		{"hex in decimal", "0x1.5", bn.ErrInvalidNumber},
		{"plus sign decimal", "+1.5", bn.ErrInvalidNumber},
		{"NaN", math.NaN(), bn.ErrInvalidNumber},
		{"Inf", math.Inf(1), bn.ErrInvalidNumber},
		{"float32 Inf", float32(math.Inf(-1)), bn.ErrInvalidNumber},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := bn.ToBn(test.in)
			assert.ErrorIs(t, err, test.target)
		})
	}
}

func TestToBigInt(t *testing.T) {
	x, err := bn.ToBigInt("0xff")
	require.NoError(t, err)
	assert.Equal(t, int64(255), x.Int64())

	_, err = bn.ToBigInt("1.5")
	assert.ErrorIs(t, err, bn.ErrInvalidNumber)
}

func TestMustToBn_Panics(t *testing.T) {
	assert.Panics(t, func() { bn.MustToBn(struct{}{}) })
}
