package sign_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockchainethdev/ethereum-util/pkg/sign"
)

func TestScheme(t *testing.T) {
	tests := []struct {
		scheme  sign.Scheme
		offset  uint64
		name    string
		chainID uint64
		isEIP   bool
	}{
		{sign.Scheme{}, 35, "eip155(0)", 0, true},
		{sign.EIP155(5), 45, "eip155(5)", 5, true},
		{sign.Legacy(), 27, "legacy", 0, false},
		{sign.Raw(), 0, "raw", 0, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.offset, test.scheme.Offset())
			assert.Equal(t, test.offset+1, test.scheme.Encode(1))
			assert.Equal(t, test.name, test.scheme.String())

			chainID, ok := test.scheme.ChainID()
			assert.Equal(t, test.isEIP, ok)
			assert.Equal(t, test.chainID, chainID)
		})
	}

	assert.Equal(t, sign.EIP155(0), sign.DefaultScheme())
}

func TestParseScheme(t *testing.T) {
	s, err := sign.ParseScheme("eip155", 10)
	require.NoError(t, err)
	assert.Equal(t, sign.EIP155(10), s)

	s, err = sign.ParseScheme("legacy", 10)
	require.NoError(t, err)
	assert.Equal(t, sign.Legacy(), s)

	s, err = sign.ParseScheme("raw", 0)
	require.NoError(t, err)
	assert.Equal(t, sign.Raw(), s)

	_, err = sign.ParseScheme("eip2098", 0)
	assert.Error(t, err)

	t.Run("chain id bound", func(t *testing.T) {
		s, err := sign.ParseScheme("eip155", sign.MaxChainID)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64-1), s.Encode(1))

		for _, recid := range []byte{0, 1} {
			v := s.Encode(recid)
			back, err := sign.SchemeOf(v)
			require.NoError(t, err)
			assert.Equal(t, s, back)

			got, err := sign.NormalizeRecoveryParam(v)
			require.NoError(t, err)
			assert.Equal(t, recid, got)
		}

		_, err = sign.SchemeOf(math.MaxUint64)
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
		_, err = sign.NormalizeRecoveryParam(math.MaxUint64)
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)

		_, err = sign.ParseScheme("eip155", sign.MaxChainID+1)
		assert.Error(t, err)
		_, err = sign.ParseScheme("eip155", math.MaxUint64)
		assert.Error(t, err)

		// chain ids only bind eip155
		_, err = sign.ParseScheme("legacy", math.MaxUint64)
		assert.NoError(t, err)

		assert.Panics(t, func() { sign.EIP155(sign.MaxChainID + 1) })
	})
}

func TestNormalizeRecoveryParam(t *testing.T) {
	tests := []struct {
		v       uint64
		recid   byte
		scheme  sign.Scheme
		invalid bool
	}{
		{v: 0, recid: 0, scheme: sign.Raw()},
		{v: 1, recid: 1, scheme: sign.Raw()},
		{v: 27, recid: 0, scheme: sign.Legacy()},
		{v: 28, recid: 1, scheme: sign.Legacy()},
		{v: 35, recid: 0, scheme: sign.EIP155(0)},
		{v: 36, recid: 1, scheme: sign.EIP155(0)},
		{v: 37, recid: 0, scheme: sign.EIP155(1)},
		{v: 310, recid: 1, scheme: sign.EIP155(137)},
		{v: 2, invalid: true},
		{v: 26, invalid: true},
		{v: 29, invalid: true},
		{v: 34, invalid: true},
	}

	for _, test := range tests {
		recid, err := sign.NormalizeRecoveryParam(test.v)
		scheme, schemeErr := sign.SchemeOf(test.v)
		if test.invalid {
			assert.ErrorIs(t, err, sign.ErrInvalidSignature, test.v)
			assert.ErrorIs(t, schemeErr, sign.ErrInvalidSignature, test.v)
			continue
		}

		require.NoError(t, err)
		require.NoError(t, schemeErr)
		assert.Equal(t, test.recid, recid, test.v)
		assert.Equal(t, test.scheme, scheme, test.v)
		assert.Equal(t, test.v, scheme.Encode(recid))
	}
}
