package keys_test

import (
	"strings"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockchainethdev/ethereum-util/pkg/curve"
	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
	"github.com/blockchainethdev/ethereum-util/pkg/keys"
)

const (
	testPrivateKey = "0x4646464646464646464646464646464646464646464646464646464646464646"
	testPublicKey  = "0x044bc2a31265153f07e70e0bab08724e6b85e217f8cd628ceb62974247bb493382ce28cab79ad7119ee1ad3ebcdb98a16805211530ecc6cfefa1b88e6dff99232a"
	testAddress    = "0x9d8a62f656a8d1615c1294fd71e9cfb3e4855a4f"
)

func TestPrivateKeyToPublicKey(t *testing.T) {
	for _, in := range []string{testPrivateKey, hexstr.StripZero(testPrivateKey), strings.ToUpper(hexstr.StripZero(testPrivateKey))} {
		pub, err := keys.PrivateKeyToPublicKey(in)
		require.NoError(t, err)
		assert.Equal(t, testPublicKey, pub)
		assert.Len(t, pub, 132)
	}

	t.Run("every engine", func(t *testing.T) {
		for _, name := range curve.Names() {
			engine, err := curve.ByName(name)
			require.NoError(t, err)

			pub, err := keys.DerivePublicKey(engine, testPrivateKey)
			require.NoError(t, err)
			assert.Equal(t, testPublicKey, pub, name)
		}
	})
}

func TestParsePrivateKey(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		target error
	}{
		{"too short", "0x4646", keys.ErrInvalidKey},
		{"too long", testPrivateKey + "46", keys.ErrInvalidKey},
		{"not hex", "0x" + strings.Repeat("zz", 32), hexstr.ErrInvalidHex},
		{"zero", "0x" + strings.Repeat("00", 32), keys.ErrInvalidKey},
		{"group order", "0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", keys.ErrInvalidKey},
		{"empty", "", keys.ErrInvalidKey},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := keys.ParsePrivateKey(test.in)
			assert.ErrorIs(t, err, test.target)
			assert.ErrorIs(t, err, keys.ErrInvalidKey)
		})
	}

	b, err := keys.ParsePrivateKey(testPrivateKey)
	require.NoError(t, err)
	assert.Len(t, b, 32)
}

func TestPublicKeyToAddress(t *testing.T) {
	raw := hexstr.StripZero(testPublicKey)
	inputs := []string{
		testPublicKey,
		raw,
		raw[2:],
		"0x" + raw[2:],
		strings.ToUpper(raw),
	}

	for _, in := range inputs {
		addr, err := keys.PublicKeyToAddress(in)
		require.NoError(t, err)
		assert.Equal(t, testAddress, addr)
	}

	t.Run("matches go-ethereum", func(t *testing.T) {
		key, err := ethcrypto.GenerateKey()
		require.NoError(t, err)

		addr, err := keys.PublicKeyToAddress(hexstr.Encode(ethcrypto.FromECDSAPub(&key.PublicKey)))
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(ethcrypto.PubkeyToAddress(key.PublicKey).Hex()), addr)
	})

	t.Run("rejects", func(t *testing.T) {
		_, err := keys.PublicKeyToAddress("0x1234")
		assert.ErrorIs(t, err, keys.ErrInvalidKey)

		_, err = keys.PublicKeyToAddress("0x03" + raw[2:])
		assert.ErrorIs(t, err, keys.ErrInvalidKey)

		_, err = keys.PublicKeyToAddress("hello")
		assert.ErrorIs(t, err, hexstr.ErrInvalidHex)
	})
}

func TestChecksumAddress(t *testing.T) {
	addr, err := keys.ChecksumAddress(testAddress)
	require.NoError(t, err)
	assert.True(t, keys.EqualAddress(testAddress, addr))
	assert.NotEqual(t, testAddress, addr)

	_, err = keys.ChecksumAddress("0x1234")
	assert.ErrorIs(t, err, hexstr.ErrInvalidHex)
}
