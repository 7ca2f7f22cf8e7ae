package curve_test

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockchainethdev/ethereum-util/pkg/curve"
)

const (
	testPrivateKey = "4646464646464646464646464646464646464646464646464646464646464646"
	testPublicKey  = "044bc2a31265153f07e70e0bab08724e6b85e217f8cd628ceb62974247bb493382ce28cab79ad7119ee1ad3ebcdb98a16805211530ecc6cfefa1b88e6dff99232a"
	testDigest     = "daf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e53"
	testR          = "28ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276"
	testS          = "67cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func engines() []curve.Engine {
	return []curve.Engine{curve.Geth{}, curve.Btcec{}}
}

func TestEngines(t *testing.T) {
	priv := mustDecode(t, testPrivateKey)
	digest := mustDecode(t, testDigest)

	for _, engine := range engines() {
		t.Run(engine.Name(), func(t *testing.T) {
			t.Run("PointMultiply", func(t *testing.T) {
				pub, err := engine.PointMultiply(priv)
				require.NoError(t, err)
				assert.Len(t, pub, curve.PublicKeyLength)
				assert.Equal(t, testPublicKey, hex.EncodeToString(pub))
			})

			t.Run("SignDeterministic", func(t *testing.T) {
				sig, err := engine.SignDeterministic(digest, priv)
				require.NoError(t, err)
				require.Len(t, sig, curve.SignatureLength)
				assert.Equal(t, testR, hex.EncodeToString(sig[:32]))
				assert.Equal(t, testS, hex.EncodeToString(sig[32:64]))
				assert.Equal(t, byte(0), sig[64])

				again, err := engine.SignDeterministic(digest, priv)
				require.NoError(t, err)
				assert.Equal(t, sig, again)
			})

			t.Run("RecoverPoint", func(t *testing.T) {
				sig := append(mustDecode(t, testR+testS), 0)
				pub, err := engine.RecoverPoint(digest, sig)
				require.NoError(t, err)
				assert.Equal(t, testPublicKey, hex.EncodeToString(pub))
			})

			t.Run("round trip with other keys", func(t *testing.T) {
				for i := byte(1); i <= 5; i++ {
					key := bytes.Repeat([]byte{i}, 32)
					msg := bytes.Repeat([]byte{0xa0 + i}, 32)

					pub, err := engine.PointMultiply(key)
					require.NoError(t, err)
					sig, err := engine.SignDeterministic(msg, key)
					require.NoError(t, err)
					recovered, err := engine.RecoverPoint(msg, sig)
					require.NoError(t, err)
					assert.Equal(t, pub, recovered)
				}
			})

			t.Run("rejects invalid input", func(t *testing.T) {
				_, err := engine.PointMultiply(make([]byte, 32))
				assert.ErrorIs(t, err, curve.ErrInvalidScalar)

				_, err = engine.SignDeterministic(digest[:31], priv)
				assert.Error(t, err)

				_, err = engine.SignDeterministic(digest, curve.Order().Bytes())
				assert.ErrorIs(t, err, curve.ErrInvalidScalar)

				badID := append(mustDecode(t, testR+testS), 2)
				_, err = engine.RecoverPoint(digest, badID)
				assert.ErrorIs(t, err, curve.ErrRecoveryFailed)

				_, err = engine.RecoverPoint(digest, make([]byte, 64))
				assert.ErrorIs(t, err, curve.ErrRecoveryFailed)

				offCurve := make([]byte, curve.SignatureLength)
				offCurve[31] = 5
				copy(offCurve[32:64], mustDecode(t, testS))
				for _, recid := range []byte{0, 1} {
					offCurve[64] = recid
					_, err = engine.RecoverPoint(digest, offCurve)
					assert.ErrorIs(t, err, curve.ErrRecoveryFailed, "recid %d", recid)
				}
			})
		})
	}
}

func TestEnginesAgree(t *testing.T) {
	key := mustDecode(t, "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	digest := mustDecode(t, testDigest)

	gethSig, err := curve.Geth{}.SignDeterministic(digest, key)
	require.NoError(t, err)
	btcecSig, err := curve.Btcec{}.SignDeterministic(digest, key)
	require.NoError(t, err)
	assert.Equal(t, gethSig, btcecSig)
}

func TestValidScalar(t *testing.T) {
	n := curve.Order()
	nMinusOne := new(big.Int).Sub(n, big.NewInt(1)).FillBytes(make([]byte, 32))

	tests := []struct {
		name     string
		in       []byte
		expected bool
	}{
		{"one", append(make([]byte, 31), 1), true},
		{"n-1", nMinusOne, true},
		{"zero", make([]byte, 32), false},
		{"n", n.FillBytes(make([]byte, 32)), false},
		{"all ones", bytes.Repeat([]byte{0xff}, 32), false},
		{"short", make([]byte, 31), false},
		{"long", append(make([]byte, 32), 1), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, curve.ValidScalar(test.in))
		})
	}
}

func TestInRange(t *testing.T) {
	n := curve.Order()
	assert.True(t, curve.InRange(big.NewInt(1)))
	assert.True(t, curve.InRange(new(big.Int).Sub(n, big.NewInt(1))))
	assert.False(t, curve.InRange(big.NewInt(0)))
	assert.False(t, curve.InRange(n))
	assert.False(t, curve.InRange(big.NewInt(-1)))
	assert.False(t, curve.InRange(nil))
}

func TestByName(t *testing.T) {
	for _, name := range curve.Names() {
		engine, err := curve.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, engine.Name())
	}

	_, err := curve.ByName("openssl")
	assert.ErrorIs(t, err, curve.ErrUnknownEngine)

	assert.Equal(t, curve.EngineGeth, curve.Default().Name())
}
