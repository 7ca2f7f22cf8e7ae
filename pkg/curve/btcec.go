package curve

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// EngineBtcec is the name of the btcec engine.
const EngineBtcec = "btcec"

// compactHeader is the value btcec adds to the recovery id in the first
// byte of a compact signature (uncompressed keys).
const compactHeader = 27

var _ Engine = Btcec{}

// Btcec implements Engine with github.com/btcsuite/btcd/btcec/v2.
type Btcec struct{}

func (Btcec) Name() string { return EngineBtcec }

func (Btcec) PointMultiply(privateKey []byte) ([]byte, error) {
	if !ValidScalar(privateKey) {
		return nil, ErrInvalidScalar
	}
	_, pub := btcec.PrivKeyFromBytes(privateKey)
	return pub.SerializeUncompressed(), nil
}

// SignDeterministic reorders btcec's [header || r || s] compact form into
// r || s || recid.
func (Btcec) SignDeterministic(digest, privateKey []byte) ([]byte, error) {
	if err := checkSignInput(digest, privateKey); err != nil {
		return nil, err
	}
	priv, _ := btcec.PrivKeyFromBytes(privateKey)

	compact := ecdsa.SignCompact(priv, digest, false)
	if len(compact) != SignatureLength {
		return nil, fmt.Errorf("unexpected compact signature length %d", len(compact))
	}

	sig := make([]byte, SignatureLength)
	copy(sig, compact[1:])
	sig[64] = compact[0] - compactHeader
	return sig, nil
}

func (Btcec) RecoverPoint(digest, signature []byte) ([]byte, error) {
	if err := checkRecoverInput(digest, signature); err != nil {
		return nil, err
	}

	compact := make([]byte, SignatureLength)
	compact[0] = signature[64] + compactHeader
	copy(compact[1:], signature[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRecoveryFailed, err.Error())
	}
	return pub.SerializeUncompressed(), nil
}
