package curve

import (
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// EngineGeth is the name of the go-ethereum engine.
const EngineGeth = "geth"

var _ Engine = Geth{}

// Geth implements Engine with github.com/ethereum/go-ethereum/crypto.
type Geth struct{}

func (Geth) Name() string { return EngineGeth }

func (Geth) PointMultiply(privateKey []byte) ([]byte, error) {
	if !ValidScalar(privateKey) {
		return nil, ErrInvalidScalar
	}
	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScalar, err.Error())
	}
	return ethcrypto.FromECDSAPub(&key.PublicKey), nil
}

func (Geth) SignDeterministic(digest, privateKey []byte) ([]byte, error) {
	if err := checkSignInput(digest, privateKey); err != nil {
		return nil, err
	}
	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScalar, err.Error())
	}

	sig, err := ethcrypto.Sign(digest, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	return sig, nil
}

func (Geth) RecoverPoint(digest, signature []byte) ([]byte, error) {
	if err := checkRecoverInput(digest, signature); err != nil {
		return nil, err
	}

	pub, err := ethcrypto.Ecrecover(digest, signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRecoveryFailed, err.Error())
	}
	return pub, nil
}
