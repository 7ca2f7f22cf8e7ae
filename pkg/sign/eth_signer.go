package sign

import (
	"fmt"
	"math/big"

	"github.com/blockchainethdev/ethereum-util/pkg/curve"
	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
	"github.com/blockchainethdev/ethereum-util/pkg/keys"
)

var _ Signer = (*EthereumSigner)(nil)

// EthereumSigner signs with a secp256k1 private key.
type EthereumSigner struct {
	privateKey []byte
	publicKey  string
	address    string
	engine     curve.Engine
	scheme     Scheme
}

// NewEthereumSigner creates a signer from a hex-encoded private key.
func NewEthereumSigner(privateKeyHex string, opts ...Option) (*EthereumSigner, error) {
	o := newOptions(opts)

	priv, err := keys.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("could not parse private key: %w", err)
	}
	pub, err := o.engine.PointMultiply(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", keys.ErrInvalidKey, err)
	}

	publicKey := hexstr.Encode(pub)
	address, err := keys.PublicKeyToAddress(publicKey)
	if err != nil {
		return nil, err
	}

	return &EthereumSigner{
		privateKey: priv,
		publicKey:  publicKey,
		address:    address,
		engine:     o.engine,
		scheme:     o.scheme,
	}, nil
}

func (s *EthereumSigner) PublicKey() string { return s.publicKey }

func (s *EthereumSigner) Address() string { return s.address }

// Scheme returns the recovery parameter encoding used by Sign.
func (s *EthereumSigner) Scheme() Scheme { return s.scheme }

// Sign expects a 32-byte digest, e.g. a Keccak-256 hash.
func (s *EthereumSigner) Sign(digest []byte) (Signature, error) {
	if len(digest) != curve.DigestLength {
		return Signature{}, fmt.Errorf("%w: digest must be %d bytes, got %d", hexstr.ErrInvalidHex, curve.DigestLength, len(digest))
	}

	sig, err := s.engine.SignDeterministic(digest, s.privateKey)
	if err != nil {
		return Signature{}, fmt.Errorf("failed to sign digest: %w", err)
	}

	return Signature{
		R:             new(big.Int).SetBytes(sig[:32]),
		S:             new(big.Int).SetBytes(sig[32:64]),
		RecoveryParam: s.scheme.Encode(sig[64]),
	}, nil
}

// SignHex is Sign for a hex-encoded digest.
func (s *EthereumSigner) SignHex(digestHex string) (Signature, error) {
	digest, err := hexstr.DecodeFixed(digestHex, curve.DigestLength)
	if err != nil {
		return Signature{}, fmt.Errorf("failed to decode digest: %w", err)
	}
	return s.Sign(digest)
}

// Ecsign signs a hex-encoded 32-byte digest with the default engine and scheme.
func Ecsign(privateKeyHex, digestHex string) (Signature, error) {
	signer, err := NewEthereumSigner(privateKeyHex)
	if err != nil {
		return Signature{}, err
	}
	return signer.SignHex(digestHex)
}
