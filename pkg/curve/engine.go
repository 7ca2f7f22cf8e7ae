// Package curve is the boundary to the secp256k1 arithmetic used for keys and
// signatures. Point multiplication, deterministic signing and public key
// recovery are delegated to an Engine, so the higher level packages never
// depend on a particular curve library.
//
// Two engines are provided. Geth goes through go-ethereum's crypto package
// and Btcec through btcsuite's btcec/v2. Both produce RFC 6979 signatures
// normalised to low S, which makes their outputs interchangeable.
package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PrivateKeyLength is the size of a serialized private key scalar.
	PrivateKeyLength = 32
	// PublicKeyLength is the size of an uncompressed public key, 0x04 || X || Y.
	PublicKeyLength = 65
	// SignatureLength is the size of r || s || recid.
	SignatureLength = 65
	// DigestLength is the size of a message digest accepted for signing.
	DigestLength = 32
)

var (
	// ErrInvalidScalar is returned for private keys outside [1, n-1].
	ErrInvalidScalar = errors.New("invalid scalar")
	// ErrRecoveryFailed is returned when no public key matches a signature.
	ErrRecoveryFailed = errors.New("public key recovery failed")
	// ErrUnknownEngine is returned by ByName for an unregistered engine.
	ErrUnknownEngine = errors.New("unknown curve engine")
)

// Engine performs the elliptic curve operations needed for Ethereum accounts.
// Implementations must be safe for concurrent use.
type Engine interface {
	// Name identifies the engine, e.g. in configuration and metrics.
	Name() string
	// PointMultiply returns the uncompressed public key for a 32-byte private key.
	PointMultiply(privateKey []byte) ([]byte, error)
	// SignDeterministic signs a 32-byte digest and returns r || s || recid,
	// where recid is 0 or 1.
	SignDeterministic(digest, privateKey []byte) ([]byte, error)
	// RecoverPoint returns the uncompressed public key that produced the
	// r || s || recid signature over digest.
	RecoverPoint(digest, signature []byte) ([]byte, error)
}

// Order returns the order n of the secp256k1 group.
func Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

// ValidScalar reports whether b is a 32-byte big-endian integer in [1, n-1].
func ValidScalar(b []byte) bool {
	if len(b) != PrivateKeyLength {
		return false
	}

	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return false
	}
	return !s.IsZero()
}

// InRange reports whether 1 <= x < n.
func InRange(x *big.Int) bool {
	return x != nil && x.Sign() > 0 && x.Cmp(secp256k1.S256().Params().N) < 0
}

// Default returns the engine used when none is configured.
func Default() Engine {
	return Geth{}
}

// Names lists the engines accepted by ByName.
func Names() []string {
	return []string{EngineGeth, EngineBtcec}
}

// ByName returns the engine registered under name.
func ByName(name string) (Engine, error) {
	switch name {
	case EngineGeth:
		return Geth{}, nil
	case EngineBtcec:
		return Btcec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

func checkSignInput(digest, privateKey []byte) error {
	if len(digest) != DigestLength {
		return fmt.Errorf("digest must be %d bytes, got %d", DigestLength, len(digest))
	}
	if !ValidScalar(privateKey) {
		return ErrInvalidScalar
	}
	return nil
}

func checkRecoverInput(digest, signature []byte) error {
	if len(digest) != DigestLength {
		return fmt.Errorf("digest must be %d bytes, got %d", DigestLength, len(digest))
	}
	if len(signature) != SignatureLength {
		return fmt.Errorf("%w: signature must be %d bytes, got %d", ErrRecoveryFailed, SignatureLength, len(signature))
	}
	if signature[64] > 1 {
		return fmt.Errorf("%w: recovery id %d", ErrRecoveryFailed, signature[64])
	}
	return nil
}
