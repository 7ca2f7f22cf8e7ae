package sign

import (
	"fmt"
	"math/big"

	"github.com/blockchainethdev/ethereum-util/pkg/curve"
	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
	"github.com/blockchainethdev/ethereum-util/pkg/keys"
)

// Recoverer recovers signers from signatures.
type Recoverer struct {
	engine curve.Engine
}

// NewRecoverer returns a Recoverer. Only WithEngine affects it.
func NewRecoverer(opts ...Option) *Recoverer {
	return &Recoverer{engine: newOptions(opts).engine}
}

var defaultRecoverer = NewRecoverer()

// RecoverPublicKey recovers the uncompressed public key from a hex digest, hex
// r and s, and a recovery parameter in any supported scheme.
func (r *Recoverer) RecoverPublicKey(digestHex, rHex, sHex string, recoveryParam uint64) (string, error) {
	rInt, err := parseScalar(rHex)
	if err != nil {
		return "", fmt.Errorf("failed to parse r: %w", err)
	}
	sInt, err := parseScalar(sHex)
	if err != nil {
		return "", fmt.Errorf("failed to parse s: %w", err)
	}
	return r.RecoverSignature(digestHex, Signature{R: rInt, S: sInt, RecoveryParam: recoveryParam})
}

// RecoverSignature is RecoverPublicKey for a Signature value.
func (r *Recoverer) RecoverSignature(digestHex string, sig Signature) (string, error) {
	digest, err := hexstr.DecodeFixed(digestHex, curve.DigestLength)
	if err != nil {
		return "", fmt.Errorf("failed to decode digest: %w", err)
	}

	raw, err := sig.Bytes()
	if err != nil {
		return "", err
	}

	pub, err := r.engine.RecoverPoint(digest, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return hexstr.Encode(pub), nil
}

// RecoverAddress recovers the address that produced sig over the digest.
func (r *Recoverer) RecoverAddress(digestHex string, sig Signature) (string, error) {
	pub, err := r.RecoverSignature(digestHex, sig)
	if err != nil {
		return "", err
	}
	return keys.PublicKeyToAddress(pub)
}

// Verify reports whether sig over the digest was produced by address.
func (r *Recoverer) Verify(digestHex string, sig Signature, address string) (bool, error) {
	recovered, err := r.RecoverAddress(digestHex, sig)
	if err != nil {
		return false, err
	}
	return keys.EqualAddress(recovered, address), nil
}

// RecoverPublicKey uses the default engine.
func RecoverPublicKey(digestHex, rHex, sHex string, recoveryParam uint64) (string, error) {
	return defaultRecoverer.RecoverPublicKey(digestHex, rHex, sHex, recoveryParam)
}

// RecoverAddress uses the default engine.
func RecoverAddress(digestHex string, sig Signature) (string, error) {
	return defaultRecoverer.RecoverAddress(digestHex, sig)
}

// Verify uses the default engine.
func Verify(digestHex string, sig Signature, address string) (bool, error) {
	return defaultRecoverer.Verify(digestHex, sig, address)
}

// parseScalar reads a hex integer of at most 32 bytes. Leading zeros may be
// omitted.
func parseScalar(s string) (*big.Int, error) {
	raw := hexstr.StripZero(s)
	if !hexstr.IsHex(raw) || hexstr.IsZeroPrefixed(raw) || len(raw) > 64 {
		return nil, fmt.Errorf("%w: %q", hexstr.ErrInvalidHex, s)
	}
	x, _ := new(big.Int).SetString(raw, 16)
	return x, nil
}
