package sign

import (
	"fmt"
	"math"
)

const (
	legacyOffset = 27
	eip155Offset = 35
)

// MaxChainID is the largest chain id whose recovery parameters fit in a uint64.
const MaxChainID = (math.MaxUint64 - eip155Offset - 1) / 2

type schemeKind uint8

const (
	kindEIP155 schemeKind = iota
	kindLegacy
	kindRaw
)

// Scheme maps a recovery id (0 or 1) to the recovery parameter carried in a
// Signature. The zero value is EIP155 with chain id 0.
type Scheme struct {
	kind    schemeKind
	chainID uint64
}

// EIP155 encodes the recovery id as 35 + 2*chainID + recid. It panics if
// chainID exceeds MaxChainID; use ParseScheme for untrusted input.
func EIP155(chainID uint64) Scheme {
	if chainID > MaxChainID {
		panic(fmt.Sprintf("sign: chain id %d exceeds %d", chainID, uint64(MaxChainID)))
	}
	return Scheme{kind: kindEIP155, chainID: chainID}
}

// Legacy encodes the recovery id as 27 + recid.
func Legacy() Scheme {
	return Scheme{kind: kindLegacy}
}

// Raw leaves the recovery id as 0 or 1.
func Raw() Scheme {
	return Scheme{kind: kindRaw}
}

// DefaultScheme is EIP155(0).
func DefaultScheme() Scheme {
	return EIP155(0)
}

// ParseScheme returns the scheme named "eip155", "legacy" or "raw". chainID
// only applies to "eip155".
func ParseScheme(name string, chainID uint64) (Scheme, error) {
	switch name {
	case "eip155":
		if chainID > MaxChainID {
			return Scheme{}, fmt.Errorf("chain id %d exceeds %d", chainID, uint64(MaxChainID))
		}
		return EIP155(chainID), nil
	case "legacy":
		return Legacy(), nil
	case "raw":
		return Raw(), nil
	default:
		return Scheme{}, fmt.Errorf("unknown signature scheme %q", name)
	}
}

// Offset is the value added to the recovery id.
func (s Scheme) Offset() uint64 {
	switch s.kind {
	case kindLegacy:
		return legacyOffset
	case kindRaw:
		return 0
	default:
		return eip155Offset + 2*s.chainID
	}
}

// Encode returns the recovery parameter for recid.
func (s Scheme) Encode(recid byte) uint64 {
	return s.Offset() + uint64(recid)
}

// ChainID returns the chain id of an EIP155 scheme.
func (s Scheme) ChainID() (uint64, bool) {
	return s.chainID, s.kind == kindEIP155
}

func (s Scheme) String() string {
	switch s.kind {
	case kindLegacy:
		return "legacy"
	case kindRaw:
		return "raw"
	default:
		return fmt.Sprintf("eip155(%d)", s.chainID)
	}
}

// NormalizeRecoveryParam reduces a recovery parameter in any scheme to the
// recovery id: 0 and 1 are raw, 27 and 28 legacy, and 35 or more EIP155.
func NormalizeRecoveryParam(v uint64) (byte, error) {
	switch {
	case v <= 1:
		return byte(v), nil
	case v == legacyOffset || v == legacyOffset+1:
		return byte(v - legacyOffset), nil
	case v >= eip155Offset && (v-eip155Offset)/2 <= MaxChainID:
		return byte((v - eip155Offset) % 2), nil
	default:
		return 0, fmt.Errorf("%w: recovery parameter %d", ErrInvalidSignature, v)
	}
}

// SchemeOf returns the scheme that produced the recovery parameter v.
func SchemeOf(v uint64) (Scheme, error) {
	switch {
	case v <= 1:
		return Raw(), nil
	case v == legacyOffset || v == legacyOffset+1:
		return Legacy(), nil
	case v >= eip155Offset && (v-eip155Offset)/2 <= MaxChainID:
		return EIP155((v - eip155Offset) / 2), nil
	default:
		return Scheme{}, fmt.Errorf("%w: recovery parameter %d", ErrInvalidSignature, v)
	}
}
