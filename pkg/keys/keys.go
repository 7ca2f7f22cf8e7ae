// Package keys derives public keys and addresses from secp256k1 private keys.
//
// All inputs and outputs are hex strings. Inputs may omit the "0x" prefix;
// outputs always carry it.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/blockchainethdev/ethereum-util/pkg/curve"
	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
	"github.com/blockchainethdev/ethereum-util/pkg/keccak"
)

// AddressLength is the size of an account address in bytes.
const AddressLength = 20

// uncompressedTag is the first byte of an uncompressed SEC1 public key.
const uncompressedTag = 0x04

// ErrInvalidKey is returned for malformed private or public keys.
var ErrInvalidKey = errors.New("invalid key")

// ParsePrivateKey decodes a 64 hex character private key and checks that it is
// a valid scalar, i.e. in [1, n-1].
func ParsePrivateKey(privateKeyHex string) ([]byte, error) {
	raw := hexstr.StripZero(privateKeyHex)
	if len(raw) != 2*curve.PrivateKeyLength {
		return nil, fmt.Errorf("%w: private key must be %d hex characters, got %d", ErrInvalidKey, 2*curve.PrivateKeyLength, len(raw))
	}

	b, err := hexstr.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if !curve.ValidScalar(b) {
		return nil, fmt.Errorf("%w: private key out of range", ErrInvalidKey)
	}
	return b, nil
}

// PrivateKeyToPublicKey returns the uncompressed public key, "0x04" followed by
// X and Y, using the default engine.
func PrivateKeyToPublicKey(privateKeyHex string) (string, error) {
	return DerivePublicKey(curve.Default(), privateKeyHex)
}

// DerivePublicKey is PrivateKeyToPublicKey with an explicit engine.
func DerivePublicKey(engine curve.Engine, privateKeyHex string) (string, error) {
	priv, err := ParsePrivateKey(privateKeyHex)
	if err != nil {
		return "", err
	}

	pub, err := engine.PointMultiply(priv)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return hexstr.Encode(pub), nil
}

// PublicKeyToAddress returns the address of a public key: the last 20 bytes of
// the Keccak-256 digest of X || Y. The key may be given as 64 bytes (X || Y)
// or 65 bytes with the 0x04 tag, hex encoded with or without "0x".
func PublicKeyToAddress(publicKeyHex string) (string, error) {
	xy, err := publicKeyXY(publicKeyHex)
	if err != nil {
		return "", err
	}

	digest := keccak.Sum256(xy)
	return hexstr.Encode(digest[keccak.Size-AddressLength:]), nil
}

// ChecksumAddress returns the EIP-55 mixed case form of a 40 hex character address.
func ChecksumAddress(address string) (string, error) {
	b, err := hexstr.DecodeFixed(address, AddressLength)
	if err != nil {
		return "", err
	}
	return common.BytesToAddress(b).Hex(), nil
}

// EqualAddress compares two addresses ignoring case and the "0x" prefix.
func EqualAddress(a, b string) bool {
	return strings.EqualFold(hexstr.StripZero(a), hexstr.StripZero(b))
}

func publicKeyXY(publicKeyHex string) ([]byte, error) {
	b, err := hexstr.Decode(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	switch len(b) {
	case curve.PublicKeyLength - 1:
		return b, nil
	case curve.PublicKeyLength:
		if b[0] != uncompressedTag {
			return nil, fmt.Errorf("%w: public key prefix 0x%02x", ErrInvalidKey, b[0])
		}
		return b[1:], nil
	default:
		return nil, fmt.Errorf("%w: public key must be %d or %d bytes, got %d", ErrInvalidKey, curve.PublicKeyLength-1, curve.PublicKeyLength, len(b))
	}
}
