// Package keccak exposes the Keccak-256 digest used throughout Ethereum.
// This is the original Keccak padding, not the NIST SHA3-256 variant.
package keccak

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
)

// Size is the length of a digest in bytes.
const Size = 32

// Sum256 returns the Keccak-256 digest of the concatenated inputs.
func Sum256(data ...[]byte) []byte {
	return ethcrypto.Keccak256(data...)
}

// Sha3 hashes the bytes of s and returns the digest as 64 lowercase hex
// characters without a prefix. An empty input yields ok == false.
func Sha3(s string) (digest string, ok bool) {
	if s == "" {
		return "", false
	}
	return common.Bytes2Hex(Sum256([]byte(s))), true
}

// Sha3Hex hashes the bytes that the hex string s decodes to.
func Sha3Hex(s string) (string, error) {
	b, err := hexstr.Decode(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode input: %w", err)
	}
	return common.Bytes2Hex(Sum256(b)), nil
}
