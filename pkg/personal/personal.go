// Package personal hashes messages the way the personal_sign RPC method does.
package personal

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/blockchainethdev/ethereum-util/pkg/keccak"
)

// MessagePrefix is prepended, together with the message length, before hashing.
const MessagePrefix = "\x19Ethereum Signed Message:\n"

// Prefix returns the framed payload: MessagePrefix, the byte length of
// message in decimal, then message itself.
func Prefix(message string) []byte {
	length := strconv.Itoa(len(message))
	b := make([]byte, 0, len(MessagePrefix)+len(length)+len(message))
	b = append(b, MessagePrefix...)
	b = append(b, length...)
	return append(b, message...)
}

// HashMessage returns the Keccak-256 digest of the framed message as 64 hex
// characters without a prefix.
func HashMessage(message string) string {
	return common.Bytes2Hex(keccak.Sum256(Prefix(message)))
}
