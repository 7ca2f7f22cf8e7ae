// Package hexstr normalizes the hex strings exchanged by the rest of the module.
//
// Inputs may or may not carry the "0x" prefix. Every helper here treats the
// prefix as optional and case-sensitive (only lowercase "0x" is recognised),
// while hex digits themselves are case-insensitive.
package hexstr

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Prefix is the marker that identifies a hex string.
const Prefix = "0x"

// ErrInvalidHex is returned when a string is not valid hex or has the wrong length.
var ErrInvalidHex = errors.New("invalid hex")

// IsZeroPrefixed reports whether s starts with "0x".
func IsZeroPrefixed(s string) bool {
	return len(s) >= len(Prefix) && s[:len(Prefix)] == Prefix
}

// StripZero removes a single leading "0x" from s.
func StripZero(s string) string {
	if IsZeroPrefixed(s) {
		return s[len(Prefix):]
	}
	return s
}

// AddZero prefixes s with "0x" unless it already is.
func AddZero(s string) string {
	if IsZeroPrefixed(s) {
		return s
	}
	return Prefix + s
}

// IsHex reports whether s, after stripping "0x", is a non-empty run of hex digits.
func IsHex(s string) bool {
	s = StripZero(s)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// Decode decodes s into bytes. The "0x" prefix is optional, an even number of
// digits is required.
func Decode(s string) ([]byte, error) {
	raw := StripZero(s)
	if !IsHex(raw) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(raw))
	}

	b, err := hexutil.Decode(Prefix + raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHex, err.Error())
	}
	return b, nil
}

// DecodeFixed is like Decode but also requires exactly n bytes.
func DecodeFixed(s string, n int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHex, n, len(b))
	}
	return b, nil
}

// Encode returns b as a lowercase, "0x"-prefixed hex string.
func Encode(b []byte) string {
	return hexutil.Encode(b)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
