package bn

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
)

var (
	// ErrInvalidInputType is returned when ToBn receives a value of an unsupported type.
	ErrInvalidInputType = errors.New("invalid input type")
	// ErrInvalidNumber is returned for malformed decimal strings and for NaN or infinite floats.
	ErrInvalidNumber = errors.New("invalid number")
)

// IsNegative reports whether s starts with a minus sign.
func IsNegative(s string) bool {
	return strings.HasPrefix(s, "-")
}

// ToBn converts v into a Number.
//
// A *big.Int (or an existing Number) is returned unchanged. Native integers
// are read in base 10. Floats are first rendered as their shortest decimal
// form and then parsed like a string. Strings containing a point are split
// into base-10 parts; any other string is hex. The empty string is zero.
func ToBn(v any) (Number, error) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrInvalidInputType)
		}
		return Integer{Int: x}, nil
	case Integer:
		if x.Int == nil {
			return nil, fmt.Errorf("%w: empty Integer", ErrInvalidInputType)
		}
		return x, nil
	case DecimalParts:
		return x, nil
	case string:
		return parseString(x)
	case int:
		return NewInteger(int64(x)), nil
	case int8:
		return NewInteger(int64(x)), nil
	case int16:
		return NewInteger(int64(x)), nil
	case int32:
		return NewInteger(int64(x)), nil
	case int64:
		return NewInteger(x), nil
	case uint:
		return Integer{Int: new(big.Int).SetUint64(uint64(x))}, nil
	case uint8:
		return Integer{Int: new(big.Int).SetUint64(uint64(x))}, nil
	case uint16:
		return Integer{Int: new(big.Int).SetUint64(uint64(x))}, nil
	case uint32:
		return Integer{Int: new(big.Int).SetUint64(uint64(x))}, nil
	case uint64:
		return Integer{Int: new(big.Int).SetUint64(x)}, nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidNumber, x)
		}
		return parseFloatString(decimal.NewFromFloat32(x).String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidNumber, x)
		}
		return parseFloatString(decimal.NewFromFloat(x).String())
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInputType, v)
	}
}

// MustToBn is like ToBn but panics on error.
func MustToBn(v any) Number {
	n, err := ToBn(v)
	if err != nil {
		panic(err)
	}
	return n
}

// ToBigInt is like ToBn but only accepts values that resolve to an Integer.
func ToBigInt(v any) (*big.Int, error) {
	n, err := ToBn(v)
	if err != nil {
		return nil, err
	}

	i, ok := n.(Integer)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrInvalidNumber, n.String())
	}
	return i.Int, nil
}

func parseString(s string) (Number, error) {
	if s == "" {
		return NewInteger(0), nil
	}
	if strings.Contains(s, ".") {
		return parseDecimal(s)
	}
	return parseHex(s)
}

// parseFloatString handles the canonical rendering of a native float. Without
// a point the value stays base 10, since it came from a number.
func parseFloatString(s string) (Number, error) {
	if strings.Contains(s, ".") {
		return parseDecimal(s)
	}

	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return Integer{Int: x}, nil
}

func parseDecimal(s string) (Number, error) {
	var sign *big.Int
	body := s
	if IsNegative(body) {
		sign = big.NewInt(-1)
		body = body[1:]
	}

	intDigits, fracDigits, _ := strings.Cut(body, ".")
	if strings.Contains(fracDigits, ".") {
		return nil, fmt.Errorf("%w: %q has more than one point", ErrInvalidNumber, s)
	}

	integer, err := parseBase10(intDigits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, s)
	}
	fraction, err := parseBase10(fracDigits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, s)
	}

	return DecimalParts{
		Integer:        integer,
		Fraction:       fraction,
		FractionDigits: len(fracDigits),
		Sign:           sign,
	}, nil
}

func parseBase10(digits string) (*big.Int, error) {
	if digits == "" {
		return new(big.Int), nil
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, ErrInvalidNumber
		}
	}

	x, _ := new(big.Int).SetString(digits, 10)
	return x, nil
}

func parseHex(s string) (Number, error) {
	negative := IsNegative(s)
	body := hexstr.StripZero(strings.TrimPrefix(s, "-"))
	if body == "" {
		return NewInteger(0), nil
	}
	if !hexstr.IsHex(body) || hexstr.IsZeroPrefixed(body) {
		return nil, fmt.Errorf("%w: %q", hexstr.ErrInvalidHex, s)
	}

	x, _ := new(big.Int).SetString(body, 16)
	if negative {
		x.Neg(x)
	}
	return Integer{Int: x}, nil
}
