package bn

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	_ Number = Integer{}
	_ Number = DecimalParts{}
)

// Number is the result of ToBn. It is implemented only by Integer and DecimalParts.
type Number interface {
	String() string
	isNumber()
}

// Integer is a whole number result.
type Integer struct {
	Int *big.Int
}

// NewInteger wraps x.
func NewInteger(x int64) Integer {
	return Integer{Int: big.NewInt(x)}
}

// String returns the base-10 form of the value.
func (i Integer) String() string {
	if i.Int == nil {
		return "0"
	}
	return i.Int.String()
}

func (Integer) isNumber() {}

// DecimalParts is a decimal value kept as separate integer and fraction parts.
// Sign is nil unless the source carried a leading minus, in which case it is -1.
// FractionDigits is the number of digits written after the point, so "0.1" and
// "0.10" are distinct.
type DecimalParts struct {
	Integer        *big.Int
	Fraction       *big.Int
	FractionDigits int
	Sign           *big.Int
}

// Negative reports whether the value was written with a leading minus.
func (d DecimalParts) Negative() bool {
	return d.Sign != nil && d.Sign.Sign() < 0
}

// Exact returns the value as a decimal.Decimal.
func (d DecimalParts) Exact() decimal.Decimal {
	v := decimal.NewFromBigInt(orZero(d.Integer), 0).
		Add(decimal.NewFromBigInt(orZero(d.Fraction), -int32(d.FractionDigits)))
	if d.Negative() {
		return v.Neg()
	}
	return v
}

// String renders the parts the way they were written, e.g. "-1.69" or "0.10".
func (d DecimalParts) String() string {
	var sb strings.Builder
	if d.Negative() {
		sb.WriteByte('-')
	}
	sb.WriteString(orZero(d.Integer).String())
	sb.WriteByte('.')

	frac := orZero(d.Fraction).String()
	if d.FractionDigits == 0 && frac == "0" {
		return sb.String()
	}
	if pad := d.FractionDigits - len(frac); pad > 0 {
		sb.WriteString(strings.Repeat("0", pad))
	}
	sb.WriteString(frac)
	return sb.String()
}

func (DecimalParts) isNumber() {}

func orZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}
