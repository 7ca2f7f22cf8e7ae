// Package bn parses heterogeneous numeric input into arbitrary-precision values.
//
// ToBn accepts native Go integers and floats, strings and *big.Int values and
// returns a Number, which is either an Integer or a DecimalParts:
//
//	n, err := bn.ToBn("-1.69")
//	switch v := n.(type) {
//	case bn.Integer:
//	    fmt.Println(v.Int)
//	case bn.DecimalParts:
//	    fmt.Println(v.Integer, v.Fraction, v.FractionDigits, v.Negative())
//	}
//
// # Numeric base
//
// The base depends on where the value came from. Native integers, and the
// integer and fraction parts of anything containing a decimal point, are base
// 10. Every other string is base 16, with or without a "0x" prefix, so "11"
// parses to 17 while the int 11 stays 11.
package bn
