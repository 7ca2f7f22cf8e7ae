package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/blockchainethdev/ethereum-util/pkg/bn"
	"github.com/blockchainethdev/ethereum-util/pkg/keccak"
	"github.com/blockchainethdev/ethereum-util/pkg/personal"
)

func (o *Operator) handleSha3(ctx context.Context, args []string, text string) {
	if len(args) >= 2 && args[1] == "hex" {
		if len(args) < 3 {
			fmt.Fprintln(o.out, "Usage: sha3 hex <0x...>")
			return
		}

		digest, err := keccak.Sha3Hex(args[2])
		if err != nil {
			o.fail(ctx, "hash hex input", err)
			return
		}
		o.renderFields(field{"input", args[2]}, field{"digest", digest})
		return
	}

	digest, ok := keccak.Sha3(text)
	if !ok {
		fmt.Fprintln(o.out, "No digest: input is empty")
		return
	}
	o.renderFields(field{"input", text}, field{"digest", digest})
}

func (o *Operator) handlePersonal(message string) {
	o.renderFields(
		field{"message", message},
		field{"bytes", len(message)},
		field{"digest", personal.HashMessage(message)},
	)
}

func (o *Operator) handleToBn(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(o.out, "Usage: tobn <value|int:value|float:value>")
		return
	}

	in, err := parseNumericArg(args[1])
	if err != nil {
		o.fail(ctx, "parse argument", err)
		return
	}

	n, err := bn.ToBn(in)
	if err != nil {
		o.fail(ctx, "parse number", err)
		return
	}

	switch v := n.(type) {
	case bn.Integer:
		o.renderFields(
			field{"kind", "integer"},
			field{"value", v.String()},
			field{"hex", fmt.Sprintf("%#x", v.Int)},
		)
	case bn.DecimalParts:
		sign := "absent"
		if v.Negative() {
			sign = v.Sign.String()
		}
		o.renderFields(
			field{"kind", "decimal"},
			field{"integer", v.Integer.String()},
			field{"fraction", v.Fraction.String()},
			field{"fractionDigits", v.FractionDigits},
			field{"sign", sign},
			field{"value", fmtDec(v)},
		)
	}
}

// parseNumericArg turns "int:<n>" and "float:<f>" into native numbers so that
// their base 10 paths can be reached from the prompt. Anything else stays a string.
func parseNumericArg(arg string) (any, error) {
	switch {
	case strings.HasPrefix(arg, "int:"):
		return strconv.ParseInt(strings.TrimPrefix(arg, "int:"), 10, 64)
	case strings.HasPrefix(arg, "float:"):
		return strconv.ParseFloat(strings.TrimPrefix(arg, "float:"), 64)
	default:
		return arg, nil
	}
}

func fmtDec(d bn.DecimalParts) string {
	value := d.Exact()
	if value.Equal(value.Floor()) {
		return value.StringFixed(1)
	}
	return value.String()
}
