package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/blockchainethdev/ethereum-util/pkg/keys"
	"github.com/blockchainethdev/ethereum-util/pkg/sign"
)

func (o *Operator) handleSign(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(o.out, "Usage: sign <private_key|name> <digest>")
		return
	}

	privateKey, err := o.resolvePrivateKey(args[1])
	if err != nil {
		o.fail(ctx, "resolve key", err)
		return
	}

	signer, err := sign.NewEthereumSigner(privateKey, sign.WithEngine(o.engine), sign.WithScheme(o.scheme))
	if err != nil {
		o.fail(ctx, "load signer", err)
		return
	}

	sig, err := signer.SignHex(args[2])
	if err != nil {
		o.fail(ctx, "sign digest", err)
		return
	}

	o.renderFields(
		field{"r", sig.RHex()},
		field{"s", sig.SHex()},
		field{"recoveryParam", sig.RecoveryParam},
		field{"scheme", o.scheme.String()},
		field{"signature", sig.String()},
		field{"address", signer.Address()},
	)
}

func (o *Operator) handleRecover(ctx context.Context, args []string) {
	if len(args) < 5 {
		fmt.Fprintln(o.out, "Usage: recover <digest> <r> <s> <recovery_param>")
		return
	}

	v, err := strconv.ParseUint(args[4], 0, 64)
	if err != nil {
		o.fail(ctx, "parse recovery parameter", err)
		return
	}

	recoverer := sign.NewRecoverer(sign.WithEngine(o.engine))
	pub, err := recoverer.RecoverPublicKey(args[1], args[2], args[3], v)
	if err != nil {
		o.fail(ctx, "recover public key", err)
		return
	}
	addr, err := keys.PublicKeyToAddress(pub)
	if err != nil {
		o.fail(ctx, "derive address", err)
		return
	}

	scheme, _ := sign.SchemeOf(v)
	o.renderFields(
		field{"publicKey", pub},
		field{"address", addr},
		field{"scheme", scheme.String()},
	)
}
