package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blockchainethdev/ethereum-util/cmd/ethutil/storage"
	"github.com/blockchainethdev/ethereum-util/pkg/curve"
	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
	"github.com/blockchainethdev/ethereum-util/pkg/keys"
	"github.com/blockchainethdev/ethereum-util/pkg/log"
)

// resolvePrivateKey returns the stored key named arg, or arg itself when no
// such key exists.
func (o *Operator) resolvePrivateKey(arg string) (string, error) {
	if o.store == nil || hexstr.IsHex(arg) && len(hexstr.StripZero(arg)) == 64 {
		return arg, nil
	}

	dto, err := o.store.GetPrivateKeyByName(arg)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return arg, nil
		}
		return "", err
	}
	return dto.PrivateKey, nil
}

// resolvePublicKey returns the public key of the stored key named arg. An
// argument that already has the length of a public key in hex is used as is,
// as is any name not in the store.
func (o *Operator) resolvePublicKey(arg string) (string, error) {
	if o.store == nil || isPublicKeyHex(arg) {
		return arg, nil
	}

	dto, err := o.store.GetPrivateKeyByName(arg)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return arg, nil
		}
		return "", err
	}
	return dto.PublicKey, nil
}

// isPublicKeyHex reports whether s is 64 raw or 65 tagged bytes of hex.
func isPublicKeyHex(s string) bool {
	raw := hexstr.StripZero(s)
	return hexstr.IsHex(raw) && (len(raw) == 2*(curve.PublicKeyLength-1) || len(raw) == 2*curve.PublicKeyLength)
}

func (o *Operator) handlePublicKey(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(o.out, "Usage: pubkey <private_key|name>")
		return
	}

	privateKey, err := o.resolvePrivateKey(args[1])
	if err != nil {
		o.fail(ctx, "resolve key", err)
		return
	}

	pub, err := keys.DerivePublicKey(o.engine, privateKey)
	if err != nil {
		o.fail(ctx, "derive public key", err)
		return
	}
	o.renderFields(field{"publicKey", pub})
}

func (o *Operator) handleAddress(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(o.out, "Usage: address <public_key|name>")
		return
	}

	publicKey, err := o.resolvePublicKey(args[1])
	if err != nil {
		o.fail(ctx, "resolve key", err)
		return
	}

	addr, err := keys.PublicKeyToAddress(publicKey)
	if err != nil {
		o.fail(ctx, "derive address", err)
		return
	}
	checksummed, err := keys.ChecksumAddress(addr)
	if err != nil {
		o.fail(ctx, "checksum address", err)
		return
	}
	o.renderFields(field{"address", addr}, field{"checksum", checksummed})
}

func (o *Operator) handleImportKey(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(o.out, "Usage: import key <name>")
		return
	}
	if o.store == nil {
		fmt.Fprintln(o.out, "Keystore is not available.")
		return
	}

	fmt.Fprintln(o.out, "Paste private key:")
	privateKeyHex, err := o.readSecret()
	if err != nil {
		o.fail(ctx, "read key", err)
		return
	}

	dto, err := o.store.AddPrivateKey(args[2], strings.TrimSpace(string(privateKeyHex)))
	if err != nil {
		o.fail(ctx, "import private key", err)
		return
	}
	log.FromContext(ctx).Info("private key imported", "name", dto.Name, "address", dto.Address)
	fmt.Fprintf(o.out, "Private key imported successfully: %s (%s)\n", dto.Name, dto.Address)
}

func (o *Operator) handleListKeys(ctx context.Context) {
	if o.store == nil {
		fmt.Fprintln(o.out, "Keystore is not available.")
		return
	}

	dtos, err := o.store.GetPrivateKeys()
	if err != nil {
		o.fail(ctx, "list keys", err)
		return
	}
	if len(dtos) == 0 {
		fmt.Fprintln(o.out, "No keys imported.")
		return
	}

	rows := make([][]any, 0, len(dtos))
	for _, dto := range dtos {
		addr, err := keys.ChecksumAddress(dto.Address)
		if err != nil {
			addr = dto.Address
		}
		rows = append(rows, []any{dto.Name, addr, dto.CreatedAt.Format(time.RFC3339)})
	}
	o.renderRecords([]string{"Name", "Address", "Imported"}, rows)
}

func (o *Operator) handleDeleteKey(ctx context.Context, name string) {
	if o.store == nil {
		fmt.Fprintln(o.out, "Keystore is not available.")
		return
	}

	if err := o.store.DeletePrivateKey(name); err != nil {
		o.fail(ctx, "delete key", err)
		return
	}
	log.FromContext(ctx).Info("private key deleted", "name", name)
	fmt.Fprintf(o.out, "Private key deleted: %s\n", name)
}
