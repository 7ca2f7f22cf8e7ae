package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/c-bata/go-prompt"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/term"

	"github.com/blockchainethdev/ethereum-util/cmd/ethutil/storage"
	"github.com/blockchainethdev/ethereum-util/pkg/curve"
	"github.com/blockchainethdev/ethereum-util/pkg/log"
	"github.com/blockchainethdev/ethereum-util/pkg/sign"
)

const tracerName = "ethutil"

type Operator struct {
	store    *storage.Storage
	engine   curve.Engine
	scheme   sign.Scheme
	registry *prometheus.Registry
	output   string
	out      io.Writer
	logger   log.Logger
	tracer   trace.Tracer

	// readSecret reads a private key without echoing it.
	readSecret func() ([]byte, error)

	exitCh   chan struct{}
	exitOnce sync.Once
}

func NewOperator(conf *Config, store *storage.Storage, logger log.Logger, out io.Writer) (*Operator, error) {
	engine, err := curve.ByName(conf.Engine)
	if err != nil {
		return nil, err
	}
	scheme, err := conf.SignatureScheme()
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}

	registry := prometheus.NewRegistry()
	logger = logger.WithName("operator")

	return &Operator{
		store:    store,
		engine:   curve.Instrument(engine, curve.NewMetricsWithRegistry(registry), logger),
		scheme:   scheme,
		registry: registry,
		output:   conf.Output,
		out:      out,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
		readSecret: func() ([]byte, error) {
			return term.ReadPassword(int(syscall.Stdin))
		},
		exitCh: make(chan struct{}),
	}, nil
}

func (o *Operator) Complete(d prompt.Document) []prompt.Suggest {
	return prompt.FilterHasPrefix(o.complete(d), d.GetWordBeforeCursor(), true)
}

func (o *Operator) complete(d prompt.Document) []prompt.Suggest {
	args := strings.Split(d.TextBeforeCursor(), " ")

	if len(args) < 2 {
		return []prompt.Suggest{
			{Text: "sha3", Description: "Keccak-256 digest of text, or of hex bytes with 'sha3 hex'"},
			{Text: "personal", Description: "Hash a message with the personal_sign prefix"},
			{Text: "tobn", Description: "Parse a number (prefix with int: or float: for native values)"},
			{Text: "pubkey", Description: "Derive the public key of a private key or stored key"},
			{Text: "address", Description: "Derive the address of a public key or stored key"},
			{Text: "sign", Description: "Sign a 32-byte digest"},
			{Text: "recover", Description: "Recover the public key behind a signature"},
			{Text: "import", Description: "Import a private key into the keystore"},
			{Text: "list", Description: "List stored keys"},
			{Text: "delete", Description: "Delete a stored key"},
			{Text: "metrics", Description: "Show curve engine metrics"},
			{Text: "help", Description: "Show available commands"},
			{Text: "exit", Description: "Exit the application"},
		}
	}

	if len(args) < 3 {
		switch args[0] {
		case "sha3":
			return []prompt.Suggest{{Text: "hex", Description: "Hash the bytes of a hex string"}}
		case "import", "list", "delete":
			return []prompt.Suggest{{Text: "key", Description: "A private key in the keystore"}}
		case "pubkey", "address", "sign":
			return o.getKeySuggestions()
		default:
			return nil
		}
	}

	if len(args) < 4 && args[0] == "delete" && args[1] == "key" {
		return o.getKeySuggestions()
	}

	return nil
}

// Execute runs one command line from the prompt. Each command runs in its
// own span, and handlers log through the context logger bound to it.
func (o *Operator) Execute(s string) {
	s = strings.TrimSpace(s)
	args := strings.Fields(s)
	if len(args) == 0 {
		return
	}

	ctx, span := o.tracer.Start(context.Background(), "ethutil."+args[0],
		trace.WithAttributes(attribute.String("command", args[0])))
	defer span.End()
	ctx = log.SetContextLogger(ctx, o.logger.WithKV("command", args[0]))

	switch args[0] {
	case "sha3":
		o.handleSha3(ctx, args, textAfter(s, 1))
	case "personal":
		o.handlePersonal(textAfter(s, 1))
	case "tobn":
		o.handleToBn(ctx, args)
	case "pubkey":
		o.handlePublicKey(ctx, args)
	case "address":
		o.handleAddress(ctx, args)
	case "sign":
		o.handleSign(ctx, args)
	case "recover":
		o.handleRecover(ctx, args)
	case "import":
		if len(args) < 2 || args[1] != "key" {
			fmt.Fprintln(o.out, "Usage: import key <name>")
			return
		}
		o.handleImportKey(ctx, args)
	case "list":
		if len(args) < 2 || args[1] != "keys" && args[1] != "key" {
			fmt.Fprintln(o.out, "Usage: list keys")
			return
		}
		o.handleListKeys(ctx)
	case "delete":
		if len(args) < 3 || args[1] != "key" {
			fmt.Fprintln(o.out, "Usage: delete key <name>")
			return
		}
		o.handleDeleteKey(ctx, args[2])
	case "metrics":
		o.handleMetrics(ctx)
	case "help":
		o.handleHelp()
	case "exit":
		o.exit()
	default:
		fmt.Fprintf(o.out, "Unknown command: %s\n", args[0])
	}
}

func (o *Operator) Wait() <-chan struct{} {
	return o.exitCh
}

func (o *Operator) exit() {
	o.exitOnce.Do(func() { close(o.exitCh) })
}

// fail reports err to the operator and logs it on the command's context logger.
func (o *Operator) fail(ctx context.Context, action string, err error) {
	fmt.Fprintf(o.out, "Failed to %s: %s\n", action, err.Error())
	log.FromContext(ctx).AddCallerSkip(1).Warn("command failed", "action", action, "error", err)
}

func (o *Operator) getKeySuggestions() []prompt.Suggest {
	if o.store == nil {
		return nil
	}

	dtos, err := o.store.GetPrivateKeys()
	if err != nil {
		o.logger.Warn("failed to fetch keys", "error", err)
		return nil
	}

	s := make([]prompt.Suggest, 0, len(dtos))
	for _, dto := range dtos {
		s = append(s, prompt.Suggest{
			Text:        dto.Name,
			Description: fmt.Sprintf("Key with address %s", dto.Address),
		})
	}
	return s
}

func (o *Operator) handleHelp() {
	rows := make([][]any, 0)
	for _, s := range o.complete(prompt.Document{}) {
		rows = append(rows, []any{s.Text, s.Description})
	}
	o.renderRecords([]string{"Command", "Description"}, rows)
}

// textAfter returns s without its first n words, keeping the inner spacing of
// the remainder.
func textAfter(s string, n int) string {
	rest := strings.TrimLeft(s, " \t")
	for i := 0; i < n; i++ {
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			return ""
		}
		rest = strings.TrimLeft(rest[idx:], " \t")
	}
	return rest
}
