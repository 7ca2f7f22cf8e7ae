package sign

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/blockchainethdev/ethereum-util/pkg/curve"
)

// ErrInvalidSignature is returned for signatures that cannot be used for recovery.
var ErrInvalidSignature = errors.New("invalid signature")

// Signer signs 32-byte digests.
type Signer interface {
	PublicKey() string                     // Uncompressed public key, 0x04 || X || Y.
	Address() string                       // Address derived from the public key.
	Sign(digest []byte) (Signature, error) // Sign signs a digest, not a raw message.
}

// Signature is a recoverable ECDSA signature.
type Signature struct {
	R             *big.Int
	S             *big.Int
	RecoveryParam uint64
}

// RecoveryID returns the 0 or 1 recovery id encoded in RecoveryParam.
func (s Signature) RecoveryID() (byte, error) {
	return NormalizeRecoveryParam(s.RecoveryParam)
}

// RHex returns r as 64 lowercase hex characters without a prefix.
func (s Signature) RHex() string {
	return scalarHex(s.R)
}

// SHex returns s as 64 lowercase hex characters without a prefix.
func (s Signature) SHex() string {
	return scalarHex(s.S)
}

// Bytes returns r || s || recid, the 65-byte form taken by curve engines.
func (s Signature) Bytes() ([]byte, error) {
	if !curve.InRange(s.R) || !curve.InRange(s.S) {
		return nil, fmt.Errorf("%w: r and s must be in [1, n-1]", ErrInvalidSignature)
	}
	recid, err := s.RecoveryID()
	if err != nil {
		return nil, err
	}

	b := make([]byte, curve.SignatureLength)
	s.R.FillBytes(b[:32])
	s.S.FillBytes(b[32:64])
	b[64] = recid
	return b, nil
}

// String returns r || s || v as a 0x-prefixed hex string, with v in as many
// bytes as it needs.
func (s Signature) String() string {
	v := new(big.Int).SetUint64(s.RecoveryParam).Bytes()
	if len(v) == 0 {
		v = []byte{0}
	}
	return fmt.Sprintf("0x%s%s%x", s.RHex(), s.SHex(), v)
}

type signatureJSON struct {
	R             *hexutil.Big   `json:"r"`
	S             *hexutil.Big   `json:"s"`
	RecoveryParam hexutil.Uint64 `json:"recoveryParam"`
}

// MarshalJSON encodes the signature as an object of hex quantities.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(signatureJSON{
		R:             (*hexutil.Big)(orZero(s.R)),
		S:             (*hexutil.Big)(orZero(s.S)),
		RecoveryParam: hexutil.Uint64(s.RecoveryParam),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var v signatureJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.R == nil || v.S == nil {
		return fmt.Errorf("%w: missing r or s", ErrInvalidSignature)
	}

	*s = Signature{
		R:             v.R.ToInt(),
		S:             v.S.ToInt(),
		RecoveryParam: uint64(v.RecoveryParam),
	}
	return nil
}

func scalarHex(x *big.Int) string {
	x = orZero(x)
	if x.Sign() < 0 || x.BitLen() > 256 {
		return x.Text(16)
	}
	return fmt.Sprintf("%064x", x)
}

func orZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}

// options configure signers and recoverers.
type options struct {
	engine curve.Engine
	scheme Scheme
}

// Option customizes NewEthereumSigner and NewRecoverer.
type Option func(*options)

// WithEngine selects the curve engine. The default is curve.Default().
func WithEngine(engine curve.Engine) Option {
	return func(o *options) {
		if engine != nil {
			o.engine = engine
		}
	}
}

// WithScheme selects the recovery parameter encoding used when signing.
func WithScheme(scheme Scheme) Option {
	return func(o *options) {
		o.scheme = scheme
	}
}

func newOptions(opts []Option) options {
	o := options{
		engine: curve.Default(),
		scheme: DefaultScheme(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
