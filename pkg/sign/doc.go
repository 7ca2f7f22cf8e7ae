// Package sign produces and verifies recoverable secp256k1 signatures over
// 32-byte digests.
//
// The primary types are:
//
//   - Signer: signs digests with a private key it never exposes
//   - Recoverer: recovers the public key or address behind a signature
//   - Signature: r, s and the encoded recovery parameter
//   - Scheme: how the 0/1 recovery id is offset into the recovery parameter
//
// Signing is deterministic (RFC 6979), so the same key and digest always give
// the same signature. The recovery id is offset according to a Scheme. The
// default is EIP155 with chain id 0, i.e. 35 + recid; Legacy gives 27 + recid
// and Raw leaves it at 0 or 1. Recovery accepts any of the three encodings.
//
// # Usage
//
//	signer, err := sign.NewEthereumSigner(privateKeyHex, sign.WithScheme(sign.Legacy()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	digest := keccak.Sum256([]byte("hello world"))
//	sig, err := signer.Sign(digest)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	addr, err := sign.RecoverAddress(hexstr.Encode(digest), sig)
//	fmt.Println(addr == signer.Address())
package sign
