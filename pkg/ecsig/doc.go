// Package ecsig provides secp256k1 ECDSA key handling, signing, and
// verification for protocols that carry signatures in a fixed 64-byte
// compact form.
//
// The package wraps the btcec/dcrd secp256k1 implementation behind a small
// key-handle type. A Key starts out empty and becomes usable once a public
// or private key is loaded into it; signing additionally requires the
// private component. Signatures are produced and consumed in the standard
// DER encoding; conversion to and from the compact R‖S wire form lives in
// the compactsig subpackage.
//
// # Key Lifecycle
//
//	var key ecsig.Key
//	if err := key.LoadPrivateKeyFile(path); err != nil {
//	    return err
//	}
//	defer key.Close()
//
//	der, err := key.Sign(digest)
//
// Loading a key into an already-loaded handle replaces the previous key.
// Close zeroizes any private material and returns the handle to its empty
// state.
//
// # Concurrency
//
// A Key is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize access. The compactsig codec is stateless and
// needs no synchronization.
package ecsig
