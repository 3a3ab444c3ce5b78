package ecsig

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/coinbase/ecsig-go/pkg/ecsig/compactsig"
)

// PrivateKeySize is the length of a raw private key encoding: the 32-byte
// big-endian scalar.
const PrivateKeySize = 32

// Key is a handle to one secp256k1 key. The zero value is an empty handle;
// load a key into it before signing or verifying.
//
// A handle holds either a public key alone or a public/private pair. Loading
// into a non-empty handle replaces the previous key, zeroizing any private
// material it held. A Key must not be mutated concurrently; see the package
// documentation.
type Key struct {
	pub  *btcec.PublicKey
	priv *btcec.PrivateKey
}

// GenerateKey returns a handle holding a freshly generated private key.
func GenerateKey() (*Key, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return &Key{pub: priv.PubKey(), priv: priv}, nil
}

// LoadPublicKey loads a SEC1-encoded public key (compressed, uncompressed,
// or hybrid) into the handle. After a successful load the handle can verify
// but not sign.
func (k *Key) LoadPublicKey(data []byte) error {
	pub, err := btcec.ParsePubKey(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}
	k.wipe()
	k.pub = pub
	return nil
}

// LoadPrivateKey loads a raw 32-byte big-endian private scalar into the
// handle and derives its public point. The scalar must be in [1, N-1].
func (k *Key) LoadPrivateKey(data []byte) error {
	if len(data) != PrivateKeySize {
		return fmt.Errorf("%w: private key must be %d bytes, got %d",
			ErrKeyFormat, PrivateKeySize, len(data))
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(data)
	if overflow || scalar.IsZero() {
		scalar.Zero()
		return fmt.Errorf("%w: private scalar out of range", ErrKeyFormat)
	}
	priv := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()
	k.wipe()
	k.priv = priv
	k.pub = priv.PubKey()
	return nil
}

// Initialized reports whether a key has been loaded into the handle.
func (k *Key) Initialized() bool {
	return k.pub != nil
}

// HasPrivate reports whether the handle holds the private component.
func (k *Key) HasPrivate() bool {
	return k.priv != nil
}

// PublicKey returns the uncompressed SEC1 encoding of the loaded public key,
// or nil if the handle is empty. An empty handle is a normal state, not an
// error.
func (k *Key) PublicKey() []byte {
	if k.pub == nil {
		return nil
	}
	return k.pub.SerializeUncompressed()
}

// Sign produces a DER-encoded ECDSA signature over the given message digest
// using RFC 6979 deterministic nonce generation. The handle must hold a
// private key: Sign returns ErrNoKey on an empty handle and
// ErrPrivateKeyRequired when only a public key is loaded.
func (k *Key) Sign(digest []byte) ([]byte, error) {
	if k.pub == nil {
		return nil, ErrNoKey
	}
	if k.priv == nil {
		return nil, ErrPrivateKeyRequired
	}
	return btcecdsa.Sign(k.priv, digest).Serialize(), nil
}

// Verify checks a DER-encoded ECDSA signature over the given message digest
// against the loaded key. It returns ErrNoKey on an empty handle. Signature
// bytes the parser rejects count as a failed verification, not an error, so
// adversarial input can never abort the caller.
func (k *Key) Verify(digest, sig []byte) (bool, error) {
	if k.pub == nil {
		return false, ErrNoKey
	}
	parsed, err := btcecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, nil
	}
	return parsed.Verify(digest, k.pub), nil
}

// SignCompact signs the digest and returns the signature in the 64-byte
// compact R‖S form.
func (k *Key) SignCompact(digest []byte) ([]byte, error) {
	der, err := k.Sign(digest)
	if err != nil {
		return nil, err
	}
	return compactsig.FromDER(der)
}

// VerifyCompact checks a 64-byte compact signature over the given message
// digest. Inputs that are not exactly compactsig.Size bytes are rejected
// with compactsig.ErrInvalidLength before any verification is attempted.
func (k *Key) VerifyCompact(digest, compact []byte) (bool, error) {
	der, err := compactsig.ToDER(compact)
	if err != nil {
		return false, err
	}
	return k.Verify(digest, der)
}

// Close zeroizes any private key material and returns the handle to its
// empty state. It is safe to call Close multiple times.
func (k *Key) Close() {
	k.wipe()
}

func (k *Key) wipe() {
	if k.priv != nil {
		k.priv.Zero()
	}
	k.priv = nil
	k.pub = nil
}
