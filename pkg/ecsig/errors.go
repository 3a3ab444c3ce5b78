package ecsig

import (
	"errors"
)

// ErrKeyFormat indicates key bytes that do not decode to a valid secp256k1
// key: a public encoding that is not a point on the curve, or a private
// encoding that is not a 32-byte scalar in [1, N-1].
var ErrKeyFormat = errors.New("malformed key encoding")

// ErrNoKey indicates an operation that requires a loaded key was attempted
// on an empty handle. This is a caller bug, not a verification failure.
var ErrNoKey = errors.New("no key loaded")

// ErrPrivateKeyRequired indicates a signing attempt on a handle that holds
// only a public key.
var ErrPrivateKeyRequired = errors.New("signing requires a private key")
