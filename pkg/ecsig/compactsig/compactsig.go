package compactsig

import (
	"errors"
	"fmt"
)

const (
	// Size is the exact length of a compact signature.
	Size = 64

	// ComponentSize is the fixed width of each of the R and S components.
	ComponentSize = 32
)

// ErrInvalidLength indicates a compact signature input that is not exactly
// Size bytes. No truncation or padding fallback is attempted.
var ErrInvalidLength = errors.New("compact signature must be exactly 64 bytes")

// ErrEncoding indicates a signature encoding fault: DER input that does not
// parse, an integer too large for the compact form, or empty encoder output.
// It points at a non-conformant signature or a curve-parameter mismatch, not
// at adversarial-but-well-formed input.
var ErrEncoding = errors.New("malformed signature encoding")

const (
	// asn1SequenceID is the ASN.1 identifier for the outer DER sequence.
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for the R and S integers.
	asn1IntegerID = 0x02

	// minDERLen is the shortest possible DER signature, with R and S one
	// byte each: 0x30 <len> 0x02 0x01 <r> 0x02 0x01 <s>.
	minDERLen = 8

	// maxDERLen is the longest possible DER signature for a 256-bit curve,
	// with R and S 33 bytes each (32 value bytes plus a sign-guard byte).
	maxDERLen = 72
)

// FromDER converts a DER-encoded ECDSA signature to the 64-byte compact
// form. The outer encoding must be a well-formed DER sequence of two
// integers; structural faults and integers wider than 32 significant bytes
// are reported as ErrEncoding.
func FromDER(sig []byte) ([]byte, error) {
	// 0x30 <data len> 0x02 <R len> <R> 0x02 <S len> <S>
	if len(sig) < minDERLen {
		return nil, fmt.Errorf("%w: too short: %d < %d", ErrEncoding, len(sig), minDERLen)
	}
	if len(sig) > maxDERLen {
		return nil, fmt.Errorf("%w: too long: %d > %d", ErrEncoding, len(sig), maxDERLen)
	}
	if sig[0] != asn1SequenceID {
		return nil, fmt.Errorf("%w: wrong sequence identifier %#02x", ErrEncoding, sig[0])
	}
	if int(sig[1]) != len(sig)-2 {
		return nil, fmt.Errorf("%w: bad data length %d for %d-byte signature",
			ErrEncoding, sig[1], len(sig))
	}
	if sig[2] != asn1IntegerID {
		return nil, fmt.Errorf("%w: wrong R integer identifier %#02x", ErrEncoding, sig[2])
	}
	rLen := int(sig[3])
	sTypeOffset := 4 + rLen
	if rLen == 0 || sTypeOffset+2 > len(sig) {
		return nil, fmt.Errorf("%w: bad R length %d", ErrEncoding, rLen)
	}
	if sig[sTypeOffset] != asn1IntegerID {
		return nil, fmt.Errorf("%w: wrong S integer identifier %#02x",
			ErrEncoding, sig[sTypeOffset])
	}
	sLen := int(sig[sTypeOffset+1])
	sOffset := sTypeOffset + 2
	if sLen == 0 || sOffset+sLen != len(sig) {
		return nil, fmt.Errorf("%w: bad S length %d", ErrEncoding, sLen)
	}

	rBytes := sig[4:sTypeOffset]
	sBytes := sig[sOffset:]
	if err := checkDERInt(rBytes, "R"); err != nil {
		return nil, err
	}
	if err := checkDERInt(sBytes, "S"); err != nil {
		return nil, err
	}

	r, err := fixed32(rBytes)
	if err != nil {
		return nil, err
	}
	s, err := fixed32(sBytes)
	if err != nil {
		return nil, err
	}

	out := make([]byte, Size)
	copy(out[:ComponentSize], r[:])
	copy(out[ComponentSize:], s[:])
	return out, nil
}

// ToDER converts a 64-byte compact signature to the DER encoding. Inputs of
// any other length fail with ErrInvalidLength; no partial parsing happens.
// The R and S values are re-encoded minimally, with a sign-guard byte
// prepended whenever the high bit of the leading value byte is set.
func ToDER(compact []byte) ([]byte, error) {
	if len(compact) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(compact))
	}

	var r, s [ComponentSize]byte
	copy(r[:], compact[:ComponentSize])
	copy(s[:], compact[ComponentSize:])
	canonR := signedInt(r)
	canonS := signedInt(s)

	totalLen := 6 + len(canonR) + len(canonS)
	der := make([]byte, 0, totalLen)
	der = append(der, asn1SequenceID)
	der = append(der, byte(totalLen-2))
	der = append(der, asn1IntegerID)
	der = append(der, byte(len(canonR)))
	der = append(der, canonR...)
	der = append(der, asn1IntegerID)
	der = append(der, byte(len(canonS)))
	der = append(der, canonS...)
	if len(der) == 0 {
		return nil, fmt.Errorf("%w: empty encoder output", ErrEncoding)
	}
	return der, nil
}

// checkDERInt enforces the DER rules for one encoded integer: the value must
// not be negative, and leading zero bytes are only allowed as a sign guard
// for a value whose high bit is set.
func checkDERInt(v []byte, name string) error {
	if v[0]&0x80 != 0 {
		return fmt.Errorf("%w: %s is negative", ErrEncoding, name)
	}
	if len(v) > 1 && v[0] == 0x00 && v[1]&0x80 == 0 {
		return fmt.Errorf("%w: %s has excess padding", ErrEncoding, name)
	}
	return nil
}

// fixed32 serializes big-endian integer bytes into exactly 32 bytes,
// left-zero-extending short values and discarding leading zero bytes,
// including a sign-guard byte on a 33-byte encoding. Values needing more
// than 32 significant bytes cannot occur in a well-formed 256-bit-curve
// signature and fail with ErrEncoding.
func fixed32(v []byte) ([ComponentSize]byte, error) {
	var out [ComponentSize]byte
	for len(v) > 0 && v[0] == 0x00 {
		v = v[1:]
	}
	if len(v) > ComponentSize {
		return out, fmt.Errorf("%w: integer exceeds %d bytes", ErrEncoding, ComponentSize)
	}
	copy(out[ComponentSize-len(v):], v)
	return out, nil
}

// signedInt encodes a fixed 32-byte unsigned integer using signed big-number
// rules: leading zero bytes are trimmed so long as the next byte does not
// have its high bit set, which also leaves a single zero byte in place as
// the sign guard when the value's own top bit is set. A zero value encodes
// as one zero byte.
func signedInt(v [ComponentSize]byte) []byte {
	var buf [ComponentSize + 1]byte
	copy(buf[1:], v[:])
	b := buf[:]
	for len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		b = b[1:]
	}
	return b
}
