// Package compactsig converts ECDSA signatures between the standard DER
// encoding and the fixed 64-byte compact form.
//
// The compact form is the concatenation of the signature's R and S values,
// each serialized as a 32-byte big-endian unsigned integer with no framing:
//
//	R (32 bytes) ‖ S (32 bytes)
//
// Protocols that embed signatures inline in fixed-layout binary structures
// use this form because its size is known up front, unlike DER where each
// integer is length-prefixed and may carry a leading zero byte to keep the
// value from being read as negative. The codec reverses that sign-guard
// convention exactly in both directions, so a DER signature converted to
// compact and back verifies identically to the original.
//
// The codec performs no range checks against the curve order: an R or S of
// zero, or one at or above the group order, passes through losslessly and is
// left for the downstream verifier to reject. Both conversions are pure
// functions and safe for concurrent use.
package compactsig
