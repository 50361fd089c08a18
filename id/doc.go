// SPDX-License-Identifier: MIT
// Package id defines the stable identity of introspectable values.
//
// An ID wraps a non-zero unsigned 128-bit integer. The zero value of ID is
// never a valid identity: it is reserved so that "no identity" is expressed
// as absence (a zero ID, or a false second return from an ID method) rather
// than as a sentinel that could collide with a real identifier.
//
// Two values describe the same logical entity iff both report an ID and the
// IDs are equal. Absence on either side means "not determined equal", never
// "equal".
//
// Constructors:
//
//	New(hi, lo)          from two 64-bit halves; ErrZero if both are zero
//	FromUint64(v)        from a single 64-bit value
//	FromUint128(u)       from a lukechampine.com/uint128 value
//	FromUUID(u)          from a github.com/google/uuid value
//	Random()             random (version 4) UUID, never zero
//	Named(space, name)   deterministic well-known identity (SHA-1 name-based UUID)
//	Parse(s)             canonical UUID text or 32 hex digits
//
// IDs are comparable with == and usable as map keys.
package id
