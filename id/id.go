// SPDX-License-Identifier: MIT

package id

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"lukechampine.com/uint128"
)

// Sentinel errors for identity construction.
var (
	// ErrZero indicates an attempt to build an ID from the reserved zero value.
	ErrZero = errors.New("id: zero is not a valid identity")

	// ErrSyntax indicates that Parse received text in neither UUID nor hex form.
	ErrSyntax = errors.New("id: invalid identity syntax")
)

// ID is a non-zero 128-bit identity. The zero ID means "no identity".
type ID struct {
	v uint128.Uint128
}

// Namespace is the root namespace for well-known identities built with Named.
var Namespace = MustFromUUID(uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/SebastianSpeitel/datalink")))

// New builds an ID from its high and low 64-bit halves.
func New(hi, lo uint64) (ID, error) {
	return FromUint128(uint128.New(lo, hi))
}

// MustNew is like New but panics on the zero value. Intended for constants.
func MustNew(hi, lo uint64) ID {
	i, err := New(hi, lo)
	if err != nil {
		panic(err)
	}

	return i
}

// FromUint64 builds an ID whose high half is zero.
func FromUint64(v uint64) (ID, error) {
	return FromUint128(uint128.From64(v))
}

// FromUint128 builds an ID from a 128-bit unsigned value.
func FromUint128(u uint128.Uint128) (ID, error) {
	if u.IsZero() {
		return ID{}, ErrZero
	}

	return ID{v: u}, nil
}

// FromUUID builds an ID from the big-endian bytes of a UUID.
// The nil UUID maps to ErrZero.
func FromUUID(u uuid.UUID) (ID, error) {
	return FromUint128(uint128.FromBytesBE(u[:]))
}

// MustFromUUID is like FromUUID but panics on the nil UUID.
func MustFromUUID(u uuid.UUID) ID {
	i, err := FromUUID(u)
	if err != nil {
		panic(err)
	}

	return i
}

// Random returns a fresh random identity (a version 4 UUID).
// Version bits guarantee the result is never zero.
func Random() ID {
	return MustFromUUID(uuid.New())
}

// Named returns the deterministic identity of name inside space.
// Equal (space, name) pairs always yield equal IDs, which makes Named the way to
// declare well-known constant identities.
func Named(space ID, name string) ID {
	return MustFromUUID(uuid.NewSHA1(space.UUID(), []byte(name)))
}

// Parse reads an ID from canonical UUID text (with or without hyphens,
// braces or the urn:uuid: prefix).
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}

	return FromUUID(u)
}

// IsZero reports whether i is the reserved "no identity" value.
func (i ID) IsZero() bool { return i.v.IsZero() }

// Hi returns the high 64 bits.
func (i ID) Hi() uint64 { return i.v.Hi }

// Lo returns the low 64 bits.
func (i ID) Lo() uint64 { return i.v.Lo }

// Uint128 returns the identity as a 128-bit unsigned value.
func (i ID) Uint128() uint128.Uint128 { return i.v }

// UUID returns the identity as a UUID (big-endian byte order).
func (i ID) UUID() uuid.UUID {
	var u uuid.UUID
	i.v.PutBytesBE(u[:])

	return u
}

// Compare orders IDs numerically: -1, 0 or +1.
func (i ID) Compare(other ID) int { return i.v.Cmp(other.v) }

// String renders the identity in canonical UUID form, or "<none>" for zero.
func (i ID) String() string {
	if i.IsZero() {
		return "<none>"
	}

	return i.UUID().String()
}
