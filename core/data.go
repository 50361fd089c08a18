// SPDX-License-Identifier: MIT

package core

import "github.com/SebastianSpeitel/datalink/id"

// Data is the introspectable-value capability set.
//
// ProvideValue offers the value's scalars into req; ProvideLinks pushes its
// outgoing links into links, stopping as soon as a push returns Break.
// Both are pure reads: calling them twice behaves identically.
type Data interface {
	ProvideValue(req *Request)
	ProvideLinks(links Links) error
}

// Identifiable is the optional identity capability. ok is false when the
// value has no identity; a zero id.ID is never reported as present.
type Identifiable interface {
	ID() (id.ID, bool)
}

// Cloner is implemented by values that can produce an independent copy.
type Cloner interface {
	Clone() Data
}

// IDOf returns the identity of d, if it has one.
func IDOf(d Data) (id.ID, bool) {
	if d == nil {
		return id.ID{}, false
	}
	u, ok := d.(Identifiable)
	if !ok {
		return id.ID{}, false
	}
	i, ok := u.ID()
	if !ok || i.IsZero() {
		return id.ID{}, false
	}

	return i, true
}

// Same reports whether a and b are the same logical entity: both must report
// an identity and the identities must be equal.
func Same(a, b Data) bool {
	ia, ok := IDOf(a)
	if !ok {
		return false
	}
	ib, ok := IDOf(b)

	return ok && ia == ib
}

// Clone returns an independent copy of d when d supports it, and d otherwise.
func Clone(d Data) Data {
	switch v := d.(type) {
	case Cloner:
		return v.Clone()
	case Scalar:
		return v.Clone()
	}

	return d
}

// Empty is a value with no scalars, no links and no identity.
type Empty struct{}

func (Empty) ProvideValue(*Request) {}
func (Empty) ProvideLinks(Links) error { return nil }

// Boxed wraps another value and forwards the whole capability set to it.
// Its scalars are handed over atomically through Request.ProvideData.
type Boxed struct {
	inner Data
}

// Box wraps d.
func Box(d Data) *Boxed { return &Boxed{inner: d} }

// Unbox returns the wrapped value.
func (b *Boxed) Unbox() Data { return b.inner }

func (b *Boxed) ProvideValue(req *Request) { req.ProvideData(b.inner) }

func (b *Boxed) ProvideLinks(links Links) error {
	if b.inner == nil {
		return nil
	}

	return b.inner.ProvideLinks(links)
}

func (b *Boxed) ID() (id.ID, bool) { return IDOf(b.inner) }

// Identified attaches an identity to a value that has none of its own.
type Identified struct {
	Data
	id id.ID
}

// WithID returns d reporting identity i. A zero i reports no identity.
func WithID(d Data, i id.ID) *Identified {
	return &Identified{Data: d, id: i}
}

func (v *Identified) ID() (id.ID, bool) { return v.id, !v.id.IsZero() }
