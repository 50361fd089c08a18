// SPDX-License-Identifier: MIT

package record

import (
	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
	"github.com/SebastianSpeitel/datalink/query"
)

// Expose selects how a field takes part in the record.
type Expose uint8

const (
	// AsValue offers the field's scalars as scalars of the record.
	AsValue Expose = 1 << iota
	// AsLink pushes the field as a link keyed by its name.
	AsLink
	// AsBoth does both.
	AsBoth = AsValue | AsLink
)

// Access selects how a field value is handed out.
type Access uint8

const (
	// Ref lends the stored value.
	Ref Access = iota
	// Clone hands out core.Clone of the stored value on every offer.
	Clone
)

// Field is one row of the policy table.
type Field struct {
	Name   string
	Value  core.Data // nil: absent optional field
	Expose Expose
	Access Access
	Skip   bool
}

// Val declares a field offered as a scalar only.
func Val(name string, v core.Data) Field { return Field{Name: name, Value: v, Expose: AsValue} }

// Link declares a field exposed as a link only.
func Link(name string, v core.Data) Field { return Field{Name: name, Value: v, Expose: AsLink} }

// Both declares a field offered as a scalar and exposed as a link.
func Both(name string, v core.Data) Field { return Field{Name: name, Value: v, Expose: AsBoth} }

// Cloned returns f with Clone access.
func (f Field) Cloned() Field {
	f.Access = Clone
	return f
}

// Skipped returns f excluded from the record.
func (f Field) Skipped() Field {
	f.Skip = true
	return f
}

func (f Field) active(e Expose) bool {
	return !f.Skip && f.Value != nil && f.Expose&e != 0
}

func (f Field) value() core.Data {
	if f.Access == Clone {
		return core.Clone(f.Value)
	}

	return f.Value
}

// Record is a Data built from a field-policy table.
type Record struct {
	typeName string
	variant  bool
	fields   []Field
	ident    id.ID
}

// New returns a record named typeName with the given fields, in order.
func New(typeName string, fields ...Field) *Record {
	return &Record{typeName: typeName, fields: append([]Field(nil), fields...)}
}

// Variant returns an enum-like value: it offers name as a string scalar before
// its fields and links like a record.
func Variant(name string, fields ...Field) *Record {
	r := New(name, fields...)
	r.variant = true

	return r
}

// WithID sets the identity of r and returns r.
func (r *Record) WithID(i id.ID) *Record {
	r.ident = i
	return r
}

// TypeName returns the record or variant name.
func (r *Record) TypeName() string { return r.typeName }

// ID reports the identity set by WithID.
func (r *Record) ID() (id.ID, bool) { return r.ident, !r.ident.IsZero() }

// Fields returns a copy of the policy table.
func (r *Record) Fields() []Field { return append([]Field(nil), r.fields...) }

// Get returns the value of the first active field called name.
func (r *Record) Get(name string) (core.Data, bool) {
	for _, f := range r.fields {
		if f.Name == name && !f.Skip && f.Value != nil {
			return f.value(), true
		}
	}

	return nil, false
}

// ProvideValue offers the variant name, then every AsValue field whole.
func (r *Record) ProvideValue(req *core.Request) {
	if r.variant {
		req.ProvideString(r.typeName)
	}
	for _, f := range r.fields {
		if f.active(AsValue) {
			req.ProvideData(f.value())
		}
	}
}

// ProvideLinks pushes every AsLink field keyed by its name.
func (r *Record) ProvideLinks(links core.Links) error {
	for _, f := range r.fields {
		if !f.active(AsLink) {
			continue
		}
		ctl, err := links.Push(f.value(), core.Str(f.Name))
		if err != nil || ctl == core.Break {
			return err
		}
	}

	return nil
}

// QueryLinks answers q. A query on one exact key visits only the fields with
// that name.
func (r *Record) QueryLinks(sink core.Links, q *query.Query) error {
	sel := q.Sink(sink)
	name, exact := q.Link.ExactKey()
	if !exact {
		return r.ProvideLinks(sel)
	}
	for _, f := range r.fields {
		if f.Name != name || !f.active(AsLink) {
			continue
		}
		ctl, err := sel.Push(f.value(), core.Str(f.Name))
		if err != nil || ctl == core.Break {
			return err
		}
	}

	return nil
}

// Clone returns a record whose field values are cloned.
func (r *Record) Clone() core.Data {
	c := *r
	c.fields = make([]Field, len(r.fields))
	for i, f := range r.fields {
		if f.Value != nil {
			f.Value = core.Clone(f.Value)
		}
		c.fields[i] = f
	}

	return &c
}
