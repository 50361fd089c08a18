// SPDX-License-Identifier: MIT

package core

import "lukechampine.com/uint128"

// Erased is the single-entry form of a Receiver, used across boundaries where
// the concrete receiver type is unknown. It accepts exactly the closed
// primitive set (as Scalars) plus whole Data values.
type Erased interface {
	Accepts() Set
	Receive(s Scalar, owned bool)
	ReceiveData(d Data)
}

// Erase wraps a typed Receiver as an Erased one. Scalars outside r's declared
// set are dropped; whole values go to r's DataReceiver if it has one and are
// otherwise re-offered scalar by scalar.
func Erase(r Receiver) Erased {
	if fe, ok := r.(*fromErased); ok {
		return fe.e
	}

	return &erased{r: r, accept: r.Accepts()}
}

type erased struct {
	r      Receiver
	accept Set
}

func (e *erased) Accepts() Set { return e.accept }

func (e *erased) Receive(s Scalar, owned bool) {
	if e.accept.Has(s.kind) {
		deliver(e.r, s, owned)
	}
}

func (e *erased) ReceiveData(d Data) {
	if d == nil {
		return
	}
	if dr, ok := e.r.(DataReceiver); ok {
		dr.ReceiveData(d)
		return
	}
	d.ProvideValue(NewRequest(e.r))
}

// FromErased turns an Erased receiver back into a typed Receiver whose
// callbacks pack each value into a Scalar.
func FromErased(e Erased) Receiver {
	if er, ok := e.(*erased); ok {
		return er.r
	}

	return &fromErased{e: e}
}

type fromErased struct {
	e Erased
}

func (f *fromErased) Accepts() Set { return f.e.Accepts() }
func (f *fromErased) Bool(v bool) { f.e.Receive(Bool(v), false) }
func (f *fromErased) U8(v uint8) { f.e.Receive(U8(v), false) }
func (f *fromErased) U16(v uint16) { f.e.Receive(U16(v), false) }
func (f *fromErased) U32(v uint32) { f.e.Receive(U32(v), false) }
func (f *fromErased) U64(v uint64) { f.e.Receive(U64(v), false) }
func (f *fromErased) U128(v uint128.Uint128) { f.e.Receive(U128(v), false) }
func (f *fromErased) I8(v int8) { f.e.Receive(I8(v), false) }
func (f *fromErased) I16(v int16) { f.e.Receive(I16(v), false) }
func (f *fromErased) I32(v int32) { f.e.Receive(I32(v), false) }
func (f *fromErased) I64(v int64) { f.e.Receive(I64(v), false) }
func (f *fromErased) I128(v Int128) { f.e.Receive(I128(v), false) }
func (f *fromErased) F32(v float32) { f.e.Receive(F32(v), false) }
func (f *fromErased) F64(v float64) { f.e.Receive(F64(v), false) }
func (f *fromErased) Char(v rune) { f.e.Receive(Char(v), false) }
func (f *fromErased) Str(v string) { f.e.Receive(Str(v), false) }
func (f *fromErased) Bytes(v []byte, owned bool) { f.e.Receive(Bytes(v), owned) }
func (f *fromErased) ReceiveData(d Data) { f.e.ReceiveData(d) }

func (f *fromErased) Other(v Other, owned bool) {
	f.e.Receive(Scalar{kind: KindOther, other: v}, owned)
}
