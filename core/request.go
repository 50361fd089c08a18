// SPDX-License-Identifier: MIT

package core

import "lukechampine.com/uint128"

// Request is the producer's handle into an open Value Channel.
//
// Every Provide method first tests the offered kind against the set the
// receiver declared when the request was opened; unwanted values are dropped
// without touching the receiver. A Request is borrowed for the duration of
// one ProvideValue call and must not be retained.
type Request struct {
	recv   Receiver
	accept Set
}

// NewRequest opens a Value Channel to r.
func NewRequest(r Receiver) *Request {
	return &Request{recv: r, accept: r.Accepts()}
}

// NewErasedRequest opens a Value Channel to an erased receiver.
func NewErasedRequest(e Erased) *Request {
	return NewRequest(FromErased(e))
}

// Wants reports whether the receiver accepts kind k. Producers consult it
// before doing any nontrivial work to build a value.
func (r *Request) Wants(k Kind) bool { return r.accept.Has(k) }

// Accepts returns the receiver's declared set.
func (r *Request) Accepts() Set { return r.accept }

// ProvideBool offers a bool.
func (r *Request) ProvideBool(v bool) {
	if r.accept.Has(KindBool) {
		r.recv.Bool(v)
	}
}

// ProvideU8 offers a u8.
func (r *Request) ProvideU8(v uint8) {
	if r.accept.Has(KindU8) {
		r.recv.U8(v)
	}
}

// ProvideU16 offers a u16.
func (r *Request) ProvideU16(v uint16) {
	if r.accept.Has(KindU16) {
		r.recv.U16(v)
	}
}

// ProvideU32 offers a u32.
func (r *Request) ProvideU32(v uint32) {
	if r.accept.Has(KindU32) {
		r.recv.U32(v)
	}
}

// ProvideU64 offers a u64.
func (r *Request) ProvideU64(v uint64) {
	if r.accept.Has(KindU64) {
		r.recv.U64(v)
	}
}

// ProvideU128 offers a u128.
func (r *Request) ProvideU128(v uint128.Uint128) {
	if r.accept.Has(KindU128) {
		r.recv.U128(v)
	}
}

// ProvideI8 offers an i8.
func (r *Request) ProvideI8(v int8) {
	if r.accept.Has(KindI8) {
		r.recv.I8(v)
	}
}

// ProvideI16 offers an i16.
func (r *Request) ProvideI16(v int16) {
	if r.accept.Has(KindI16) {
		r.recv.I16(v)
	}
}

// ProvideI32 offers an i32.
func (r *Request) ProvideI32(v int32) {
	if r.accept.Has(KindI32) {
		r.recv.I32(v)
	}
}

// ProvideI64 offers an i64.
func (r *Request) ProvideI64(v int64) {
	if r.accept.Has(KindI64) {
		r.recv.I64(v)
	}
}

// ProvideI128 offers an i128.
func (r *Request) ProvideI128(v Int128) {
	if r.accept.Has(KindI128) {
		r.recv.I128(v)
	}
}

// ProvideF32 offers an f32.
func (r *Request) ProvideF32(v float32) {
	if r.accept.Has(KindF32) {
		r.recv.F32(v)
	}
}

// ProvideF64 offers an f64.
func (r *Request) ProvideF64(v float64) {
	if r.accept.Has(KindF64) {
		r.recv.F64(v)
	}
}

// ProvideChar offers a char.
func (r *Request) ProvideChar(v rune) {
	if r.accept.Has(KindChar) {
		r.recv.Char(v)
	}
}

// ProvideString offers text.
func (r *Request) ProvideString(v string) {
	if r.accept.Has(KindString) {
		r.recv.Str(v)
	}
}

// ProvideBytes lends a byte buffer for the duration of the call.
func (r *Request) ProvideBytes(v []byte) {
	if r.accept.Has(KindBytes) {
		r.recv.Bytes(v, false)
	}
}

// ProvideOwnedBytes hands a byte buffer over to the receiver. The producer
// must not use or offer v again.
func (r *Request) ProvideOwnedBytes(v []byte) {
	if r.accept.Has(KindBytes) {
		r.recv.Bytes(v, true)
	}
}

// ProvideOther lends a value outside the primitive set.
func (r *Request) ProvideOther(v any) {
	if r.accept.Has(KindOther) {
		o, _ := OtherOf(v).Other()
		r.recv.Other(o, false)
	}
}

// ProvideOwnedOther hands a value outside the primitive set over to the receiver.
func (r *Request) ProvideOwnedOther(v any) {
	if r.accept.Has(KindOther) {
		o, _ := OtherOf(v).Other()
		r.recv.Other(o, true)
	}
}

// Provide offers s in reference mode.
func (r *Request) Provide(s Scalar) {
	if r.accept.Has(s.kind) {
		deliver(r.recv, s, false)
	}
}

// ProvideOwned offers s in owned mode.
func (r *Request) ProvideOwned(s Scalar) {
	if r.accept.Has(s.kind) {
		deliver(r.recv, s, true)
	}
}

// ProvideFunc offers the scalar built by fn, calling fn only when kind k is
// wanted. A result of a different kind is still filtered on its own kind.
func (r *Request) ProvideFunc(k Kind, fn func() Scalar) {
	if r.accept.Has(k) {
		r.Provide(fn())
	}
}

// ProvideData hands a whole value over. Receivers implementing DataReceiver
// get d itself; any other receiver has d's scalars offered into this request.
func (r *Request) ProvideData(d Data) {
	if d == nil {
		return
	}
	if dr, ok := r.recv.(DataReceiver); ok {
		dr.ReceiveData(d)
		return
	}
	d.ProvideValue(r)
}
