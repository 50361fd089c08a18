// SPDX-License-Identifier: MIT

package core

import "lukechampine.com/uint128"

// Receiver is the consumer side of the Value Channel.
//
// Accepts is read once, when a Request is opened, and fixes the kinds the
// receiver is willing to see. Only the callbacks of accepted kinds are ever
// invoked. Bytes and Other carry owned == false when the value is only lent
// for the duration of the call; such values must be copied to be retained.
type Receiver interface {
	Accepts() Set

	Bool(v bool)
	U8(v uint8)
	U16(v uint16)
	U32(v uint32)
	U64(v uint64)
	U128(v uint128.Uint128)
	I8(v int8)
	I16(v int16)
	I32(v int32)
	I64(v int64)
	I128(v Int128)
	F32(v float32)
	F64(v float64)
	Char(v rune)
	Str(v string)
	Bytes(v []byte, owned bool)
	Other(v Other, owned bool)
}

// DataReceiver is implemented by receivers that take whole values handed over
// through Request.ProvideData instead of having their scalars re-offered.
type DataReceiver interface {
	ReceiveData(d Data)
}

// BaseReceiver implements every Receiver callback as a no-op and accepts
// nothing. Embed it and override Accepts plus the callbacks of interest.
type BaseReceiver struct{}

func (BaseReceiver) Accepts() Set { return NoKinds }
func (BaseReceiver) Bool(bool) {}
func (BaseReceiver) U8(uint8) {}
func (BaseReceiver) U16(uint16) {}
func (BaseReceiver) U32(uint32) {}
func (BaseReceiver) U64(uint64) {}
func (BaseReceiver) U128(uint128.Uint128) {}
func (BaseReceiver) I8(int8) {}
func (BaseReceiver) I16(int16) {}
func (BaseReceiver) I32(int32) {}
func (BaseReceiver) I64(int64) {}
func (BaseReceiver) I128(Int128) {}
func (BaseReceiver) F32(float32) {}
func (BaseReceiver) F64(float64) {}
func (BaseReceiver) Char(rune) {}
func (BaseReceiver) Str(string) {}
func (BaseReceiver) Bytes([]byte, bool) {}
func (BaseReceiver) Other(Other, bool) {}

// deliver forwards s to the typed callback of r. The caller has already
// checked that the kind is accepted.
func deliver(r Receiver, s Scalar, owned bool) {
	switch s.kind {
	case KindBool:
		r.Bool(s.bits != 0)
	case KindU8:
		r.U8(uint8(s.bits))
	case KindU16:
		r.U16(uint16(s.bits))
	case KindU32:
		r.U32(uint32(s.bits))
	case KindU64:
		r.U64(s.bits)
	case KindU128:
		r.U128(uint128.New(s.bits, s.wide))
	case KindI8:
		r.I8(int8(s.bits))
	case KindI16:
		r.I16(int16(s.bits))
	case KindI32:
		r.I32(int32(s.bits))
	case KindI64:
		r.I64(int64(s.bits))
	case KindI128:
		r.I128(Int128{Hi: int64(s.wide), Lo: s.bits})
	case KindF32:
		v, _ := s.Float32()
		r.F32(v)
	case KindF64:
		v, _ := s.Float64()
		r.F64(v)
	case KindChar:
		r.Char(rune(uint32(s.bits)))
	case KindString:
		r.Str(s.text)
	case KindBytes:
		r.Bytes(s.bin, owned)
	case KindOther:
		r.Other(s.other, owned)
	}
}
