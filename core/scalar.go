// SPDX-License-Identifier: MIT

package core

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"lukechampine.com/uint128"
)

// Other is the escape hatch for values outside the closed primitive set:
// an opaque value tagged with its dynamic type. Receivers downcast Value
// with a type assertion.
type Other struct {
	Type  reflect.Type
	Value any
}

// String renders the value as "<type>(<value>)".
func (o Other) String() string {
	if o.Type == nil {
		return "other(nil)"
	}

	return fmt.Sprintf("%s(%v)", o.Type, o.Value)
}

// Scalar is a fixed-size tagged union over the closed primitive set.
// The zero Scalar has KindInvalid and is never offered.
//
// A Scalar is itself Data: it offers itself and has no links.
type Scalar struct {
	kind  Kind
	bits  uint64 // bool, integers up to 64 bits, float bit patterns, char; low half of 128-bit kinds
	wide  uint64 // high half of 128-bit kinds
	text  string
	bin   []byte
	other Other
}

// Bool returns a bool scalar.
func Bool(v bool) Scalar {
	s := Scalar{kind: KindBool}
	if v {
		s.bits = 1
	}

	return s
}

// U8 returns a u8 scalar.
func U8(v uint8) Scalar { return Scalar{kind: KindU8, bits: uint64(v)} }

// U16 returns a u16 scalar.
func U16(v uint16) Scalar { return Scalar{kind: KindU16, bits: uint64(v)} }

// U32 returns a u32 scalar.
func U32(v uint32) Scalar { return Scalar{kind: KindU32, bits: uint64(v)} }

// U64 returns a u64 scalar.
func U64(v uint64) Scalar { return Scalar{kind: KindU64, bits: v} }

// U128 returns a u128 scalar.
func U128(v uint128.Uint128) Scalar { return Scalar{kind: KindU128, bits: v.Lo, wide: v.Hi} }

// I8 returns an i8 scalar.
func I8(v int8) Scalar { return Scalar{kind: KindI8, bits: uint64(int64(v))} }

// I16 returns an i16 scalar.
func I16(v int16) Scalar { return Scalar{kind: KindI16, bits: uint64(int64(v))} }

// I32 returns an i32 scalar.
func I32(v int32) Scalar { return Scalar{kind: KindI32, bits: uint64(int64(v))} }

// I64 returns an i64 scalar.
func I64(v int64) Scalar { return Scalar{kind: KindI64, bits: uint64(v)} }

// I128 returns an i128 scalar.
func I128(v Int128) Scalar { return Scalar{kind: KindI128, bits: v.Lo, wide: uint64(v.Hi)} }

// F32 returns an f32 scalar.
func F32(v float32) Scalar { return Scalar{kind: KindF32, bits: uint64(math.Float32bits(v))} }

// F64 returns an f64 scalar.
func F64(v float64) Scalar { return Scalar{kind: KindF64, bits: math.Float64bits(v)} }

// Char returns a char scalar.
func Char(v rune) Scalar { return Scalar{kind: KindChar, bits: uint64(uint32(v))} }

// Str returns a text scalar.
func Str(v string) Scalar { return Scalar{kind: KindString, text: v} }

// Bytes returns a byte-buffer scalar. The slice is shared, not copied.
func Bytes(v []byte) Scalar { return Scalar{kind: KindBytes, bin: v} }

// OtherOf returns an Other scalar tagged with the dynamic type of v.
func OtherOf(v any) Scalar {
	return Scalar{kind: KindOther, other: Other{Type: reflect.TypeOf(v), Value: v}}
}

// Kind returns the tag of s.
func (s Scalar) Kind() Kind { return s.kind }

// IsValid reports whether s holds a value.
func (s Scalar) IsValid() bool { return s.kind.Valid() }

// Bool returns the value of a bool scalar.
func (s Scalar) Bool() (bool, bool) { return s.bits != 0, s.kind == KindBool }

// Uint8 returns the value of a u8 scalar.
func (s Scalar) Uint8() (uint8, bool) { return uint8(s.bits), s.kind == KindU8 }

// Uint16 returns the value of a u16 scalar.
func (s Scalar) Uint16() (uint16, bool) { return uint16(s.bits), s.kind == KindU16 }

// Uint32 returns the value of a u32 scalar.
func (s Scalar) Uint32() (uint32, bool) { return uint32(s.bits), s.kind == KindU32 }

// Uint64 returns the value of a u64 scalar.
func (s Scalar) Uint64() (uint64, bool) { return s.bits, s.kind == KindU64 }

// Uint128 returns the value of a u128 scalar.
func (s Scalar) Uint128() (uint128.Uint128, bool) {
	return uint128.New(s.bits, s.wide), s.kind == KindU128
}

// Int8 returns the value of an i8 scalar.
func (s Scalar) Int8() (int8, bool) { return int8(s.bits), s.kind == KindI8 }

// Int16 returns the value of an i16 scalar.
func (s Scalar) Int16() (int16, bool) { return int16(s.bits), s.kind == KindI16 }

// Int32 returns the value of an i32 scalar.
func (s Scalar) Int32() (int32, bool) { return int32(s.bits), s.kind == KindI32 }

// Int64 returns the value of an i64 scalar.
func (s Scalar) Int64() (int64, bool) { return int64(s.bits), s.kind == KindI64 }

// Int128 returns the value of an i128 scalar.
func (s Scalar) Int128() (Int128, bool) {
	return Int128{Hi: int64(s.wide), Lo: s.bits}, s.kind == KindI128
}

// Float32 returns the value of an f32 scalar.
func (s Scalar) Float32() (float32, bool) {
	return math.Float32frombits(uint32(s.bits)), s.kind == KindF32
}

// Float64 returns the value of an f64 scalar.
func (s Scalar) Float64() (float64, bool) { return math.Float64frombits(s.bits), s.kind == KindF64 }

// Char returns the value of a char scalar.
func (s Scalar) Char() (rune, bool) { return rune(uint32(s.bits)), s.kind == KindChar }

// Text returns the value of a str scalar.
func (s Scalar) Text() (string, bool) { return s.text, s.kind == KindString }

// Bytes returns the value of a bytes scalar. The slice is shared.
func (s Scalar) Bytes() ([]byte, bool) { return s.bin, s.kind == KindBytes }

// Other returns the value of an other scalar.
func (s Scalar) Other() (Other, bool) { return s.other, s.kind == KindOther }

// Int widens any integer kind to int64 when the value fits.
func (s Scalar) Int() (int64, bool) {
	switch {
	case s.kind == KindI128:
		v, _ := s.Int128()
		return v.Int64(), v.IsInt64()
	case s.kind == KindU128:
		return int64(s.bits), s.wide == 0 && s.bits <= math.MaxInt64
	case s.kind.IsSigned():
		return int64(s.bits), true
	case s.kind.IsUnsigned():
		return int64(s.bits), s.bits <= math.MaxInt64
	}

	return 0, false
}

// Uint widens any integer kind to uint64 when the value fits.
func (s Scalar) Uint() (uint64, bool) {
	switch {
	case s.kind == KindU128:
		return s.bits, s.wide == 0
	case s.kind == KindI128:
		v, _ := s.Int128()
		return v.Lo, v.Hi == 0
	case s.kind.IsUnsigned():
		return s.bits, true
	case s.kind.IsSigned():
		return s.bits, int64(s.bits) >= 0
	}

	return 0, false
}

// Float widens either float kind to float64.
func (s Scalar) Float() (float64, bool) {
	switch s.kind {
	case KindF32:
		v, _ := s.Float32()
		return float64(v), true
	case KindF64:
		return s.Float64()
	}

	return 0, false
}

// Number returns the exact numeric value of an integer or float scalar.
// NaN has no numeric value.
func (s Scalar) Number() (*big.Float, bool) {
	switch {
	case s.kind == KindU128:
		v, _ := s.Uint128()
		return new(big.Float).SetInt(v.Big()), true
	case s.kind == KindI128:
		v, _ := s.Int128()
		return new(big.Float).SetInt(v.Big()), true
	case s.kind.IsUnsigned():
		return new(big.Float).SetUint64(s.bits), true
	case s.kind.IsSigned():
		return new(big.Float).SetInt64(int64(s.bits)), true
	case s.kind.IsFloat():
		f, _ := s.Float()
		if math.IsNaN(f) {
			return nil, false
		}
		return new(big.Float).SetFloat64(f), true
	}

	return nil, false
}

// Equal reports whether s and o have the same kind and payload.
// Floats compare by bit pattern, so NaN equals an identical NaN.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindString:
		return s.text == o.text
	case KindBytes:
		return bytes.Equal(s.bin, o.bin)
	case KindOther:
		return s.other.Type == o.other.Type && reflect.DeepEqual(s.other.Value, o.other.Value)
	}

	return s.bits == o.bits && s.wide == o.wide
}

// Clone returns s with a private copy of any byte buffer.
func (s Scalar) Clone() Scalar {
	if s.kind == KindBytes && s.bin != nil {
		s.bin = bytes.Clone(s.bin)
	}

	return s
}

// String renders s with its type suffix: 42u32, -1i8, 1.5f64, "abc", 'c', true.
func (s Scalar) String() string {
	switch {
	case s.kind == KindBool:
		return strconv.FormatBool(s.bits != 0)
	case s.kind == KindU128:
		v, _ := s.Uint128()
		return v.String() + "u128"
	case s.kind == KindI128:
		v, _ := s.Int128()
		return v.String() + "i128"
	case s.kind.IsUnsigned():
		return strconv.FormatUint(s.bits, 10) + s.kind.String()
	case s.kind.IsSigned():
		return strconv.FormatInt(int64(s.bits), 10) + s.kind.String()
	case s.kind == KindF32:
		v, _ := s.Float32()
		return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f32"
	case s.kind == KindF64:
		v, _ := s.Float64()
		return strconv.FormatFloat(v, 'g', -1, 64) + "f64"
	case s.kind == KindChar:
		return strconv.QuoteRune(rune(uint32(s.bits)))
	case s.kind == KindString:
		return strconv.Quote(s.text)
	case s.kind == KindBytes:
		return "b" + strconv.Quote(string(s.bin))
	case s.kind == KindOther:
		return s.other.String()
	}

	return "<invalid>"
}

// ProvideValue offers s itself.
func (s Scalar) ProvideValue(req *Request) { req.Provide(s) }

// ProvideLinks offers no links.
func (Scalar) ProvideLinks(Links) error { return nil }
