// SPDX-License-Identifier: MIT

package core

import "strings"

// Kind tags one member of the closed set of primitive scalar types.
type Kind uint8

// The closed primitive set. KindInvalid is the zero Kind and never offered.
const (
	KindInvalid Kind = iota
	KindBool
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindF32
	KindF64
	KindChar
	KindString
	KindBytes
	KindOther

	numKinds
)

var kindNames = [numKinds]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindU8:      "u8",
	KindU16:     "u16",
	KindU32:     "u32",
	KindU64:     "u64",
	KindU128:    "u128",
	KindI8:      "i8",
	KindI16:     "i16",
	KindI32:     "i32",
	KindI64:     "i64",
	KindI128:    "i128",
	KindF32:     "f32",
	KindF64:     "f64",
	KindChar:    "char",
	KindString:  "str",
	KindBytes:   "bytes",
	KindOther:   "other",
}

// String returns the short type name used in rendered output (u32, str, …).
func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}

	return kindNames[k]
}

// Valid reports whether k is a member of the primitive set.
func (k Kind) Valid() bool { return k > KindInvalid && k < numKinds }

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool { return k >= KindU8 && k <= KindU128 }

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool { return k >= KindI8 && k <= KindI128 }

// IsInteger reports whether k is any integer kind.
func (k Kind) IsInteger() bool { return k.IsUnsigned() || k.IsSigned() }

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == KindF32 || k == KindF64 }

// IsNumeric reports whether k is an integer or floating-point kind.
func (k Kind) IsNumeric() bool { return k.IsInteger() || k.IsFloat() }

// Set is a set of Kinds, one bit per kind. The zero Set accepts nothing.
type Set uint32

// Predefined sets.
const (
	NoKinds      Set = 0
	AllKinds     Set = (1<<numKinds - 1) &^ 1
	IntegerKinds Set = 1<<KindU8 | 1<<KindU16 | 1<<KindU32 | 1<<KindU64 | 1<<KindU128 |
		1<<KindI8 | 1<<KindI16 | 1<<KindI32 | 1<<KindI64 | 1<<KindI128
	FloatKinds   Set = 1<<KindF32 | 1<<KindF64
	NumericKinds Set = IntegerKinds | FloatKinds
	TextKinds    Set = 1<<KindString | 1<<KindChar
)

// SetOf returns the set holding exactly kinds. Invalid kinds are ignored.
func SetOf(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		if k.Valid() {
			s |= 1 << k
		}
	}

	return s
}

// Has reports whether k is in s.
func (s Set) Has(k Kind) bool { return s&(1<<k) != 0 && k.Valid() }

// With returns s plus kinds.
func (s Set) With(kinds ...Kind) Set { return s | SetOf(kinds...) }

// Without returns s minus kinds.
func (s Set) Without(kinds ...Kind) Set { return s &^ SetOf(kinds...) }

// Kinds lists the members of s in declaration order.
func (s Set) Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := KindBool; k < numKinds; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}

	return out
}

// String renders s as "{u8,str}".
func (s Set) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return "{" + strings.Join(names, ",") + "}"
}
