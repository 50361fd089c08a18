// SPDX-License-Identifier: MIT

package core

import "math/big"

// Int128 is a signed 128-bit integer in two's complement: Hi·2⁶⁴ + Lo.
// Unsigned 128-bit scalars use lukechampine.com/uint128 directly.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// IsInt64 reports whether i fits in an int64.
func (i Int128) IsInt64() bool {
	return i.Hi == int64(i.Lo)>>63
}

// Int64 truncates i to its low 64 bits.
func (i Int128) Int64() int64 { return int64(i.Lo) }

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)

	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

// String renders i in base 10.
func (i Int128) String() string { return i.Big().String() }
