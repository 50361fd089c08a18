// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/SebastianSpeitel/datalink/core"
)

func TestScalar_String(t *testing.T) {
	cases := []struct {
		s    core.Scalar
		want string
	}{
		{core.Bool(true), "true"},
		{core.U8(255), "255u8"},
		{core.U32(42), "42u32"},
		{core.U128(uint128.New(0, 1)), "18446744073709551616u128"},
		{core.I8(-1), "-1i8"},
		{core.I64(math.MinInt64), "-9223372036854775808i64"},
		{core.I128(core.Int128From64(-5)), "-5i128"},
		{core.F32(1.5), "1.5f32"},
		{core.F64(0.1), "0.1f64"},
		{core.Char('x'), "'x'"},
		{core.Str("a\"b"), `"a\"b"`},
		{core.Bytes([]byte("hi")), `b"hi"`},
		{core.OtherOf(7), "int(7)"},
		{core.Scalar{}, "<invalid>"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.s.String())
	}
}

func TestScalar_Accessors(t *testing.T) {
	v, ok := core.U16(9).Uint16()
	assert.True(t, ok)
	assert.Equal(t, uint16(9), v)

	_, ok = core.U16(9).Uint32()
	assert.False(t, ok, "accessors are exact-kind")

	i, ok := core.I16(-2).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(-2), i)

	_, ok = core.I16(-2).Uint()
	assert.False(t, ok)

	_, ok = core.U64(math.MaxUint64).Int()
	assert.False(t, ok)

	u, ok := core.U128(uint128.From64(5)).Uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), u)

	big128 := core.Int128{Hi: 1, Lo: 0}
	_, ok = core.I128(big128).Int()
	assert.False(t, ok)
	assert.Equal(t, 1, big128.Sign())
	assert.Equal(t, -1, core.Int128From64(-1).Sign())
	assert.True(t, core.Int128From64(-1).IsInt64())

	o, ok := core.OtherOf([]int{1}).Other()
	require.True(t, ok)
	assert.Equal(t, "[]int", o.Type.String())
}

func TestScalar_Number(t *testing.T) {
	n1, ok := core.U8(42).Number()
	require.True(t, ok)
	n2, ok := core.F64(42).Number()
	require.True(t, ok)
	n3, ok := core.I128(core.Int128From64(42)).Number()
	require.True(t, ok)
	assert.Zero(t, n1.Cmp(n2))
	assert.Zero(t, n1.Cmp(n3))

	neg, _ := core.I8(-1).Number()
	max, _ := core.U8(255).Number()
	assert.NotZero(t, neg.Cmp(max), "mixed-sign values compare mathematically")

	_, ok = core.F64(math.NaN()).Number()
	assert.False(t, ok)
	_, ok = core.Str("42").Number()
	assert.False(t, ok)
}

func TestScalar_EqualAndClone(t *testing.T) {
	assert.True(t, core.Str("a").Equal(core.Str("a")))
	assert.False(t, core.Str("a").Equal(core.Char('a')))
	assert.False(t, core.U8(1).Equal(core.U16(1)))
	assert.True(t, core.OtherOf([]int{1}).Equal(core.OtherOf([]int{1})))

	buf := []byte("ab")
	c := core.Bytes(buf).Clone()
	buf[0] = 'z'
	got, _ := c.Bytes()
	assert.Equal(t, "ab", string(got))
}

func TestScalar_IsData(t *testing.T) {
	vals := core.Collect(core.U32(42), core.AllKinds)
	require.Len(t, vals, 1)
	assert.True(t, vals[0].Equal(core.U32(42)))

	links, err := core.AllLinks(core.U32(42))
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestSet(t *testing.T) {
	s := core.SetOf(core.KindU8, core.KindString, core.KindInvalid)
	assert.True(t, s.Has(core.KindU8))
	assert.False(t, s.Has(core.KindInvalid))
	assert.Equal(t, "{u8,str}", s.String())
	assert.Equal(t, core.SetOf(core.KindU8), s.Without(core.KindString))
	assert.True(t, s.With(core.KindBool).Has(core.KindBool))
	assert.Len(t, core.AllKinds.Kinds(), 17)
	assert.False(t, core.AllKinds.Has(core.KindInvalid))
	assert.True(t, core.NumericKinds.Has(core.KindF32))
	assert.False(t, core.NumericKinds.Has(core.KindChar))
}
