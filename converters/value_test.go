// SPDX-License-Identifier: MIT

package converters_test

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/SebastianSpeitel/datalink/converters"
	"github.com/SebastianSpeitel/datalink/core"
)

type color string

type user struct {
	Name  string   `mapstructure:"name"`
	Langs []string `mapstructure:"langs"`
	Admin bool
	note  string
}

func fromValue(t *testing.T, v any) core.Data {
	t.Helper()
	d, err := converters.FromValue(v)
	require.NoError(t, err)

	return d
}

func TestFromValue_Scalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want core.Data
	}{
		{"nil", nil, core.Empty{}},
		{"bool", true, core.Bool(true)},
		{"int", 7, core.I64(7)},
		{"int8", int8(-3), core.I8(-3)},
		{"uint16", uint16(9), core.U16(9)},
		{"uint", uint(5), core.U64(5)},
		{"uint128", uint128.From64(1), core.U128(uint128.From64(1))},
		{"float32", float32(0.5), core.F32(0.5)},
		{"string", "x", core.Str("x")},
		{"bytes", []byte("ab"), core.Bytes([]byte("ab"))},
		{"named string", color("red"), core.Str("red")},
		{"pointer", ptr(3), core.I64(3)},
		{"nil pointer", (*int)(nil), core.Empty{}},
		{"data", core.Char('z'), core.Char('z')},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fromValue(t, tc.in))
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestFromValue_Containers(t *testing.T) {
	d := fromValue(t, map[string]any{
		"b": []any{1, "two"},
		"a": map[string]int{"z": 26},
	})
	assert.Equal(t,
		`mapping { links: [{"a"} -> mapping { links: [{"z"} -> {26i64}] }, {"b"} -> sequence { links: [{1i64}, {"two"}] }] }`,
		render(t, d))

	seq := fromValue(t, [2]uint8{1, 2}).(*converters.Sequence)
	assert.Equal(t, []core.Data{core.U8(1), core.U8(2)}, seq.Items())
}

func TestFromValue_Struct(t *testing.T) {
	d := fromValue(t, user{Name: "ada", Langs: []string{"go"}, Admin: true, note: "hidden"})
	m, ok := d.(*converters.Mapping)
	require.True(t, ok)
	assert.Equal(t, "user", m.TypeName())
	assert.Equal(t, 3, m.Len(), "unexported fields are skipped")

	name, ok := m.Get("name")
	require.True(t, ok)
	assert.Equal(t, core.Str("ada"), name)
	admin, ok := m.Get("Admin")
	require.True(t, ok)
	assert.Equal(t, core.Bool(true), admin)

	p := fromValue(t, &user{Name: "bob"})
	assert.Equal(t, "user", p.(*converters.Mapping).TypeName())
}

func TestFromValue_Fallbacks(t *testing.T) {
	ip := net.IPv4(127, 0, 0, 1).To4()
	d := fromValue(t, time.Second)
	assert.Equal(t, core.I64(int64(time.Second)), d, "named integer types convert like their base")

	d = fromValue(t, make(chan int))
	s, ok := d.(core.Scalar)
	require.True(t, ok)
	assert.Equal(t, core.KindOther, s.Kind())

	d = fromValue(t, ip)
	assert.Equal(t, core.Bytes([]byte{127, 0, 0, 1}), d, "byte slices of any name are bytes")

	_, err := converters.FromValue(map[int]string{1: "a"})
	assert.ErrorIs(t, err, converters.ErrUnsupported)

	_, err = converters.FromValue([]any{map[int]int{}})
	assert.ErrorIs(t, err, converters.ErrUnsupported)
}
