// SPDX-License-Identifier: MIT

package id_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/SebastianSpeitel/datalink/id"
)

func TestNew_RejectsZero(t *testing.T) {
	_, err := id.New(0, 0)
	require.ErrorIs(t, err, id.ErrZero)

	_, err = id.FromUint64(0)
	require.ErrorIs(t, err, id.ErrZero)

	_, err = id.FromUUID(uuid.Nil)
	require.ErrorIs(t, err, id.ErrZero)

	var zero id.ID
	assert.True(t, zero.IsZero())
	assert.Equal(t, "<none>", zero.String())
}

func TestNew_Halves(t *testing.T) {
	i, err := id.New(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), i.Hi())
	assert.Equal(t, uint64(2), i.Lo())
	assert.False(t, i.IsZero())
	assert.Equal(t, uint128.New(2, 1), i.Uint128())

	j, err := id.FromUint64(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), j.Hi())
	assert.Equal(t, 1, i.Compare(j))
	assert.Equal(t, -1, j.Compare(i))
	assert.Equal(t, 0, i.Compare(i))
}

func TestUUID_RoundTrip(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	i, err := id.FromUUID(u)
	require.NoError(t, err)
	assert.Equal(t, u, i.UUID())
	assert.Equal(t, u.String(), i.String())
	assert.Equal(t, uint64(0x6ba7b8109dad11d1), i.Hi())
	assert.Equal(t, uint64(0x80b400c04fd430c8), i.Lo())
}

func TestParse(t *testing.T) {
	want := id.MustNew(0x6ba7b8109dad11d1, 0x80b400c04fd430c8)

	for _, s := range []string{
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b8109dad11d180b400c04fd430c8",
		"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	} {
		got, err := id.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := id.Parse("not-an-id")
	require.ErrorIs(t, err, id.ErrSyntax)

	_, err = id.Parse("00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, id.ErrZero)
}

func TestRandom_Distinct(t *testing.T) {
	seen := make(map[id.ID]bool)
	for i := 0; i < 64; i++ {
		r := id.Random()
		require.False(t, r.IsZero())
		require.False(t, seen[r], "duplicate random identity")
		seen[r] = true
	}
}

func TestNamed_Deterministic(t *testing.T) {
	a := id.Named(id.Namespace, "alpha")
	b := id.Named(id.Namespace, "alpha")
	c := id.Named(id.Namespace, "beta")
	d := id.Named(a, "alpha")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.False(t, a.IsZero())
}
