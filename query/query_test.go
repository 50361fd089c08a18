// SPDX-License-Identifier: MIT

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/query"
)

func people() *item {
	return &item{links: core.Pairs{
		{Key: core.Str("alice"), Target: &item{ident: idA, texts: []string{"admin"}}},
		{Key: core.Str("bob"), Target: text("user")},
		{Target: text("admin")},
		{Key: core.Str("carol"), Target: text("admin")},
	}}
}

func TestBuilder_Build(t *testing.T) {
	q, err := query.New().Build()
	require.NoError(t, err)
	assert.Equal(t, query.Any(), q.Data)
	assert.Equal(t, query.AnyLink(), q.Link)
	assert.Zero(t, q.Limit)

	q, err = query.New().
		Where(query.Any()).
		Where(query.Text("admin")).
		Filter(query.Keyed()).
		Limit(3).
		Build()
	require.NoError(t, err)
	assert.Equal(t, `text("admin")`, q.Data.String())
	assert.Equal(t, "key(any)", q.Link.String())
	assert.Equal(t, 3, q.Limit)

	_, err = query.New().Limit(-1).Build()
	assert.ErrorIs(t, err, query.ErrNegativeLimit)
}

func TestQuery_Collect(t *testing.T) {
	q, err := query.New().Where(query.Text("admin")).Filter(query.Keyed()).Build()
	require.NoError(t, err)

	got, err := q.Collect(people())
	require.NoError(t, err)
	require.Len(t, got, 2)
	k0, _ := core.AsText(got[0].Key)
	k1, _ := core.AsText(got[1].Key)
	assert.Equal(t, []string{"alice", "carol"}, []string{k0, k1})
}

func TestQuery_Limit(t *testing.T) {
	src := people()
	q, err := query.New().Where(query.Text("admin")).Limit(1).Build()
	require.NoError(t, err)

	got, err := q.Collect(src)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, src.pushes, "the producer stops once the limit is reached")

	unlimited, err := query.New().Where(query.Text("admin")).Build()
	require.NoError(t, err)
	got, err = unlimited.Collect(people())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestQuery_First(t *testing.T) {
	q, err := query.New().Filter(query.NotLink(query.Keyed())).Build()
	require.NoError(t, err)

	l, ok, err := q.First(people())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, l.Key)

	q, err = query.New().Where(query.ID(idB)).Build()
	require.NoError(t, err)
	_, ok, err = q.First(people())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuery_Matches(t *testing.T) {
	q, err := query.New().Where(query.HasID()).Filter(query.KeyText("alice")).Build()
	require.NoError(t, err)

	ok, err := q.Matches(&item{ident: idA}, core.Str("alice"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.Matches(text("x"), core.Str("alice"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = q.Matches(&item{ident: idA}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

// indexed answers key lookups itself and refuses anything else.
type indexed struct {
	core.Empty
	entries map[string]core.Data
}

func (ix *indexed) QueryLinks(sink core.Links, q *query.Query) error {
	for k, v := range ix.entries {
		ok, err := q.Matches(v, core.Str(k))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if _, err := sink.Push(v, core.Str(k)); err != nil {
			return err
		}
		return nil
	}
	if q.Link.Op() != query.LinkKey {
		return core.ErrUnsupportedQuery
	}

	return nil
}

func TestQuery_Linker(t *testing.T) {
	ix := &indexed{entries: map[string]core.Data{"only": core.U8(1)}}

	q, err := query.New().Filter(query.KeyText("only")).Build()
	require.NoError(t, err)
	got, err := q.Collect(ix)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.U8(1), got[0].Target)

	q, err = query.New().Filter(query.KeyText("missing")).Build()
	require.NoError(t, err)
	got, err = q.Collect(ix)
	require.NoError(t, err)
	assert.Empty(t, got)

	q, err = query.New().Where(query.HasID()).Build()
	require.NoError(t, err)
	_, err = q.Collect(ix)
	assert.ErrorIs(t, err, core.ErrUnsupportedQuery)
}

func TestQuery_RunPropagatesErrors(t *testing.T) {
	q, err := query.New().Build()
	require.NoError(t, err)
	_, err = q.Collect(failing{})
	assert.ErrorIs(t, err, core.ErrOther)
}
