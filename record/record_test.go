// SPDX-License-Identifier: MIT

package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/format"
	"github.com/SebastianSpeitel/datalink/id"
	"github.com/SebastianSpeitel/datalink/query"
	"github.com/SebastianSpeitel/datalink/record"
)

// TestScenario: key is both scalar and link, optional is scalar only.
func TestScenario(t *testing.T) {
	r := record.New("Example",
		record.Both("key", core.Str("abc")),
		record.Val("optional", core.Bool(true)),
	)

	vals := core.Collect(r, core.AllKinds)
	require.Len(t, vals, 2)
	assert.Equal(t, core.Str("abc"), vals[0])
	assert.Equal(t, core.Bool(true), vals[1])

	links, err := core.AllLinks(r)
	require.NoError(t, err)
	require.Len(t, links, 1)
	key, ok := core.AsText(links[0].Key)
	require.True(t, ok)
	assert.Equal(t, "key", key)
	target, ok := core.AsText(links[0].Target)
	require.True(t, ok)
	assert.Equal(t, "abc", target)
}

func TestAbsentAndSkipped(t *testing.T) {
	r := record.New("R",
		record.Val("missing", nil),
		record.Both("hidden", core.U8(1)).Skipped(),
		record.Link("child", core.U8(2)),
	)

	assert.Empty(t, core.Collect(r, core.AllKinds))
	links, err := core.AllLinks(r)
	require.NoError(t, err)
	require.Len(t, links, 1)

	_, ok := r.Get("missing")
	assert.False(t, ok)
	_, ok = r.Get("hidden")
	assert.False(t, ok)
	v, ok := r.Get("child")
	require.True(t, ok)
	assert.Equal(t, core.U8(2), v)
}

func TestNestedValuesHandedOverWhole(t *testing.T) {
	inner := record.New("Inner", record.Val("a", core.U8(1)), record.Val("b", core.Str("x")))
	outer := record.New("Outer", record.Val("inner", inner), record.Val("c", core.Char('c')))

	vals := core.Collect(outer, core.AllKinds)
	assert.Equal(t, []core.Scalar{core.U8(1), core.Str("x"), core.Char('c')}, vals)

	text, ok := core.AsText(outer)
	require.True(t, ok)
	assert.Equal(t, "x", text)
}

func TestVariant(t *testing.T) {
	v := record.Variant("Some", record.Both("0", core.I32(-3)))

	vals := core.Collect(v, core.AllKinds)
	assert.Equal(t, []core.Scalar{core.Str("Some"), core.I32(-3)}, vals)
	assert.Equal(t, "Some", v.TypeName())

	s, err := format.Sprint(v, format.WithCollapseLinkless(true))
	require.NoError(t, err)
	assert.Equal(t, `Some { values: ["Some", -3i32], links: [{"0"} -> {-3i32}] }`, s)
}

func TestCloneAccess(t *testing.T) {
	buf := []byte("abc")
	ref := record.New("R", record.Link("ref", core.Bytes(buf)))
	cloned := record.New("R", record.Link("copy", core.Bytes(buf)).Cloned())

	refLinks, err := core.AllLinks(ref)
	require.NoError(t, err)
	copyLinks, err := core.AllLinks(cloned)
	require.NoError(t, err)

	buf[0] = 'z'
	got, _ := core.AsBytes(refLinks[0].Target)
	assert.Equal(t, "zbc", string(got), "Ref lends the stored buffer")
	got, _ = core.AsBytes(copyLinks[0].Target)
	assert.Equal(t, "abc", string(got), "Clone hands out a copy")

	dup := ref.Clone().(*record.Record)
	buf[1] = 'y'
	v, _ := dup.Get("ref")
	got, _ = core.AsBytes(v)
	assert.Equal(t, "zbc", string(got))
}

func TestIdentity(t *testing.T) {
	i := id.Named(id.Namespace, "record")
	r := record.New("R").WithID(i)
	got, ok := core.IDOf(r)
	require.True(t, ok)
	assert.Equal(t, i, got)

	_, ok = core.IDOf(record.New("R"))
	assert.False(t, ok)
}

func TestQueryLinks(t *testing.T) {
	r := record.New("R",
		record.Link("a", core.Str("1")),
		record.Link("b", core.Str("2")),
		record.Link("c", core.Str("3")),
		record.Val("v", core.Str("2")),
	)

	q, err := query.New().Filter(query.KeyText("b")).Build()
	require.NoError(t, err)
	got, err := q.Collect(r)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.Str("2"), got[0].Target)

	q, err = query.New().Filter(query.KeyText("b")).Where(query.Text("nope")).Build()
	require.NoError(t, err)
	got, err = q.Collect(r)
	require.NoError(t, err)
	assert.Empty(t, got)

	q, err = query.New().Where(query.Text("3").Or(query.Text("1"))).Limit(1).Build()
	require.NoError(t, err)
	got, err = q.Collect(r)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.Str("1"), got[0].Target)

	q, err = query.New().Filter(query.KeyText("v")).Build()
	require.NoError(t, err)
	got, err = q.Collect(r)
	require.NoError(t, err)
	assert.Empty(t, got, "value-only fields are not links")
}
