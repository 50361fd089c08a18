// SPDX-License-Identifier: MIT

package query_test

import (
	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// item is a minimal Data with optional identity, text values and links.
type item struct {
	ident  id.ID
	texts  []string
	links  core.Pairs
	values int // ProvideValue calls
	pushes int // links pushed
}

func (it *item) ProvideValue(req *core.Request) {
	it.values++
	for _, s := range it.texts {
		req.ProvideString(s)
	}
	req.ProvideU32(7)
}

func (it *item) ProvideLinks(links core.Links) error {
	for _, l := range it.links {
		it.pushes++
		ctl, err := links.Push(l.Target, l.Key)
		if err != nil || ctl == core.Break {
			return err
		}
	}

	return nil
}

func (it *item) ID() (id.ID, bool) { return it.ident, !it.ident.IsZero() }

// failing errors out of every link session.
type failing struct{ core.Empty }

func (failing) ProvideLinks(core.Links) error { return core.Errorf("broken links") }

var (
	idA = id.Named(id.Namespace, "a")
	idB = id.Named(id.Namespace, "b")
)

func text(s string) *item { return &item{texts: []string{s}} }

// fixtures returns a spread of inputs covering every filter variant.
func fixtures() []core.Data {
	leaf := &item{ident: idB, texts: []string{"y"}}
	return []core.Data{
		core.Empty{},
		core.Str("x"),
		core.Char('x'),
		core.U32(1),
		text("y"),
		&item{ident: idA, texts: []string{"x"}},
		leaf,
		&item{links: core.Pairs{{Key: core.Str("k"), Target: leaf}}},
		&item{ident: idA, links: core.Pairs{{Target: core.Str("x")}, {Key: core.Str("j"), Target: text("z")}}},
	}
}
