// SPDX-License-Identifier: MIT

package query

import (
	"strconv"
	"strings"

	"github.com/SebastianSpeitel/datalink/core"
)

// LinkOp tags the variant of a LinkFilter.
type LinkOp uint8

// LinkFilter variants. The zero LinkOp is LinkAny.
const (
	LinkAny LinkOp = iota
	LinkNone
	LinkAnd
	LinkOr
	LinkNot
	LinkKey
	LinkTarget
)

var linkOpNames = [...]string{
	LinkAny:    "any-link",
	LinkNone:   "no-link",
	LinkAnd:    "and",
	LinkOr:     "or",
	LinkNot:    "not",
	LinkKey:    "key",
	LinkTarget: "target",
}

// String returns the lower-case variant name.
func (op LinkOp) String() string {
	if int(op) < len(linkOpNames) {
		return linkOpNames[op]
	}

	return "link-op(" + strconv.Itoa(int(op)) + ")"
}

// LinkFilter is an immutable boolean expression over one link. The zero
// value matches every link.
type LinkFilter struct {
	op       LinkOp
	children []LinkFilter
	data     *DataFilter // Key, Target
}

// AnyLink matches every link.
func AnyLink() LinkFilter { return LinkFilter{op: LinkAny} }

// NoLink matches no link.
func NoLink() LinkFilter { return LinkFilter{op: LinkNone} }

// AllLinks matches links satisfying every filter.
func AllLinks(fs ...LinkFilter) LinkFilter {
	return LinkFilter{op: LinkAnd, children: append([]LinkFilter(nil), fs...)}
}

// AnyLinks matches links satisfying at least one filter.
func AnyLinks(fs ...LinkFilter) LinkFilter {
	return LinkFilter{op: LinkOr, children: append([]LinkFilter(nil), fs...)}
}

// NotLink inverts lf.
func NotLink(lf LinkFilter) LinkFilter {
	return LinkFilter{op: LinkNot, children: []LinkFilter{lf}}
}

// Key matches keyed links whose key satisfies f. Unkeyed links never match.
func Key(f DataFilter) LinkFilter { return LinkFilter{op: LinkKey, data: &f} }

// Target matches links whose target satisfies f.
func Target(f DataFilter) LinkFilter { return LinkFilter{op: LinkTarget, data: &f} }

// KeyText matches links keyed by the text s.
func KeyText(s string) LinkFilter { return Key(Text(s)) }

// Keyed matches every keyed link.
func Keyed() LinkFilter { return Key(Any()) }

// And returns AllLinks(lf, others...).
func (lf LinkFilter) And(others ...LinkFilter) LinkFilter {
	return AllLinks(append([]LinkFilter{lf}, others...)...)
}

// Or returns AnyLinks(lf, others...).
func (lf LinkFilter) Or(others ...LinkFilter) LinkFilter {
	return AnyLinks(append([]LinkFilter{lf}, others...)...)
}

// Not returns NotLink(lf).
func (lf LinkFilter) Not() LinkFilter { return NotLink(lf) }

// Op reports the variant of lf.
func (lf LinkFilter) Op() LinkOp { return lf.op }

// Constant reports the static truth value of lf.
func (lf LinkFilter) Constant() (value, known bool) {
	switch lf.op {
	case LinkAny:
		return true, true
	case LinkNone:
		return false, true
	}

	return false, false
}

// Matches evaluates lf against the link (key, target). key is nil for an
// unkeyed link.
func (lf LinkFilter) Matches(target, key core.Data) (bool, error) {
	switch lf.op {
	case LinkAny:
		return true, nil
	case LinkNone:
		return false, nil
	case LinkAnd:
		for _, c := range lf.children {
			ok, err := c.Matches(target, key)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case LinkOr:
		for _, c := range lf.children {
			ok, err := c.Matches(target, key)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case LinkNot:
		ok, err := lf.children[0].Matches(target, key)
		if err != nil {
			return false, err
		}
		return !ok, nil
	case LinkKey:
		if key == nil {
			return false, nil
		}
		return lf.data.Matches(key)
	case LinkTarget:
		return lf.data.Matches(target)
	}

	return false, nil
}

// Optimize returns an equivalent tree with constant sub-trees folded.
// Key(None) and Target(None) fold to NoLink, Target(Any) to AnyLink.
// Key(Any) stays: it still rejects unkeyed links.
func (lf LinkFilter) Optimize() LinkFilter {
	switch lf.op {
	case LinkAnd:
		return foldLink(LinkAnd, lf.children)
	case LinkOr:
		return foldLink(LinkOr, lf.children)
	case LinkNot:
		inner := lf.children[0].Optimize()
		if v, known := inner.Constant(); known {
			return constLink(!v)
		}
		if inner.op == LinkNot {
			return inner.children[0]
		}
		return NotLink(inner)
	case LinkKey:
		f := lf.data.Optimize()
		if v, known := f.Constant(); known && !v {
			return NoLink()
		}
		return Key(f)
	case LinkTarget:
		f := lf.data.Optimize()
		if v, known := f.Constant(); known {
			return constLink(v)
		}
		return Target(f)
	}

	return lf
}

func foldLink(op LinkOp, children []LinkFilter) LinkFilter {
	unit := op == LinkAnd
	var kept []LinkFilter
	for _, c := range children {
		c = c.Optimize()
		if v, known := c.Constant(); known {
			if v == unit {
				continue
			}
			return constLink(!unit)
		}
		if c.op == op {
			kept = append(kept, c.children...)
			continue
		}
		kept = append(kept, c)
	}
	switch len(kept) {
	case 0:
		return constLink(unit)
	case 1:
		return kept[0]
	}

	return LinkFilter{op: op, children: kept}
}

func constLink(v bool) LinkFilter {
	if v {
		return AnyLink()
	}

	return NoLink()
}

// String renders lf for diagnostics, e.g. key(text("name")).
func (lf LinkFilter) String() string {
	var sb strings.Builder
	lf.write(&sb)

	return sb.String()
}

func (lf LinkFilter) write(sb *strings.Builder) {
	sb.WriteString(lf.op.String())
	switch lf.op {
	case LinkAnd, LinkOr, LinkNot:
		sb.WriteByte('(')
		for i, c := range lf.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.write(sb)
		}
		sb.WriteByte(')')
	case LinkKey, LinkTarget:
		sb.WriteByte('(')
		lf.data.write(sb)
		sb.WriteByte(')')
	}
}

// Filter wraps inner so that only links matching lf reach it. Rejected links
// return Continue; Break and errors from inner propagate unchanged.
func Filter(inner core.Links, lf LinkFilter) core.Links {
	return &filtered{inner: inner, lf: lf}
}

type filtered struct {
	inner core.Links
	lf    LinkFilter
}

func (f *filtered) Push(target, key core.Data) (core.Control, error) {
	if target == nil {
		return core.Break, core.ErrMissingTarget
	}
	ok, err := f.lf.Matches(target, key)
	if err != nil {
		return core.Break, err
	}
	if !ok {
		return core.Continue, nil
	}

	return f.inner.Push(target, key)
}

// ExactKey reports s when lf is exactly KeyText(s), letting a Linker look the
// key up directly instead of scanning.
func (lf LinkFilter) ExactKey() (string, bool) {
	if lf.op != LinkKey || lf.data.op != DataText {
		return "", false
	}

	return lf.data.text, true
}
