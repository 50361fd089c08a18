// SPDX-License-Identifier: MIT

package query

import (
	"strconv"
	"strings"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// DataOp tags the variant of a DataFilter.
type DataOp uint8

// DataFilter variants. The zero DataOp is DataAny, so the zero DataFilter
// matches everything.
const (
	DataAny DataOp = iota
	DataNone
	DataAnd
	DataOr
	DataNot
	DataText
	DataHasID
	DataID
	DataNotID
	DataHasLink
)

var dataOpNames = [...]string{
	DataAny:     "any",
	DataNone:    "none",
	DataAnd:     "and",
	DataOr:      "or",
	DataNot:     "not",
	DataText:    "text",
	DataHasID:   "has-id",
	DataID:      "id",
	DataNotID:   "not-id",
	DataHasLink: "has-link",
}

// String returns the lower-case variant name.
func (op DataOp) String() string {
	if int(op) < len(dataOpNames) {
		return dataOpNames[op]
	}

	return "data-op(" + strconv.Itoa(int(op)) + ")"
}

// DataFilter is an immutable boolean expression over a single core.Data.
// Build filters with the constructors; the zero value is Any.
type DataFilter struct {
	op       DataOp
	children []DataFilter // And, Or: operands; Not: exactly one
	text     string       // Text
	ident    id.ID        // ID, NotID
	link     *LinkFilter  // HasLink
}

// Any matches every value.
func Any() DataFilter { return DataFilter{op: DataAny} }

// None matches no value.
func None() DataFilter { return DataFilter{op: DataNone} }

// AllOf matches when every filter matches. AllOf() matches everything.
func AllOf(fs ...DataFilter) DataFilter {
	return DataFilter{op: DataAnd, children: append([]DataFilter(nil), fs...)}
}

// AnyOf matches when at least one filter matches. AnyOf() matches nothing.
func AnyOf(fs ...DataFilter) DataFilter {
	return DataFilter{op: DataOr, children: append([]DataFilter(nil), fs...)}
}

// Not inverts f.
func Not(f DataFilter) DataFilter {
	return DataFilter{op: DataNot, children: []DataFilter{f}}
}

// Text matches values that offer a string or char exactly equal to s.
func Text(s string) DataFilter { return DataFilter{op: DataText, text: s} }

// HasID matches values that report an identity.
func HasID() DataFilter { return DataFilter{op: DataHasID} }

// ID matches values whose identity is i.
func ID(i id.ID) DataFilter { return DataFilter{op: DataID, ident: i} }

// NotID matches values whose identity differs from i, including values with
// no identity at all.
func NotID(i id.ID) DataFilter { return DataFilter{op: DataNotID, ident: i} }

// HasLink matches values with at least one link satisfying lf.
func HasLink(lf LinkFilter) DataFilter {
	return DataFilter{op: DataHasLink, link: &lf}
}

// And returns AllOf(f, gs...).
func (f DataFilter) And(gs ...DataFilter) DataFilter {
	return AllOf(append([]DataFilter{f}, gs...)...)
}

// Or returns AnyOf(f, gs...).
func (f DataFilter) Or(gs ...DataFilter) DataFilter {
	return AnyOf(append([]DataFilter{f}, gs...)...)
}

// Not returns Not(f).
func (f DataFilter) Not() DataFilter { return Not(f) }

// Op reports the variant of f.
func (f DataFilter) Op() DataOp { return f.op }

// Constant reports the static truth value of f: Any is true, None is false,
// every other variant is unknown until evaluated.
func (f DataFilter) Constant() (value, known bool) {
	switch f.op {
	case DataAny:
		return true, true
	case DataNone:
		return false, true
	}

	return false, false
}

// Matches evaluates f against d. A nil d matches only the constant and
// identity-absence variants.
func (f DataFilter) Matches(d core.Data) (bool, error) {
	switch f.op {
	case DataAny:
		return true, nil
	case DataNone:
		return false, nil
	case DataAnd:
		for _, c := range f.children {
			ok, err := c.Matches(d)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case DataOr:
		for _, c := range f.children {
			ok, err := c.Matches(d)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case DataNot:
		ok, err := f.children[0].Matches(d)
		if err != nil {
			return false, err
		}
		return !ok, nil
	case DataText:
		return textEquals(d, f.text), nil
	case DataHasID:
		_, ok := core.IDOf(d)
		return ok, nil
	case DataID:
		got, ok := core.IDOf(d)
		return ok && got == f.ident, nil
	case DataNotID:
		got, ok := core.IDOf(d)
		return !ok || got != f.ident, nil
	case DataHasLink:
		return hasLink(d, *f.link)
	}

	return false, nil
}

// Optimize returns an equivalent tree with constant sub-trees folded.
// Optimize(Optimize(f)) is structurally equal to Optimize(f).
func (f DataFilter) Optimize() DataFilter {
	switch f.op {
	case DataAnd:
		return foldData(DataAnd, f.children)
	case DataOr:
		return foldData(DataOr, f.children)
	case DataNot:
		inner := f.children[0].Optimize()
		if v, known := inner.Constant(); known {
			return constData(!v)
		}
		if inner.op == DataNot {
			return inner.children[0]
		}
		return Not(inner)
	case DataHasLink:
		lf := f.link.Optimize()
		if v, known := lf.Constant(); known && !v {
			return None()
		}
		return HasLink(lf)
	}

	return f
}

// foldData optimizes an And (absorbing true, short-circuiting on false) or an
// Or (the dual) over children.
func foldData(op DataOp, children []DataFilter) DataFilter {
	unit := op == DataAnd
	var kept []DataFilter
	for _, c := range children {
		c = c.Optimize()
		if v, known := c.Constant(); known {
			if v == unit {
				continue
			}
			return constData(!unit)
		}
		if c.op == op {
			kept = append(kept, c.children...)
			continue
		}
		kept = append(kept, c)
	}
	switch len(kept) {
	case 0:
		return constData(unit)
	case 1:
		return kept[0]
	}

	return DataFilter{op: op, children: kept}
}

func constData(v bool) DataFilter {
	if v {
		return Any()
	}

	return None()
}

// String renders f for diagnostics, e.g. and(text("x"), has-id).
func (f DataFilter) String() string {
	var sb strings.Builder
	f.write(&sb)

	return sb.String()
}

func (f DataFilter) write(sb *strings.Builder) {
	sb.WriteString(f.op.String())
	switch f.op {
	case DataAnd, DataOr, DataNot:
		sb.WriteByte('(')
		for i, c := range f.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.write(sb)
		}
		sb.WriteByte(')')
	case DataText:
		sb.WriteString("(" + strconv.Quote(f.text) + ")")
	case DataID, DataNotID:
		sb.WriteString("(" + f.ident.String() + ")")
	case DataHasLink:
		sb.WriteByte('(')
		f.link.write(sb)
		sb.WriteByte(')')
	}
}

// textMatcher accepts only text kinds and records an exact match.
type textMatcher struct {
	core.BaseReceiver
	want  string
	found bool
}

func (m *textMatcher) Accepts() core.Set { return core.TextKinds }

func (m *textMatcher) Str(v string) {
	if v == m.want {
		m.found = true
	}
}

func (m *textMatcher) Char(v rune) {
	if string(v) == m.want {
		m.found = true
	}
}

func textEquals(d core.Data, want string) bool {
	if d == nil {
		return false
	}
	m := &textMatcher{want: want}
	d.ProvideValue(core.NewRequest(m))

	return m.found
}

func hasLink(d core.Data, lf LinkFilter) (bool, error) {
	if d == nil {
		return false, nil
	}
	found := false
	err := d.ProvideLinks(core.LinksFunc(func(target, key core.Data) (core.Control, error) {
		ok, err := lf.Matches(target, key)
		if err != nil {
			return core.Break, err
		}
		if ok {
			found = true
			return core.Break, nil
		}
		return core.Continue, nil
	}))
	if err != nil {
		return false, err
	}

	return found, nil
}
