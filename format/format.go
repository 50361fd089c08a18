// SPDX-License-Identifier: MIT

package format

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/SebastianSpeitel/datalink/core"
)

// Named lets a value choose the type name shown in its header.
type Named interface {
	TypeName() string
}

// Formatter renders values under a fixed, validated policy. It holds no
// per-call state and may be reused.
type Formatter struct {
	opts Options
}

// New applies opts over DefaultOptions and validates the result.
func New(opts ...Option) (*Formatter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Formatter{opts: o}, nil
}

// Options returns the policy of f.
func (f *Formatter) Options() Options { return f.opts }

// Fprint renders d to w.
func (f *Formatter) Fprint(w io.Writer, d core.Data) error {
	if d == nil {
		return ErrNilData
	}
	p := &printer{w: w, opts: f.opts}
	if err := p.render(d, f.opts.MaxDepth, 0); err != nil {
		return fmt.Errorf("format: render %s: %w", typeName(d), err)
	}

	return nil
}

// Sprint renders d to a string.
func (f *Formatter) Sprint(d core.Data) (string, error) {
	var buf bytes.Buffer
	if err := f.Fprint(&buf, d); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Fprint renders d to w with a Formatter built from opts.
func Fprint(w io.Writer, d core.Data, opts ...Option) error {
	f, err := New(opts...)
	if err != nil {
		return err
	}

	return f.Fprint(w, d)
}

// Sprint renders d to a string with a Formatter built from opts.
func Sprint(d core.Data, opts ...Option) (string, error) {
	f, err := New(opts...)
	if err != nil {
		return "", err
	}

	return f.Sprint(d)
}

// Stringer returns a fmt.Stringer that renders d on demand. Rendering errors
// appear inline as "!format(<error>)".
func Stringer(d core.Data, opts ...Option) fmt.Stringer {
	return lazy{d: d, opts: opts}
}

type lazy struct {
	d    core.Data
	opts []Option
}

func (l lazy) String() string {
	s, err := Sprint(l.d, l.opts...)
	if err != nil {
		return "!format(" + err.Error() + ")"
	}

	return s
}

// typeName resolves the header of d. Wrappers are named after what they wrap.
func typeName(d core.Data) string {
	switch v := d.(type) {
	case Named:
		return v.TypeName()
	case core.Scalar:
		return v.Kind().String()
	case *core.Boxed:
		if inner := v.Unbox(); inner != nil {
			return typeName(inner)
		}
	case *core.Identified:
		if v.Data != nil {
			return typeName(v.Data)
		}
	}

	return strings.TrimLeft(fmt.Sprintf("%T", d), "*")
}

// printer writes one rendering; the first write error sticks.
type printer struct {
	w    io.Writer
	opts Options
	err  error
}

func (p *printer) write(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) indent(level int) string {
	return strings.Repeat(p.opts.Indent, level)
}

// render writes d at the given remaining depth and indentation level.
func (p *printer) render(d core.Data, depth, level int) error {
	n := &node{p: p, name: typeName(d), vals: core.Collect(d, core.AllKinds), level: level, depth: depth}

	if p.opts.Strategy == Streaming {
		err := d.ProvideLinks(core.LinksFunc(func(target, key core.Data) (core.Control, error) {
			if err := n.link(target, key); err != nil {
				return core.Break, err
			}
			return core.Continue, nil
		}))
		if err != nil {
			return err
		}
		return n.close()
	}

	links, err := core.AllLinks(d)
	if err != nil {
		return err
	}
	if p.opts.SortedKeys {
		links = sortLinks(links)
	}
	for _, l := range links {
		if err := n.link(l.Target, l.Key); err != nil {
			return err
		}
	}

	return n.close()
}

// node renders one value. The header is written on the first link or on
// close, so both strategies produce the same bytes.
type node struct {
	p      *printer
	name   string
	vals   []core.Scalar
	level  int
	depth  int
	opened bool
}

func (n *node) link(target, key core.Data) error {
	p := n.p
	if !n.opened {
		n.opened = true
		n.header()
	} else if p.opts.Verbose {
		p.write("\n")
	} else {
		p.write(", ")
	}
	if p.opts.Verbose {
		p.write(p.indent(n.level + 2))
	}
	if n.depth == 0 {
		p.write("...")
		return p.err
	}
	if key != nil {
		if err := p.render(key, n.depth-1, n.level+2); err != nil {
			return err
		}
		p.write(" -> ")
	}
	if err := p.render(target, n.depth-1, n.level+2); err != nil {
		return err
	}

	return p.err
}

// header opens the link list.
func (n *node) header() {
	p := n.p
	if p.opts.Verbose {
		p.write(n.name, " {\n")
		if len(n.vals) > 0 {
			p.write(p.indent(n.level+1), "values: ", valueList(n.vals), "\n")
		}
		p.write(p.indent(n.level+1), "links: [\n")
		return
	}
	p.write(n.name, " {")
	if len(n.vals) > 0 {
		p.write(" values: ", valueList(n.vals), ",")
	}
	p.write(" links: [")
}

func (n *node) close() error {
	p := n.p
	switch {
	case n.opened && p.opts.Verbose:
		p.write("\n", p.indent(n.level+1), "]\n", p.indent(n.level), "}")
	case n.opened:
		p.write("] }")
	case p.opts.CollapseLinkless:
		p.write(collapse(n.vals))
	case len(n.vals) == 0:
		p.write(n.name, " {}")
	case p.opts.Verbose:
		p.write(n.name, " {\n", p.indent(n.level+1), "values: ", valueList(n.vals), "\n", p.indent(n.level), "}")
	default:
		p.write(n.name, " { values: ", valueList(n.vals), " }")
	}

	return p.err
}

func valueList(vals []core.Scalar) string {
	return "[" + joinScalars(vals) + "]"
}

func joinScalars(vals []core.Scalar) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}

	return strings.Join(parts, ", ")
}

// sortLinks orders links by key text, unkeyed links first, keeping push
// order among equal keys.
func sortLinks(links core.Pairs) core.Pairs {
	type keyed struct {
		link core.Link
		text string
	}
	tmp := make([]keyed, len(links))
	for i, l := range links {
		tmp[i] = keyed{link: l}
		if l.Key != nil {
			tmp[i].text = "\x01" + keyText(l.Key)
		}
	}
	slices.SortStableFunc(tmp, func(a, b keyed) int { return strings.Compare(a.text, b.text) })
	out := make(core.Pairs, len(tmp))
	for i, k := range tmp {
		out[i] = k.link
	}

	return out
}

func keyText(key core.Data) string {
	if s, ok := core.AsText(key); ok {
		return s
	}

	return joinScalars(core.Collect(key, core.AllKinds))
}
