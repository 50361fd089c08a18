// SPDX-License-Identifier: MIT

package converters

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SebastianSpeitel/datalink/core"
)

// FromYAML converts the first document of r.
func FromYAML(r io.Reader) (core.Data, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("converters: decode yaml: %w", err)
	}

	return FromYAMLNode(&doc)
}

// FromYAMLAll converts every document of r, in order.
func FromYAMLAll(r io.Reader) ([]core.Data, error) {
	dec := yaml.NewDecoder(r)
	var out []core.Data
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("converters: decode yaml document %d: %w", len(out), err)
		}
		d, err := FromYAMLNode(&doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(out), err)
		}
		out = append(out, d)
	}

	return out, nil
}

// FromYAMLNode converts a parsed node tree. A document node converts its
// content; a document without content is ErrEmptyDocument.
func FromYAMLNode(n *yaml.Node) (core.Data, error) {
	if n == nil {
		return nil, ErrEmptyDocument
	}
	c := &yamlConverter{
		done:   make(map[*yaml.Node]core.Data),
		active: make(map[*yaml.Node]bool),
	}

	return c.convert(n)
}

// yamlConverter memoizes anchored nodes so aliases share one value.
type yamlConverter struct {
	done   map[*yaml.Node]core.Data
	active map[*yaml.Node]bool
}

func (c *yamlConverter) convert(n *yaml.Node) (core.Data, error) {
	if d, ok := c.done[n]; ok {
		return d, nil
	}
	if c.active[n] {
		return nil, fmt.Errorf("%w: &%s at line %d", ErrAlias, n.Anchor, n.Line)
	}
	c.active[n] = true
	defer delete(c.active, n)

	var (
		d   core.Data
		err error
	)
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		d, err = c.convert(n.Content[0])
	case yaml.AliasNode:
		d, err = c.convert(n.Alias)
	case yaml.MappingNode:
		d, err = c.mapping(n)
	case yaml.SequenceNode:
		d, err = c.sequence(n)
	case yaml.ScalarNode:
		d, err = scalar(n)
	default:
		err = fmt.Errorf("converters: unknown node kind %d at line %d", n.Kind, n.Line)
	}
	if err != nil {
		return nil, err
	}
	if n.Anchor != "" {
		c.done[n] = d
	}

	return d, nil
}

func (c *yamlConverter) mapping(n *yaml.Node) (core.Data, error) {
	m := NewMapping("")
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, err := c.convert(n.Content[i])
		if err != nil {
			return nil, err
		}
		v, err := c.convert(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		m.Set(k, v)
	}

	return m, nil
}

func (c *yamlConverter) sequence(n *yaml.Node) (core.Data, error) {
	s := &Sequence{items: make([]core.Data, 0, len(n.Content))}
	for _, item := range n.Content {
		d, err := c.convert(item)
		if err != nil {
			return nil, err
		}
		s.Append(d)
	}

	return s, nil
}

// scalar types n by its resolved tag.
func scalar(n *yaml.Node) (core.Data, error) {
	switch n.ShortTag() {
	case "!!null":
		return core.Empty{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, scalarErr(n, err)
		}
		return core.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return core.I64(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, scalarErr(n, err)
		}
		return core.U64(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, scalarErr(n, err)
		}
		return core.F64(f), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return nil, scalarErr(n, err)
		}
		return core.Bytes(b), nil
	}

	return core.Str(n.Value), nil
}

func scalarErr(n *yaml.Node, err error) error {
	return fmt.Errorf("%w: %s %q at line %d: %v", ErrScalar, n.ShortTag(), n.Value, n.Line, err)
}
