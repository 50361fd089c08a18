// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// Node is a mutable value with optional identity, scalars and ordered links.
// It must not be mutated while a traversal reads it.
type Node struct {
	name   string
	ident  id.ID
	values []core.Scalar
	links  core.Pairs
}

// NewNode returns an empty node. A zero ident means no identity.
func NewNode(name string, ident id.ID) *Node {
	return &Node{name: name, ident: ident}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// ID reports the node identity.
func (n *Node) ID() (id.ID, bool) { return n.ident, !n.ident.IsZero() }

// TypeName names the node in formatted output.
func (n *Node) TypeName() string { return "Node" }

// AddValue appends scalar values and returns n.
func (n *Node) AddValue(vs ...core.Scalar) *Node {
	n.values = append(n.values, vs...)
	return n
}

// Link appends an unkeyed link to target and returns n.
func (n *Node) Link(target core.Data) *Node {
	n.links = append(n.links, core.Link{Target: target})
	return n
}

// LinkKeyed appends a link from key to target and returns n.
func (n *Node) LinkKeyed(key, target core.Data) *Node {
	n.links = append(n.links, core.Link{Key: key, Target: target})
	return n
}

// Links returns a copy of the outgoing links.
func (n *Node) Links() core.Pairs { return append(core.Pairs(nil), n.links...) }

// Degree returns the number of outgoing links.
func (n *Node) Degree() int { return len(n.links) }

// ProvideValue offers the stored scalars in insertion order.
func (n *Node) ProvideValue(req *core.Request) {
	for _, v := range n.values {
		req.Provide(v)
	}
}

// ProvideLinks pushes the stored links in insertion order.
func (n *Node) ProvideLinks(links core.Links) error {
	_, err := core.Extend(links, n.links)
	return err
}

// String returns the node name.
func (n *Node) String() string { return n.name }

// Graph is an ordered, name-indexed set of nodes.
type Graph struct {
	nodes  []*Node
	byName map[string]*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{byName: make(map[string]*Node)}
}

// AddNode inserts n. Names are unique.
func (g *Graph) AddNode(n *Node) error {
	if _, dup := g.byName[n.name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.name)
	}
	g.nodes = append(g.nodes, n)
	g.byName[n.name] = n

	return nil
}

// Node returns the node called name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node { return append([]*Node(nil), g.nodes...) }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Root returns the first node, or nil for an empty graph.
func (g *Graph) Root() *Node {
	if len(g.nodes) == 0 {
		return nil
	}

	return g.nodes[0]
}

// Connect links from to to, keyed by key when key is non-nil.
func (g *Graph) Connect(from, to string, key core.Data) error {
	u, ok := g.byName[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	v, ok := g.byName[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	u.LinkKeyed(key, v)

	return nil
}

// TypeName names the graph in formatted output.
func (g *Graph) TypeName() string { return "Graph" }

// ProvideValue offers the node count.
func (g *Graph) ProvideValue(req *core.Request) {
	req.ProvideU64(uint64(len(g.nodes)))
}

// ProvideLinks links to every node keyed by its name, in insertion order.
func (g *Graph) ProvideLinks(links core.Links) error {
	for _, n := range g.nodes {
		ctl, err := links.Push(n, core.Str(n.name))
		if err != nil || ctl == core.Break {
			return err
		}
	}

	return nil
}
