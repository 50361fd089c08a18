// SPDX-License-Identifier: MIT
// Package: datalink/graph
//
// build.go - Build orchestrator and topology constructors.
//
// Contract:
//   - Build creates an empty Graph, resolves the config and applies every
//     Constructor in order; the first error is wrapped and returned.
//   - Constructors validate sizes first and return ErrTooFewNodes.
//   - Nodes are added in ascending index order with names from cfg.idFn,
//     each carrying its name as a string value.
//   - Links are emitted in ascending index order; with WithBidirectional the
//     reverse link follows its forward link immediately.
//
// Complexity:
//   - Path, Cycle, Star: O(n) nodes and links.
//   - Complete: O(n) nodes, O(n²) links.

package graph

import (
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// Method tags and size minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodSelfLoop = "SelfLoop"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 2
)

// Constructor applies a deterministic mutation to g using the resolved cfg.
type Constructor func(g *Graph, cfg config) error

// Build returns a new Graph with every constructor applied in order.
func Build(opts []Option, cons ...Constructor) (*Graph, error) {
	cfg := newConfig(opts...)
	if cfg.violation != nil {
		return nil, cfg.violation
	}
	g := New()
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Path returns a Constructor for the path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		nodes, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			connect(cfg, nodes[i-1], nodes[i])
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring i→(i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		nodes, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			connect(cfg, nodes[i], nodes[(i+1)%n])
		}

		return nil
	}
}

// Star returns a Constructor for node 0 linked to each of the n-1 others.
func Star(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		nodes, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			connect(cfg, nodes[0], nodes[i])
		}

		return nil
	}
}

// Complete returns a Constructor linking every node to every other node.
// WithBidirectional has no further effect: every pair is already linked
// both ways.
func Complete(n int) Constructor {
	return func(g *Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		nodes, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		oneWay := cfg
		oneWay.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					connect(oneWay, nodes[i], nodes[j])
				}
			}
		}

		return nil
	}
}

// SelfLoop returns a Constructor for a single node linked to itself.
func SelfLoop() Constructor {
	return func(g *Graph, cfg config) error {
		nodes, err := addNodes(g, cfg, methodSelfLoop, 1)
		if err != nil {
			return err
		}
		oneWay := cfg
		oneWay.bidirectional = false
		connect(oneWay, nodes[0], nodes[0])

		return nil
	}
}

// addNodes inserts n fresh nodes named by cfg.idFn.
func addNodes(g *Graph, cfg config, method string, n int) ([]*Node, error) {
	nodes := make([]*Node, n)
	for i := 0; i < n; i++ {
		name := cfg.idFn(i)
		var ident id.ID
		if !cfg.anonymous {
			ident = id.Named(cfg.namespace, name)
		}
		nd := NewNode(name, ident).AddValue(core.Str(name))
		if err := g.AddNode(nd); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, name, err)
		}
		nodes[i] = nd
	}

	return nodes, nil
}

// connect emits u→v and, when bidirectional, v→u.
func connect(cfg config, u, v *Node) {
	link(cfg, u, v)
	if cfg.bidirectional {
		link(cfg, v, u)
	}
}

func link(cfg config, u, v *Node) {
	if cfg.keyed {
		u.LinkKeyed(core.Str(v.name), v)
		return
	}
	u.Link(v)
}
