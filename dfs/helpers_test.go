// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/graph"
	"github.com/SebastianSpeitel/datalink/id"
)

// edge is a directed link u→v, keyed by key when non-empty.
type edge struct{ U, V, Key string }

// build returns a graph whose i-th name gets identity i+1, so identities
// order like the names list.
func build(t testing.TB, names []string, edges []edge) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i, name := range names {
		require.NoError(t, g.AddNode(graph.NewNode(name, id.MustNew(0, uint64(i+1)))))
	}
	for _, e := range edges {
		var key core.Data
		if e.Key != "" {
			key = core.Str(e.Key)
		}
		require.NoError(t, g.Connect(e.U, e.V, key))
	}

	return g
}

// node returns the named node of g.
func node(t testing.TB, g *graph.Graph, name string) *graph.Node {
	t.Helper()
	n, ok := g.Node(name)
	require.True(t, ok, "node %q", name)

	return n
}

// names renders each value with fmt.
func names(ds []core.Data) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = fmt.Sprint(d)
	}

	return out
}

// cycleNames maps identities back to node names.
func cycleNames(g *graph.Graph, cycles [][]id.ID) [][]string {
	byID := make(map[id.ID]string, g.Len())
	for _, n := range g.Nodes() {
		i, _ := n.ID()
		byID[i] = n.Name()
	}
	out := make([][]string, len(cycles))
	for i, c := range cycles {
		for _, x := range c {
			out[i] = append(out[i], byID[x])
		}
	}

	return out
}

type failing struct{ core.Empty }

func (failing) ProvideLinks(core.Links) error { return core.Errorf("links unavailable") }

// diamond is A→{B,C}, B→D, C→D, D→{E,F}.
var diamond = []edge{
	{"A", "B", ""}, {"A", "C", ""},
	{"B", "D", ""}, {"C", "D", ""},
	{"D", "E", ""}, {"D", "F", ""},
}

var letters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
