// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/dfs"
	"github.com/SebastianSpeitel/datalink/graph"
	"github.com/SebastianSpeitel/datalink/id"
	"github.com/SebastianSpeitel/datalink/query"
	"github.com/SebastianSpeitel/datalink/record"
)

// ExampleDFS walks a star keyed by target name and prints the post-order.
func ExampleDFS() {
	g, err := graph.Build([]graph.Option{
		graph.WithIDScheme(graph.SymbolIDFn),
		graph.WithKeyedLinks(),
	}, graph.Star(4))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := dfs.DFS(g.Root(), dfs.WithFilter(query.Key(query.Not(query.Text("C")))))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Order, res.SkippedLinks)
	// Output:
	// [B D A] 1
}

// ExampleDFS_record lists the keys leading to every nested value.
func ExampleDFS_record() {
	addr := record.New("Address", record.Val("city", core.Str("Berlin")), record.Link("zip", core.U32(10115)))
	user := record.New("User", record.Link("name", core.Str("ada")), record.Link("address", addr))

	_, err := dfs.DFS(user, dfs.WithOnVisit(func(v dfs.Visit) error {
		if v.Key != nil {
			k, _ := core.AsText(v.Key)
			fmt.Println(v.Depth, k)
		}
		return nil
	}))
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// 1 name
	// 1 address
	// 2 zip
}

// ExampleTopologicalSort orders a small dependency DAG.
func ExampleTopologicalSort() {
	g := graph.New()
	for i, name := range []string{"app", "lib", "log", "fmt"} {
		_ = g.AddNode(graph.NewNode(name, id.MustNew(0, uint64(i+1))))
	}
	_ = g.Connect("app", "lib", nil)
	_ = g.Connect("app", "log", nil)
	_ = g.Connect("lib", "fmt", nil)
	_ = g.Connect("log", "fmt", nil)

	order, err := dfs.TopologicalSort(g.Root())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(order)
	// Output:
	// [app log lib fmt]
}
