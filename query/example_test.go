// SPDX-License-Identifier: MIT

package query_test

import (
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/query"
)

// ExampleDataFilter_Optimize shows constant folding.
func ExampleDataFilter_Optimize() {
	f := query.AllOf(query.Any(), query.Text("x"))
	fmt.Println(f)
	fmt.Println(f.Optimize())
	fmt.Println(query.AllOf(query.None(), query.Text("x")).Optimize())
	// Output:
	// and(any, text("x"))
	// text("x")
	// none
}

// ExampleQuery_Collect selects the keyed links whose target is the text "on".
func ExampleQuery_Collect() {
	settings := core.NewTextMap()
	_, _ = settings.Push(core.Str("on"), core.Str("wifi"))
	_, _ = settings.Push(core.Str("off"), core.Str("bluetooth"))
	_, _ = settings.Push(core.Str("on"), core.Str("gps"))

	q, err := query.New().Where(query.Text("on")).Filter(query.Keyed()).Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	links, err := q.Collect(settings)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range links {
		k, _ := core.AsText(l.Key)
		fmt.Println(k)
	}
	// Output:
	// wifi
	// gps
}
