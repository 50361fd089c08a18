// SPDX-License-Identifier: MIT

package query_test

import (
	"testing"

	"github.com/SebastianSpeitel/datalink/query"
)

// BenchmarkOptimize folds a deep mixed tree.
func BenchmarkOptimize(b *testing.B) {
	f := query.Text("leaf")
	for i := 0; i < 32; i++ {
		f = query.AllOf(query.Any(), query.AnyOf(f, query.None()), query.Not(query.Not(query.HasID())))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Optimize()
	}
}

// BenchmarkMatches evaluates an optimized link query over a small fan-out.
func BenchmarkMatches(b *testing.B) {
	f := query.HasLink(query.KeyText("carol").And(query.Target(query.Text("admin")))).Optimize()
	d := people()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Matches(d); err != nil {
			b.Fatal(err)
		}
	}
}
