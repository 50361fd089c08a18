// SPDX-License-Identifier: MIT
// Package datalink is a structured-data introspection protocol: any
// in-memory value can expose typed scalars, a graph of optionally keyed links
// to other values, and a stable identity. Debug printers, query engines and
// extractors read values through the protocol without knowing their types.
//
// What is in the box?
//
//	• Value channel: consumers declare the kinds they accept, producers
//	              offer scalars that are dropped by a bit test when unwanted
//	• Link protocol: push-based link sessions with Continue/Break control
//	• Filters: a data/link filter algebra with a constant-folding optimizer
//	• Formatting: depth-bounded rendering, eager or streaming
//	• Walks: identity-aware DFS and BFS, cycle detection, topological order
//
// Packages:
//
//	id/           non-zero 128-bit identities (UUID text form)
//	core/         Data, Request/Receiver, Links, scalars and sink adaptors
//	query/        DataFilter, LinkFilter, Query and filtered sinks
//	format/       the formatting engine
//	record/       field-policy tables for record types
//	graph/        mutable nodes and topology constructors
//	dfs/, bfs/    traversals over the link graph
//	converters/   YAML documents and Go values as Data
//	cmd/datalink  CLI to format, query and walk YAML files
//
// Quick example:
//
//	user := record.New("User",
//		record.Both("name", core.Str("ada")),
//		record.Val("admin", core.Bool(true)),
//	)
//	s, _ := format.Sprint(user, format.WithCollapseLinkless(true))
//	// User { values: ["ada", true], links: [{"name"} -> {"ada"}] }
//
//	go get github.com/SebastianSpeitel/datalink
package datalink
