// SPDX-License-Identifier: MIT
// Package graph provides a mutable in-memory node type that implements the
// introspection protocol, and deterministic topology constructors to build
// fixtures from it.
//
// What:
//
//   - Node: optional identity, scalar values and ordered, optionally keyed
//     links. Implements core.Data, core.Identifiable and format.Named.
//   - Graph: an ordered, name-indexed set of Nodes. As Data it links to every
//     node keyed by name, so a whole graph can be formatted or queried.
//   - Constructors: Path, Cycle, Star, Complete, SelfLoop, composed by Build.
//
// Determinism:
//
//	Node names come from the IDFn (decimal by default) in index order; links
//	are emitted in ascending index order. Identities are id.Named values in
//	the configured namespace, so the same options always yield the same ids.
//
// Options:
//
//	WithIDScheme     node naming: index -> name.
//	WithNamespace    namespace of node identities.
//	WithAnonymous    build nodes without identity.
//	WithKeyedLinks   key every link by the target's name.
//	WithBidirectional emit the reverse link of every edge.
//
// Errors:
//
//	ErrTooFewNodes      - a size parameter is below the constructor minimum.
//	ErrDuplicateNode    - a node name is already present.
//	ErrNodeNotFound     - a link references an unknown node.
//	ErrOptionViolation  - an option received a meaningless value.
package graph
