// SPDX-License-Identifier: MIT
// Package query implements the filter algebra over introspectable values and
// their links, and the Query object built from it.
//
// What:
//
//   - DataFilter: a boolean expression over one core.Data (Any, None, AllOf,
//     AnyOf, Not, Text, HasID, ID, NotID, HasLink).
//   - LinkFilter: a boolean expression over one (target, key) link (AnyLink,
//     NoLink, AllLinks, AnyLinks, NotLink, Key, Target).
//   - Query: a DataFilter on link targets, a LinkFilter on the links and a
//     result limit. Build optimizes both trees once.
//
// Evaluation:
//
//	Matches drives the candidate through the core protocols: Text opens a
//	Value Channel accepting only text kinds, HasLink opens a throwaway link
//	session and breaks on the first matching link. And stops at the first
//	false child, Or at the first true one. Filter trees are immutable values;
//	evaluation never mutates them.
//
// Optimization:
//
//	Optimize rewrites a tree bottom-up, folding constant children, flattening
//	nested And/Or nodes and removing double negation. It is idempotent and never
//	changes the result of Matches. Sub-filters removed as statically irrelevant
//	are never evaluated, so errors they would have raised are not observed.
//
// Errors:
//
//	ErrNegativeLimit  - Builder.Build was given a negative limit.
//
// Errors raised by values during evaluation (core.ErrUnsupportedQuery,
// core.OtherError, …) surface unchanged. A filter that does not match is never
// an error.
package query
