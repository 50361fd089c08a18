// SPDX-License-Identifier: MIT
// Package dfs implements depth-first traversal, cycle detection and
// topological sort over the link graph of introspectable values.
//
// What:
//
//   - DFS: explores as far as possible along each link before backtracking.
//     Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Link filtering with a query.LinkFilter
//   - DetectCycles: enumerates the simple cycles among identified values,
//     canonicalized by minimal rotation and sorted.
//   - TopologicalSort: orders identified values so every link points
//     forward, returning ErrCycleDetected otherwise.
//
// Identity:
//
//	Values that report an identity are visited once; a second reach is
//	skipped. Values without identity cannot be recognized again, so they are
//	visited on every reach. A cyclic graph of anonymous values therefore needs
//	WithMaxDepth; without it the walk stops with ErrDepthExceeded at
//	DepthCap. DetectCycles and TopologicalSort work on the identity graph
//	only and treat anonymous targets as leaves they do not enter.
//
// Complexity:
//
//   - DFS:             Time O(V+E) over identified values, Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilRoot        root value is nil
//   - ErrDepthExceeded  unbounded walk passed DepthCap
//   - ErrCycleDetected  cycle found by TopologicalSort
//   - context.Canceled  walk canceled via context
//   - hook errors and ProvideLinks errors, wrapped with the failing step
package dfs
