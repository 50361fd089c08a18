// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first traversal over the link graph of
// introspectable values, returning link distances, parent identities and
// the visit order.
//
// BFS explores values in increasing link distance from a root, with optional
// hooks, depth limiting and link filtering via query.LinkFilter.
//
// Identity:
//
//	An identified value is enqueued at most once, at its smallest distance.
//	Values without identity are enqueued every time a link reaches them, so
//	their links are fetched once per reach. Without a depth limit a walk that
//	goes deeper than DepthCap stops with ErrDepthExceeded.
//
// Complexity:
//
//   - Time:   O(V + E) over identified values plus hook and filter costs
//   - Memory: O(V) for the queue and the result maps
//
// Errors:
//
//   - ErrNilRoot          root is nil
//   - ErrOptionViolation  negative MaxDepth
//   - ErrDepthExceeded    unbounded walk passed DepthCap
//   - ErrNoPath           PathTo on an identity that was not reached
//   - context errors, hook errors and ProvideLinks errors, wrapped
package bfs
