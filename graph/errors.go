// SPDX-License-Identifier: MIT

package graph

import "errors"

var (
	// ErrTooFewNodes indicates a size parameter below a constructor's minimum.
	// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
	ErrTooFewNodes = errors.New("graph: too few nodes")

	// ErrDuplicateNode indicates an AddNode with a name already in the graph.
	ErrDuplicateNode = errors.New("graph: duplicate node")

	// ErrNodeNotFound indicates a reference to a name not in the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrOptionViolation indicates that a WithX option received a meaningless
	// value, e.g. a nil IDFn.
	ErrOptionViolation = errors.New("graph: invalid option value")
)
