// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
	"github.com/SebastianSpeitel/datalink/query"
)

// Visitation states of identified values.
const (
	White = iota // not visited yet
	Gray         // on the current path
	Black        // fully explored
)

// DepthCap bounds walks that set no MaxDepth.
const DepthCap = 1 << 12

var (
	// ErrNilRoot is returned when the root value is nil.
	ErrNilRoot = errors.New("dfs: root is nil")

	// ErrDepthExceeded indicates an unbounded walk that went deeper than
	// DepthCap, typically a cycle through values without identity.
	ErrDepthExceeded = errors.New("dfs: depth cap exceeded")

	// ErrCycleDetected indicates a cycle during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Visit describes one reached value.
type Visit struct {
	Data  core.Data
	Key   core.Data // key of the link that reached Data; nil for the root
	Depth int
	ID    id.ID // zero when Data has no identity
}

// Option configures DFS.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a value is reached (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(v Visit) error

	// OnExit, if non-nil, runs after a value's links were explored
	// (post-order). Returning an error aborts the walk.
	OnExit func(v Visit) error

	// MaxDepth, if non-negative, limits the walk to that many link levels.
	// Default -1 (no limit beyond DepthCap).
	MaxDepth int

	// Filter selects the links to follow; the zero filter follows all.
	Filter query.LinkFilter
}

// DefaultOptions returns Background context, no hooks, no depth limit and
// no link filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Filter:   query.AnyLink(),
	}
}

// WithContext sets the cancellation context. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v Visit) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(v Visit) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the walk to limit link levels; 0 visits only the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilter follows only links matching lf. The filter is optimized once.
func WithFilter(lf query.LinkFilter) Option {
	return func(o *Options) {
		o.Filter = lf.Optimize()
	}
}

// Result captures the outcome of a depth-first walk.
type Result struct {
	// Preorder records reached values in discovery order.
	Preorder []core.Data

	// Order records values in the order they finished (post-order).
	Order []core.Data

	// Depth maps each identified value to its discovery depth.
	Depth map[id.ID]int

	// Parent maps each identified value to the identified value it was first
	// reached from. The root and values reached from anonymous values have
	// no entry.
	Parent map[id.ID]id.ID

	// Visited flags the identified values reached.
	Visited map[id.ID]bool

	// SkippedLinks counts links rejected by the filter.
	SkippedLinks int
}
