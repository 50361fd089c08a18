// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
	"github.com/SebastianSpeitel/datalink/query"
)

// DepthCap bounds walks that set no MaxDepth.
const DepthCap = 1 << 12

// Sentinel errors for BFS execution.
var (
	// ErrNilRoot is returned when the root value is nil.
	ErrNilRoot = errors.New("bfs: root is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrDepthExceeded stops unbounded walks deeper than DepthCap.
	ErrDepthExceeded = errors.New("bfs: depth cap exceeded")

	// ErrNoPath is returned by PathTo for identities that were not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Visit describes one queued value.
type Visit struct {
	Data  core.Data
	Key   core.Data // key of the link that reached Data; nil for the root
	Depth int
	ID    id.ID // zero when Data has no identity
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a value is enqueued.
	OnEnqueue func(v Visit)

	// OnDequeue is called immediately before visiting a value.
	OnDequeue func(v Visit)

	// OnVisit is called when visiting a value. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v Visit) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// Filter selects the links to follow.
	Filter query.LinkFilter

	err error
}

// DefaultOptions returns Background context, no-op hooks, no depth limit
// and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(Visit) {},
		OnDequeue: func(Visit) {},
		OnVisit:   func(Visit) error { return nil },
		Filter:    query.AnyLink(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v Visit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v Visit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v Visit) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below depth d.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter follows only links matching lf.
func WithFilter(lf query.LinkFilter) Option {
	return func(o *Options) {
		o.Filter = lf.Optimize()
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: values visited, in visit sequence.
//   - Depth: identity → link distance from the root.
//   - Parent: identity → identity of its predecessor in the BFS tree.
//   - SkippedLinks: links rejected by the filter.
type Result struct {
	Order        []core.Data
	Depth        map[id.ID]int
	Parent       map[id.ID]id.ID
	SkippedLinks int
}

// PathTo reconstructs the identities from the root to dest. Anonymous values
// on the way are not part of the path.
func (r *Result) PathTo(dest id.ID) ([]id.ID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	path := []id.ID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
