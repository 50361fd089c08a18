// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// queueItem pairs a visit with the closest identified ancestor.
type queueItem struct {
	Visit
	parent    id.ID
	hasParent bool
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[id.ID]bool
	res     *Result
}

// BFS runs breadth-first search from root, applying any number of functional
// Options. Links of each value are fetched with one ProvideLinks call.
func BFS(root core.Data, opts ...Option) (*Result, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[id.ID]bool),
		res: &Result{
			Depth:  make(map[id.ID]int),
			Parent: make(map[id.ID]id.ID),
		},
	}
	w.enqueue(queueItem{Visit: Visit{Data: root}})

	return w.res, w.loop()
}

// enqueue marks identified values visited, records depth and parent, calls
// OnEnqueue and appends to the queue.
func (w *walker) enqueue(item queueItem) {
	if ident, ok := core.IDOf(item.Data); ok {
		item.ID = ident
		w.visited[ident] = true
		w.res.Depth[ident] = item.Depth
		if item.hasParent {
			w.res.Parent[ident] = item.parent
		}
	}
	w.opts.OnEnqueue(item.Visit)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueLinks(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.Visit)

	return item
}

// visit records the value in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.Data)
	if err := w.opts.OnVisit(item.Visit); err != nil {
		return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.Depth, err)
	}

	return nil
}

// enqueueLinks fetches the links of item, applies filter and depth limit,
// and enqueues every target not seen yet.
func (w *walker) enqueueLinks(item queueItem) error {
	next := item.Depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	if w.opts.MaxDepth == 0 && next > DepthCap {
		return fmt.Errorf("%w: depth %d", ErrDepthExceeded, next)
	}

	parent, hasParent := item.parent, item.hasParent
	if !item.ID.IsZero() {
		parent, hasParent = item.ID, true
	}

	err := item.Data.ProvideLinks(core.LinksFunc(func(target, key core.Data) (core.Control, error) {
		select {
		case <-w.ctx.Done():
			return core.Break, w.ctx.Err()
		default:
		}
		ok, err := w.opts.Filter.Matches(target, key)
		if err != nil {
			return core.Break, err
		}
		if !ok {
			w.res.SkippedLinks++
			return core.Continue, nil
		}
		if ident, has := core.IDOf(target); has && w.visited[ident] {
			return core.Continue, nil
		}
		w.enqueue(queueItem{
			Visit:     Visit{Data: target, Key: key, Depth: next},
			parent:    parent,
			hasParent: hasParent,
		})

		return core.Continue, nil
	}))
	if err != nil {
		return fmt.Errorf("bfs: ProvideLinks at depth %d: %w", item.Depth, err)
	}

	return nil
}
