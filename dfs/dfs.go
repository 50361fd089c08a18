// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// walker carries the state of one DFS call.
type walker struct {
	opts Options
	res  *Result
}

// DFS walks the link graph reachable from root depth-first, following links in
// the order they are pushed. Each value's links are fetched with one
// ProvideLinks call before any of them is entered.
func DFS(root core.Data, opts ...Option) (*Result, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{
		Depth:   make(map[id.ID]int),
		Parent:  make(map[id.ID]id.ID),
		Visited: make(map[id.ID]bool),
	}
	w := &walker{opts: o, res: res}
	if err := w.traverse(Visit{Data: root}, id.ID{}, false); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits v, then every admitted link of v. parent is the closest
// identified ancestor when hasParent is set.
func (w *walker) traverse(v Visit, parent id.ID, hasParent bool) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && v.Depth > w.opts.MaxDepth {
		return nil
	}
	if w.opts.MaxDepth < 0 && v.Depth > DepthCap {
		return fmt.Errorf("%w: depth %d", ErrDepthExceeded, v.Depth)
	}

	ident, identified := core.IDOf(v.Data)
	if identified {
		if w.res.Visited[ident] {
			return nil
		}
		v.ID = ident
		w.res.Visited[ident] = true
		w.res.Depth[ident] = v.Depth
		if hasParent {
			w.res.Parent[ident] = parent
		}
		parent, hasParent = ident, true
	}
	w.res.Preorder = append(w.res.Preorder, v.Data)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook at depth %d: %w", v.Depth, err)
		}
	}

	next, err := w.links(v.Data)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: ProvideLinks at depth %d: %w", v.Depth, err)
	}
	for _, l := range next {
		child := Visit{Data: l.Target, Key: l.Key, Depth: v.Depth + 1}
		if err = w.traverse(child, parent, hasParent); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook at depth %d: %w", v.Depth, err)
		}
	}
	w.res.Order = append(w.res.Order, v.Data)

	return nil
}

// links collects the links of d admitted by the filter.
func (w *walker) links(d core.Data) (core.Pairs, error) {
	var out core.Pairs
	err := d.ProvideLinks(core.LinksFunc(func(target, key core.Data) (core.Control, error) {
		ok, err := w.opts.Filter.Matches(target, key)
		if err != nil {
			return core.Break, err
		}
		if !ok {
			w.res.SkippedLinks++
			return core.Continue, nil
		}
		out = append(out, core.Link{Key: key, Target: target})

		return core.Continue, nil
	}))

	return out, err
}
