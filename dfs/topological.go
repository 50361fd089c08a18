// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// topoSorter carries the state of one TopologicalSort call.
type topoSorter struct {
	opts  Options
	state map[id.ID]int
	order []core.Data
}

// TopologicalSort orders the identified values reachable from root so that
// every link between two of them points forward. An anonymous root
// contributes its links but is not part of the order. Only Ctx and Filter of
// opts apply. A cycle yields ErrCycleDetected.
func TopologicalSort(root core.Data, opts ...Option) ([]core.Data, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	t := &topoSorter{opts: o, state: make(map[id.ID]int)}
	if ident, ok := core.IDOf(root); ok {
		if err := t.visit(ident, root); err != nil {
			return nil, err
		}
	} else {
		next, err := identifiedLinks(o, root)
		if err != nil {
			return nil, err
		}
		for _, n := range next {
			if err = t.visit(n.id, n.data); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(ident id.ID, d core.Data) error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	switch t.state[ident] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[ident] = Gray

	next, err := identifiedLinks(t.opts, d)
	if err != nil {
		return err
	}
	for _, n := range next {
		if err = t.visit(n.id, n.data); err != nil {
			return err
		}
	}

	t.state[ident] = Black
	t.order = append(t.order, d)

	return nil
}
