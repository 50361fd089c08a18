// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// cycleFinder carries the state of one DetectCycles call.
type cycleFinder struct {
	opts   Options
	state  map[id.ID]int
	path   []id.ID
	seen   map[string]struct{}
	cycles [][]id.ID
}

// DetectCycles reports the cycles closed by back links among the identified
// values reachable from root. Each cycle is closed ([a, b, a]), rotated so it
// starts at its smallest identity, and the list is sorted. A self link yields
// [a, a]. Only Ctx and Filter of opts apply.
//
// An anonymous root is entered so that its links are followed; anonymous
// values below it are not.
func DetectCycles(root core.Data, opts ...Option) (bool, [][]id.ID, error) {
	if root == nil {
		return false, nil, ErrNilRoot
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	f := &cycleFinder{
		opts:  o,
		state: make(map[id.ID]int),
		seen:  make(map[string]struct{}),
	}
	if err := f.enter(root); err != nil {
		return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
	}

	sort.Slice(f.cycles, func(i, j int) bool {
		return JoinSig(f.cycles[i]) < JoinSig(f.cycles[j])
	})
	if len(f.cycles) == 0 {
		return false, nil, nil
	}

	return true, f.cycles, nil
}

// enter starts the walk at root, identified or not.
func (f *cycleFinder) enter(root core.Data) error {
	if ident, ok := core.IDOf(root); ok {
		return f.visit(ident, root)
	}
	next, err := identifiedLinks(f.opts, root)
	if err != nil {
		return err
	}
	for _, t := range next {
		if f.state[t.id] == White {
			if err = f.visit(t.id, t.data); err != nil {
				return err
			}
		}
	}

	return nil
}

func (f *cycleFinder) visit(ident id.ID, d core.Data) error {
	select {
	case <-f.opts.Ctx.Done():
		return f.opts.Ctx.Err()
	default:
	}

	f.state[ident] = Gray
	f.path = append(f.path, ident)

	next, err := identifiedLinks(f.opts, d)
	if err != nil {
		return err
	}
	for _, t := range next {
		switch f.state[t.id] {
		case White:
			if err = f.visit(t.id, t.data); err != nil {
				return err
			}
		case Gray:
			f.record(t.id)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[ident] = Black

	return nil
}

// record stores the cycle from start to the top of the path, once.
func (f *cycleFinder) record(start id.ID) {
	idx := IndexOf(f.path, start)
	rot := MinimalRotation(f.path[idx:])
	closed := append(rot, rot[0])

	sig := JoinSig(closed)
	if _, dup := f.seen[sig]; dup {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, closed)
}

// target is an identified link target.
type target struct {
	id   id.ID
	data core.Data
}

// identifiedLinks fetches the identified targets of d admitted by the filter,
// in push order.
func identifiedLinks(o Options, d core.Data) ([]target, error) {
	var out []target
	err := d.ProvideLinks(core.LinksFunc(func(t, key core.Data) (core.Control, error) {
		ok, err := o.Filter.Matches(t, key)
		if err != nil {
			return core.Break, err
		}
		if ident, has := core.IDOf(t); ok && has {
			out = append(out, target{id: ident, data: t})
		}

		return core.Continue, nil
	}))
	if err != nil {
		return nil, fmt.Errorf("ProvideLinks: %w", err)
	}

	return out, nil
}
