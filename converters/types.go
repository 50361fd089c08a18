// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
	"github.com/SebastianSpeitel/datalink/query"
)

// IDKey is the mapping key whose UUID text becomes the mapping identity.
const IDKey = "id"

// Mapping is an ordered set of keyed links.
type Mapping struct {
	name  string
	pairs core.Pairs
	ident id.ID
}

// NewMapping returns an empty mapping reported as name; "" means "mapping".
func NewMapping(name string) *Mapping {
	if name == "" {
		name = "mapping"
	}

	return &Mapping{name: name}
}

// Set appends the entry key → value. A text key IDKey holding a UUID string
// sets the identity.
func (m *Mapping) Set(key, value core.Data) {
	m.pairs = append(m.pairs, core.Link{Key: key, Target: value})
	if k, ok := core.AsText(key); !ok || k != IDKey {
		return
	}
	if s, ok := core.AsText(value); ok {
		if i, err := id.Parse(s); err == nil {
			m.ident = i
		}
	}
}

// Get returns the first value under the text key k.
func (m *Mapping) Get(k string) (core.Data, bool) {
	for _, p := range m.pairs {
		if s, ok := core.AsText(p.Key); ok && s == k {
			return p.Target, true
		}
	}

	return nil, false
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.pairs) }

// Pairs returns a copy of the entries in order.
func (m *Mapping) Pairs() core.Pairs { return append(core.Pairs(nil), m.pairs...) }

func (m *Mapping) TypeName() string { return m.name }

func (m *Mapping) ID() (id.ID, bool) { return m.ident, !m.ident.IsZero() }

func (m *Mapping) ProvideValue(*core.Request) {}

func (m *Mapping) ProvideLinks(links core.Links) error {
	_, err := core.Extend(links, m.pairs)
	return err
}

// QueryLinks answers q, scanning only matching keys for an exact key query.
func (m *Mapping) QueryLinks(sink core.Links, q *query.Query) error {
	sel := q.Sink(sink)
	k, exact := q.Link.ExactKey()
	if !exact {
		return m.ProvideLinks(sel)
	}
	for _, p := range m.pairs {
		if s, ok := core.AsText(p.Key); !ok || s != k {
			continue
		}
		ctl, err := sel.Push(p.Target, p.Key)
		if err != nil || ctl == core.Break {
			return err
		}
	}

	return nil
}

// Sequence is an ordered list of unkeyed links.
type Sequence struct {
	items []core.Data
}

// Append adds items at the end.
func (s *Sequence) Append(items ...core.Data) { s.items = append(s.items, items...) }

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.items) }

// Items returns a copy of the items.
func (s *Sequence) Items() []core.Data { return append([]core.Data(nil), s.items...) }

func (s *Sequence) TypeName() string { return "sequence" }

func (s *Sequence) ProvideValue(*core.Request) {}

func (s *Sequence) ProvideLinks(links core.Links) error {
	for _, it := range s.items {
		ctl, err := links.Push(it, nil)
		if err != nil || ctl == core.Break {
			return err
		}
	}

	return nil
}
