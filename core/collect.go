// SPDX-License-Identifier: MIT

package core

import "github.com/SebastianSpeitel/datalink/id"

// Pairs collects every link in push order. As Data it offers no scalars and
// replays its links.
type Pairs []Link

// Push appends (key, target).
func (p *Pairs) Push(target, key Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	*p = append(*p, Link{Key: key, Target: target})

	return Continue, nil
}

func (p Pairs) ProvideValue(*Request) {}

func (p Pairs) ProvideLinks(links Links) error {
	_, err := Extend(links, p)
	return err
}

// Targets returns the targets in order.
func (p Pairs) Targets() []Data {
	out := make([]Data, len(p))
	for i, l := range p {
		out[i] = l.Target
	}

	return out
}

// KeyedPairs collects keyed links and silently drops unkeyed ones.
type KeyedPairs []Link

// Push appends (key, target) when key is non-nil.
func (p *KeyedPairs) Push(target, key Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	if key != nil {
		*p = append(*p, Link{Key: key, Target: target})
	}

	return Continue, nil
}

// List collects targets and discards keys. As Data it offers its elements
// as unkeyed links.
type List []Data

// Push appends target.
func (l *List) Push(target, _ Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	*l = append(*l, target)

	return Continue, nil
}

func (l List) ProvideValue(*Request) {}

func (l List) ProvideLinks(links Links) error {
	for _, t := range l {
		ctl, err := links.Push(t, nil)
		if err != nil || ctl == Break {
			return err
		}
	}

	return nil
}

// First keeps the first link pushed and breaks.
type First struct {
	Link  Link
	Found bool
}

// Push records the first link; every push returns Break.
func (f *First) Push(target, key Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	if !f.Found {
		f.Link, f.Found = Link{Key: key, Target: target}, true
	}

	return Break, nil
}

// FirstKeyed keeps the first keyed link pushed and breaks.
type FirstKeyed struct {
	Link  Link
	Found bool
}

// Push skips unkeyed links and records the first keyed one.
func (f *FirstKeyed) Push(target, key Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	if f.Found {
		return Break, nil
	}
	if key == nil {
		return Continue, nil
	}
	f.Link, f.Found = Link{Key: key, Target: target}, true

	return Break, nil
}

// Count counts links.
type Count int

// Push increments c.
func (c *Count) Push(target, _ Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	*c++

	return Continue, nil
}

// Limit forwards the first n links to inner and breaks after the n-th.
// n <= 0 breaks immediately without forwarding anything.
func Limit(inner Links, n int) Links {
	return &limited{inner: inner, remaining: n}
}

type limited struct {
	inner     Links
	remaining int
}

func (l *limited) Push(target, key Data) (Control, error) {
	if l.remaining <= 0 {
		return Break, nil
	}
	ctl, err := l.inner.Push(target, key)
	if err != nil {
		return ctl, err
	}
	l.remaining--
	if l.remaining == 0 {
		return Break, nil
	}

	return ctl, nil
}

// IDMap maps key identities to targets. Links whose key has no identity are
// skipped.
type IDMap map[id.ID]Data

// Push stores target under the identity of key.
func (m IDMap) Push(target, key Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	if k, ok := IDOf(key); ok {
		m[k] = target
	}

	return Continue, nil
}

// IDSet records target identities. Targets without identity are skipped.
type IDSet map[id.ID]struct{}

// Push adds the identity of target.
func (s IDSet) Push(target, _ Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	if t, ok := IDOf(target); ok {
		s[t] = struct{}{}
	}

	return Continue, nil
}

// Has reports whether i was collected.
func (s IDSet) Has(i id.ID) bool {
	_, ok := s[i]
	return ok
}

// TextMap is an insertion-ordered map from text keys to targets. Links whose
// key offers no text are skipped; a repeated key keeps its first position and
// takes the latest target. As Data it replays its entries keyed by Str.
type TextMap struct {
	keys []string
	m    map[string]Data
}

// NewTextMap returns an empty TextMap.
func NewTextMap() *TextMap {
	return &TextMap{m: make(map[string]Data)}
}

// Push stores target under the text of key.
func (t *TextMap) Push(target, key Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}
	k, ok := AsText(key)
	if !ok {
		return Continue, nil
	}
	if t.m == nil {
		t.m = make(map[string]Data)
	}
	if _, seen := t.m[k]; !seen {
		t.keys = append(t.keys, k)
	}
	t.m[k] = target

	return Continue, nil
}

// Keys returns the keys in insertion order.
func (t *TextMap) Keys() []string { return append([]string(nil), t.keys...) }

// Get returns the target stored under k.
func (t *TextMap) Get(k string) (Data, bool) {
	d, ok := t.m[k]
	return d, ok
}

// Len returns the number of entries.
func (t *TextMap) Len() int { return len(t.keys) }

func (t *TextMap) ProvideValue(*Request) {}

func (t *TextMap) ProvideLinks(links Links) error {
	for _, k := range t.keys {
		ctl, err := links.Push(t.m[k], Str(k))
		if err != nil || ctl == Break {
			return err
		}
	}

	return nil
}
