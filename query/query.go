// SPDX-License-Identifier: MIT

package query

import (
	"fmt"

	"github.com/SebastianSpeitel/datalink/core"
)

// Query selects links: a link is selected when it satisfies Link and its
// target satisfies Data. At most Limit links are selected; 0 means no limit.
type Query struct {
	Data  DataFilter
	Link  LinkFilter
	Limit int
}

// Linker is implemented by values that answer a Query themselves instead of
// offering every link and letting the caller filter. QueryLinks pushes only
// the selected links into sink. Returning core.ErrUnsupportedQuery signals a
// query shape the value cannot honor; Run reports it to the caller.
type Linker interface {
	QueryLinks(sink core.Links, q *Query) error
}

// Builder assembles a Query. The zero Builder selects every link.
type Builder struct {
	data  []DataFilter
	link  []LinkFilter
	limit int
}

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// Where adds a condition on link targets. Conditions are conjunctive.
func (b *Builder) Where(f DataFilter) *Builder {
	b.data = append(b.data, f)
	return b
}

// Filter adds a condition on links. Conditions are conjunctive.
func (b *Builder) Filter(lf LinkFilter) *Builder {
	b.link = append(b.link, lf)
	return b
}

// Limit caps the number of selected links; 0 removes the cap.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Build returns the optimized Query.
func (b *Builder) Build() (*Query, error) {
	if b.limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, b.limit)
	}

	return &Query{
		Data:  AllOf(b.data...).Optimize(),
		Link:  AllLinks(b.link...).Optimize(),
		Limit: b.limit,
	}, nil
}

// Optimize returns q with both filter trees optimized.
func (q *Query) Optimize() *Query {
	return &Query{Data: q.Data.Optimize(), Link: q.Link.Optimize(), Limit: q.Limit}
}

// Matches reports whether the link (key, target) is selected by q, ignoring
// the limit.
func (q *Query) Matches(target, key core.Data) (bool, error) {
	ok, err := q.Link.Matches(target, key)
	if err != nil || !ok {
		return false, err
	}

	return q.Data.Matches(target)
}

// Sink wraps inner so that it receives only the links q selects, and breaks
// once Limit links have been forwarded.
func (q *Query) Sink(inner core.Links) core.Links {
	if q.Limit > 0 {
		inner = core.Limit(inner, q.Limit)
	}

	return &selector{q: q, inner: inner}
}

// Run pushes the links of d selected by q into sink. Values implementing
// Linker answer the query themselves.
func (q *Query) Run(d core.Data, sink core.Links) error {
	if l, ok := d.(Linker); ok {
		return l.QueryLinks(sink, q)
	}

	return d.ProvideLinks(q.Sink(sink))
}

// Collect returns the links of d selected by q, in push order.
func (q *Query) Collect(d core.Data) (core.Pairs, error) {
	var p core.Pairs
	if err := q.Run(d, &p); err != nil {
		return nil, err
	}

	return p, nil
}

// First returns the first link of d selected by q.
func (q *Query) First(d core.Data) (core.Link, bool, error) {
	var f core.First
	if err := q.Run(d, &f); err != nil {
		return core.Link{}, false, err
	}

	return f.Link, f.Found, nil
}

// String renders q for diagnostics.
func (q *Query) String() string {
	return fmt.Sprintf("query{data: %s, link: %s, limit: %d}", q.Data, q.Link, q.Limit)
}

type selector struct {
	q     *Query
	inner core.Links
}

func (s *selector) Push(target, key core.Data) (core.Control, error) {
	if target == nil {
		return core.Break, core.ErrMissingTarget
	}
	ok, err := s.q.Matches(target, key)
	if err != nil {
		return core.Break, err
	}
	if !ok {
		return core.Continue, nil
	}

	return s.inner.Push(target, key)
}
