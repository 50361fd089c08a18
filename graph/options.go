// SPDX-License-Identifier: MIT
// Package: datalink/graph
//
// options.go - functional options for Build.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Meaningless inputs (nil IDFn) are recorded, not panicked on; Build
//     reports them as ErrOptionViolation before any constructor runs.
//   - Later options override earlier ones.

package graph

import (
	"fmt"
	"strconv"

	"github.com/SebastianSpeitel/datalink/id"
)

// IDFn names the node with zero-based index idx. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn returns "A".."Z" for idx in [0,25] and falls back to
// DefaultIDFn outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		return DefaultIDFn(idx)
	}

	return string('A' + rune(idx))
}

// Option customizes Build.
type Option func(*config)

// config aggregates every knob of the constructors.
type config struct {
	idFn          IDFn
	namespace     id.ID
	anonymous     bool
	keyed         bool
	bidirectional bool
	violation     error
}

// newConfig applies opts over the deterministic defaults:
// decimal names, id.Namespace, identities on, unkeyed one-way links.
func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn, namespace: id.Namespace}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the node naming function. nil is an ErrOptionViolation.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn == nil {
			c.violate(fmt.Errorf("%w: WithIDScheme(nil)", ErrOptionViolation))
			return
		}
		c.idFn = fn
	}
}

// WithNamespace sets the namespace of node identities. The zero ID is an
// ErrOptionViolation.
func WithNamespace(ns id.ID) Option {
	return func(c *config) {
		if ns.IsZero() {
			c.violate(fmt.Errorf("%w: WithNamespace(zero)", ErrOptionViolation))
			return
		}
		c.namespace = ns
	}
}

// WithAnonymous builds nodes without identity.
func WithAnonymous() Option {
	return func(c *config) {
		c.anonymous = true
	}
}

// WithKeyedLinks keys every link by the target's name.
func WithKeyedLinks() Option {
	return func(c *config) {
		c.keyed = true
	}
}

// WithBidirectional emits, for every edge u→v, the reverse link v→u as well.
func WithBidirectional() Option {
	return func(c *config) {
		c.bidirectional = true
	}
}

func (c *config) violate(err error) {
	if c.violation == nil {
		c.violation = err
	}
}
