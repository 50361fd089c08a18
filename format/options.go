// SPDX-License-Identifier: MIT

package format

import (
	"errors"
	"fmt"
)

var (
	// ErrNilData is returned when the value to render is nil.
	ErrNilData = errors.New("format: nil data")

	// ErrOptionViolation indicates that a WithX option received a value that
	// has no meaning, e.g. a negative depth.
	ErrOptionViolation = errors.New("format: invalid option value")
)

// Strategy selects how links are consumed while rendering.
type Strategy uint8

const (
	// Eager buffers every link of a value before writing it.
	Eager Strategy = iota
	// Streaming writes each link as soon as it is pushed.
	Streaming
)

// String returns "eager" or "streaming".
func (s Strategy) String() string {
	switch s {
	case Eager:
		return "eager"
	case Streaming:
		return "streaming"
	}

	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy maps "eager" and "streaming" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "eager", "":
		return Eager, nil
	case "streaming":
		return Streaming, nil
	}

	return Eager, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
}

// DefaultMaxDepth bounds recursion when no WithMaxDepth option is given.
const DefaultMaxDepth = 4

// Option configures a Formatter.
type Option func(*Options)

// Options holds the format policy.
type Options struct {
	// Verbose renders one entry per line instead of a single line.
	Verbose bool

	// MaxDepth is the number of link levels followed below the root.
	// At 0 the root's links render as "...".
	MaxDepth int

	// CollapseLinkless renders values without links as their scalars only.
	CollapseLinkless bool

	// Strategy selects eager or streaming link consumption.
	Strategy Strategy

	// SortedKeys orders links by rendered key text. Eager only.
	SortedKeys bool

	// Indent is the per-level indentation of verbose output.
	Indent string

	violation error
}

// DefaultOptions returns compact, eager rendering to DefaultMaxDepth with
// two-space indentation.
func DefaultOptions() Options {
	return Options{
		Verbose:          false,
		MaxDepth:         DefaultMaxDepth,
		CollapseLinkless: false,
		Strategy:         Eager,
		SortedKeys:       false,
		Indent:           "  ",
	}
}

// WithVerbose toggles multi-line output.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// WithMaxDepth bounds recursion to n link levels. Negative n is an
// ErrOptionViolation.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violate(fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, n))
			return
		}
		o.MaxDepth = n
	}
}

// WithCollapseLinkless toggles inline rendering of values without links.
func WithCollapseLinkless(v bool) Option {
	return func(o *Options) {
		o.CollapseLinkless = v
	}
}

// WithStrategy selects eager or streaming link consumption.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Eager && s != Streaming {
			o.violate(fmt.Errorf("%w: %s", ErrOptionViolation, s))
			return
		}
		o.Strategy = s
	}
}

// WithSortedKeys orders each value's links by key text, unkeyed links first.
// It requires the Eager strategy.
func WithSortedKeys() Option {
	return func(o *Options) {
		o.SortedKeys = true
	}
}

// WithIndent sets the per-level indentation of verbose output.
func WithIndent(s string) Option {
	return func(o *Options) {
		o.Indent = s
	}
}

// violate keeps the first violation.
func (o *Options) violate(err error) {
	if o.violation == nil {
		o.violation = err
	}
}

// validate reports the first recorded violation or an inconsistent policy.
func (o *Options) validate() error {
	if o.violation != nil {
		return o.violation
	}
	if o.SortedKeys && o.Strategy != Eager {
		return fmt.Errorf("%w: sorted keys need the eager strategy", ErrOptionViolation)
	}

	return nil
}
