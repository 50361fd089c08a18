// SPDX-License-Identifier: MIT
// Package format renders introspectable values as nested text.
//
// What:
//
//   - Fprint / Sprint: render a core.Data with a one-shot Formatter.
//   - Formatter: a validated option set reusable across calls.
//   - Stringer: a lazy fmt.Stringer for use in log lines.
//
// Algorithm:
//
//	Each value renders a type header (Named.TypeName, else the Go type), then
//	its scalars collected through the Value Channel, then its links. A link
//	whose parent has no depth left renders as "..."; otherwise its key and
//	target are rendered recursively with one level less, as "key -> target".
//	Depth is the only bound, so cyclic graphs terminate.
//
//	Compact:   T { values: [1u8, "a"], links: [k -> U {}, ...] }
//	Verbose:   one value list and one link per line, indented by Options.Indent.
//	Collapse:  a value without links renders as {v1, v2}; a single scalar as
//	           {42u32}; several scalars that are all numerically equal as the
//	           bare shared number {42}.
//
// Strategies:
//
//	Eager collects all links into core.Pairs before writing, which allows
//	WithSortedKeys. Streaming writes each link as it is pushed and buffers
//	only the scalar list. Both produce identical output for the same input.
//
// Errors:
//
//	ErrNilData          - the root value is nil.
//	ErrOptionViolation  - an option received a meaningless value.
//
// Errors returned by ProvideLinks and by the writer abort rendering and are
// returned wrapped.
package format
