// SPDX-License-Identifier: MIT
// Package converters turns YAML documents and plain Go values into
// introspectable values.
//
// YAML (gopkg.in/yaml.v3):
//   - mappings become *Mapping: keyed links in document order
//   - sequences become *Sequence: unkeyed links in order
//   - scalars become core scalars typed by their resolved tag:
//     !!bool, !!int (int64, then uint64), !!float, !!binary, !!null (core.Empty);
//     every other tag keeps its text as a string
//   - aliases resolve to the anchored value, converted once and shared
//   - a mapping whose "id" key holds a UUID string reports that identity
//
// Go values:
//   - FromValue maps primitives to scalars, slices and arrays to *Sequence,
//     string-keyed maps to *Mapping with sorted keys, and structs through
//     mapstructure to *Mapping named after the struct type. Anything else
//     becomes an Other scalar.
//
// Errors:
//   - ErrEmptyDocument  the input holds no YAML document
//   - ErrScalar         a scalar does not fit its tag
//   - ErrAlias          an alias refers to the value that contains it
//   - ErrUnsupported    FromValue met a map with non-string keys
package converters
