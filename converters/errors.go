// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrEmptyDocument is returned when the input holds no YAML document.
	ErrEmptyDocument = errors.New("converters: empty document")

	// ErrScalar indicates a scalar whose text does not fit its tag.
	ErrScalar = errors.New("converters: invalid scalar")

	// ErrAlias indicates an alias to the value that contains it.
	ErrAlias = errors.New("converters: recursive alias")

	// ErrUnsupported indicates a Go value FromValue cannot map.
	ErrUnsupported = errors.New("converters: unsupported value")
)
