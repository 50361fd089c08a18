// SPDX-License-Identifier: MIT

package query

import "errors"

// ErrNegativeLimit indicates a Query limit below zero.
var ErrNegativeLimit = errors.New("query: negative limit")
