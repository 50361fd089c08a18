// SPDX-License-Identifier: MIT

// Command datalink formats, queries and walks YAML documents through the
// datalink introspection protocol.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "datalink:", err)
		os.Exit(1)
	}
}
