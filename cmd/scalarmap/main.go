// Package main provides the CLI entrypoint for scalarmap.
//
// scalarmap inspects YAML documents of tagged scalar values:
//   - datatype: prints the datatype tag of every value
//   - convert: prints the host value every scalar converts to
//   - check: reports values that lose information on conversion
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
