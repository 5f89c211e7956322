// Package main provides the CLI entrypoint for debug-generator.
//
// debug-generator is a go:generate tool that:
//   - Parses a Go package (AST) to find the requested struct types
//   - Reads per-field `debug:"<format>"` struct tags
//   - Generates a GoString method per type rendering its name and fields
//
// Typical use:
//
//	//go:generate go run debug-generator/cmd/debug-generator -t Order,Customer
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"debug-generator/cmd/debug-generator/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
