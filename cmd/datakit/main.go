// Package main provides the datakit command: random test data, case
// conversion, query strings, object reshaping, record trees and date
// formatting from the shell.
//
// Input documents are JSON or YAML, read from a file argument or from stdin
// when the argument is "-" or omitted. Structured output is JSON unless
// --output yaml or the config file says otherwise.
package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
