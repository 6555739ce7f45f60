// Package main provides the entry point for the exiled CLI.
package main

import (
	"fmt"
	"os"

	"github.com/exiled-team/exiled/cmd/exiled/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
