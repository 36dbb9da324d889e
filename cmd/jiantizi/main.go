// Package main is the entry point for the jiantizi CLI.
package main

import (
	"os"

	"github.com/f3rmion/jiantizi/cmd/jiantizi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
