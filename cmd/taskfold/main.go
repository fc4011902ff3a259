// Package main is the entry point for the taskfold CLI/TUI.
package main

import (
	"os"

	"github.com/taskfold/taskfold/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
