package main

import (
	"github.com/basedbeardjones-alt/SwagFliperino/cmd"
)

// main is the entry point for the SwagFliperino CLI.
func main() {
	// Execute the root command defined in the cmd package.
	// This handles all command-line parsing, configuration, and execution.
	cmd.Execute()
}
