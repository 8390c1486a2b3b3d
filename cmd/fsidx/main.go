package main

import (
	"fmt"
	"os"

	"fsidx/cmd/fsidx/commands"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fsidx: %v\n", err)
		os.Exit(1)
	}
}
