// Package main provides the entry point for the regtab CLI tool.
package main

import (
	"github.com/regtab/regtab/cmd/regtab/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
