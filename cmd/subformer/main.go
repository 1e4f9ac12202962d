// Package main provides the Subformer CLI tool.
//
// Usage:
//
//	subformer [flags] <service> <command> [args]
//
// Services:
//
//	dub      - Video dubbing
//	jobs     - Job management
//	voice    - Voice cloning, synthesis and voice library
//	billing  - Usage and billing
//	user     - User profile and rate limits
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.subformer/config.yaml.
//	Use 'subformer config' commands to manage contexts.
package main

import (
	"os"

	"github.com/subformer/subformer-go/cmd/subformer/commands"
	"github.com/subformer/subformer-go/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
