// Package cli wires the riposte commands.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewRootCmd builds the base command with all subcommands attached
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "riposte",
		Short:   "A terminal HTTP client with proxy, redirect, and timeout control",
		Version: version,
		Long: `Riposte is a terminal HTTP client built on the riposte request library.
It issues single requests with per-call proxy, timeout, and redirect control,
decodes responses as text, JSON, or raw bytes, and can validate and benchmark
endpoints.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newGetCmd(),
		newPostCmd(),
		newPutCmd(),
		newPatchCmd(),
		newDeleteCmd(),
		newBenchCmd(),
	)

	return root
}

// Execute runs the CLI and returns the terminal error, if any
func Execute() error {
	return NewRootCmd().Execute()
}
