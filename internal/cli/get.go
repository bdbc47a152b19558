package cli

import (
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Make a GET request to the specified URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, "GET", args[0], nil)
		},
	}
	addCommonFlags(cmd)
	return cmd
}
