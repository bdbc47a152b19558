package cli

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete URL",
		Short: "Make a DELETE request to the specified URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, "DELETE", args[0], nil)
		},
	}
	addCommonFlags(cmd)
	return cmd
}
