package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newPostCmd() *cobra.Command {
	return newBodyCmd("post", "POST")
}

func newPutCmd() *cobra.Command {
	return newBodyCmd("put", "PUT")
}

func newPatchCmd() *cobra.Command {
	return newBodyCmd("patch", "PATCH")
}

// newBodyCmd builds a command for a body-bearing verb
func newBodyCmd(verb, method string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb + " URL",
		Short: "Make a " + method + " request to the specified URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := bodyFromFlags(cmd)
			if err != nil {
				return err
			}
			return runRequest(cmd, method, args[0], data)
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().StringP("data", "d", "", "Request body to send")
	cmd.Flags().Bool("json", false, "Treat the body as JSON and send a content-type: application/json header")
	return cmd
}

// bodyFromFlags derives the request payload from --data and --json. With
// --json the body must parse, and it is handed to the library as a value so
// the content-type header is injected.
func bodyFromFlags(cmd *cobra.Command) (interface{}, error) {
	data, _ := cmd.Flags().GetString("data")
	asJSON, _ := cmd.Flags().GetBool("json")

	if data == "" {
		return nil, nil
	}
	if !asJSON {
		return data, nil
	}

	var value interface{}
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return nil, fmt.Errorf("--json body is not valid JSON: %w", err)
	}
	return value, nil
}
