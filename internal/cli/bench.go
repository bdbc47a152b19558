package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/riposte-dev/riposte/internal/bench"
	"github.com/riposte-dev/riposte/request"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench URL",
		Short: "Benchmark an endpoint with repeated GET requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, _ := cmd.Flags().GetInt("requests")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			rawHeaders, _ := cmd.Flags().GetStringArray("header")
			headers, err := parseHeaders(rawHeaders)
			if err != nil {
				return err
			}
			timeout, _ := cmd.Flags().GetDuration("timeout")

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			summary, err := bench.Run(ctx, request.New(), bench.Config{
				URL:         args[0],
				Requests:    requests,
				Concurrency: concurrency,
				Options: &request.Options{
					Headers: headers,
					Timeout: timeout,
				},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %d requests, %d errors in %v (%.1f req/s)\n",
				summary.RunID, summary.Total, summary.Errors, summary.Elapsed.Round(time.Millisecond), summary.RPS)
			fmt.Fprintf(out, "  min %v  p50 %v  p90 %v  p99 %v  max %v\n",
				summary.Min, summary.P50, summary.P90, summary.P99, summary.Max)
			if summary.LastErr != nil {
				fmt.Fprintf(out, "  last error: %v\n", summary.LastErr)
			}
			return nil
		},
	}

	cmd.Flags().IntP("requests", "n", 10, "Number of requests to send")
	cmd.Flags().IntP("concurrency", "c", 1, "Number of concurrent workers")
	cmd.Flags().StringArrayP("header", "H", nil, "HTTP header to include, as 'Key: Value' (repeatable)")
	cmd.Flags().DurationP("timeout", "t", 0, "Per-request timeout (0 uses the default)")
	return cmd
}
