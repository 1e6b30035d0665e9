package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/sitehealth/internal/health"
	"github.com/hamed0406/sitehealth/internal/logging"
	"github.com/hamed0406/sitehealth/internal/output"
)

// errUnhealthy signals a clean run whose results include failing
// targets; main maps it to exit code 1 after deferred cleanup has run.
var errUnhealthy = errors.New("one or more targets are unhealthy")

var (
	timeoutSeconds  float64
	followRedirects bool
	concurrency     int
	jsonOut         bool
	quiet           bool
)

var rootCmd = &cobra.Command{
	Use:   "sitehealth URL [URL...]",
	Short: "Check website health: HTTP status, response time, TLS certificates",
	Long: `sitehealth probes each URL with an HTTP GET, measures response time,
inspects the TLS certificate of https targets, and prints per-target
results plus aggregate statistics. Failed targets are reported inline;
they never abort the rest of the batch.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Float64Var(&timeoutSeconds, "timeout", 10, "per-check HTTP timeout in seconds")
	rootCmd.Flags().BoolVar(&followRedirects, "follow-redirects", true, "follow HTTP redirect chains")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 1, "parallel checks (1 = sequential)")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON instead of a table")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress progress logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsole(quiet || jsonOut)
	defer logger.Sync()

	opts := health.Options{
		Timeout:         time.Duration(timeoutSeconds * float64(time.Second)),
		FollowRedirects: followRedirects,
		Concurrency:     concurrency,
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	logger.Info("checking",
		zap.Int("targets", len(args)),
		zap.Duration("timeout", opts.Timeout),
		zap.Bool("follow_redirects", opts.FollowRedirects),
	)

	chk := health.NewHTTPChecker()
	defer chk.Close()

	results := health.CheckAll(cmd.Context(), chk, args, opts)
	summary := health.Summarize(results)

	if jsonOut {
		doc, err := output.RenderJSON(results, summary)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), output.RenderTable(results, summary))
	}

	if summary.UnhealthySites > 0 {
		return errUnhealthy
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUnhealthy) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
