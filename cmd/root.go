package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"logsieve/pkg/logging"
	"logsieve/pkg/sieve"
	"logsieve/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagThreads   int
	flagLogOutput string
	flagLocale    string
)

// RootCmd is the base command. Logsieve is a single-purpose tool, so the root
// command does the work itself: positional ROOT_DIR plus zero or more literal
// patterns to scrub.
var RootCmd = &cobra.Command{
	Use:   "logsieve ROOT_DIR [PATTERNS...]",
	Short: "Remove matching lines from gzip-compressed log files in place",
	Long: `Logsieve walks ROOT_DIR recursively and rewrites every .gz file with all
lines containing any of the given literal PATTERNS removed. Each file is
replaced atomically; files that cannot be processed are skipped and reported,
never corrupted.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	RootCmd.Flags().IntVar(&flagThreads, "threads", 0, "Number of worker threads (defaults to the number of logical CPUs)")
	RootCmd.Flags().StringVar(&flagLogOutput, "log-output", logging.OutputFile, "Log destination: file or stdout")
	RootCmd.Flags().StringVar(&flagLocale, "locale", "en", "Locale for number formatting in the summary")
}

// run resolves the configuration from flags and arguments, executes the
// filtering run, and prints the locale-formatted summary. The process exits
// zero when the run completes, even if individual files were skipped.
func run(cmd *cobra.Command, args []string) error {
	logFile, err := logging.Setup(flagLogOutput, "logsieve", version.Get().Version)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logger := zap.L()
	defer logging.Sync(logger)

	cfg := sieve.RunConfig{
		RootDir:  args[0],
		Patterns: args[1:],
		Workers:  flagThreads,
		Locale:   flagLocale,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := sieve.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("Run aborted", zap.Error(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary.Format(cfg.Locale, logger))

	if logFile != "" {
		logging.Sync(logger)
		if err := logging.Cleanup(logFile); err != nil {
			logger.Warn("Failed to clean up log file", zap.String("file", logFile), zap.Error(err))
		}
	}
	return nil
}

// Execute runs the root command and reports the error, if any, to stderr.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
