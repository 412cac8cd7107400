package cli

import (
	"github.com/spf13/cobra"

	"github.com/local/slidetrim/internal/config"
)

var appConfig config.Config

var (
	flagOut       string
	flagThreshold float64
	flagDryRun    bool
	flagVerbose   bool
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "slidetrim <input.pdf>",
	Short: "Remove redundant incremental slides from a PDF deck",
	Long: `slidetrim detects runs of near-duplicate pages produced by progressive
content reveal (bullets or code added one step at a time), keeps only the
most complete page of each run, and writes a shorter PDF that preserves
reading order.

The input may be a filesystem path or a file://, http(s):// or s3:// ref.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output PDF path (default: <input>_cleaned.pdf)")
	rootCmd.Flags().Float64VarP(&flagThreshold, "threshold", "t", 0.9, "text overlap threshold in (0,1]")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report decisions without writing a PDF")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print per-page decisions")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

// Execute runs the root command with the given configuration and returns
// the resulting error, if any. Environment defaults apply where flags were
// not set explicitly. The caller owns process exit so log flushing can
// happen first.
func Execute(cfg config.Config) error {
	appConfig = cfg
	return rootCmd.Execute()
}
