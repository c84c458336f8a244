// Package cmd implements the containment-vessel command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "containment-vessel",
	Short: "Reactor containment building geometry synthesis",
	Long: `containment-vessel constructs a simplified nuclear reactor containment
building as a solid CAD model from a parameter document and exports it as a
boundary-representation interchange file.

The model is derived from the reactor radial build: shielding, a scaled
containment shell, floors, support rings and a roof (flat, domed or cone)
are combined into one solid, and one half is cut away to expose the
cross section.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	syncLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// syncLogger flushes buffered log records before the process exits.
// Safe to call when the logger was never initialized.
func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
