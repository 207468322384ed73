// Package cmd provides the CLI commands for parseek.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/parseek/parseek/internal/logging"
	"github.com/parseek/parseek/pkg/version"
)

// Debug logging flag state, shared across commands.
var (
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the parseek CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parseek",
		Short: "Parallel keyword search across text files",
		Long: `parseek searches a directory of text files for keywords, fanning the
file list out across a fixed pool of workers and merging the partial
results into one deterministic report.

Workers run either as goroutines sharing one address space (--mode threads)
or as isolated child processes (--mode processes); both modes produce
identical results for identical inputs.`,
		Version: version.Version,
	}

	cmd.SetVersionTemplate("parseek version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.parseek/logs/")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newGenCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newWorkerCmd())

	return cmd
}

// startLogging enables debug file logging when --debug is set.
func startLogging(_ *cobra.Command, _ []string) error {
	if !debugMode {
		return nil
	}

	logger, cleanup, err := logging.Setup(logging.DebugConfig())
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Info("debug logging enabled",
		slog.String("log_file", logging.DefaultLogPath()))
	return nil
}

// stopLogging closes the debug log file if it was opened.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
