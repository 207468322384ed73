package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/parseek/parseek/internal/search"
)

// newWorkerCmd creates the hidden subcommand the processes backend uses to
// turn this binary into a one-shot worker child. It reads one job from
// stdin and writes one partial result to stdout; stdout carries nothing
// else, so all logging stays on stderr.
func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:    search.WorkerCommandName,
		Short:  "Run one search worker over stdin/stdout (internal)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return search.ServeWorker(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
