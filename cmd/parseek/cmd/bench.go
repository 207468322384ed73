package cmd

import (
	"context"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/parseek/parseek/internal/output"
	"github.com/parseek/parseek/internal/search"
)

// benchOptions holds CLI flags for bench.
type benchOptions struct {
	dir     string
	workers int
	exts    []string
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench <keyword> [keyword...]",
		Short: "Run the same search under both concurrency modes and compare",
		Long: `Run one search twice over the same file list - once with goroutine
workers and once with isolated worker processes - report both durations,
and verify that the two canonical results are identical.

Examples:
  parseek bench lorem ipsum --dir testdata/corpus
  parseek bench alpha --workers 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory to search")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Number of workers (default from config)")
	cmd.Flags().StringSliceVar(&opts.exts, "ext", nil, "File extensions to include (repeatable)")

	return cmd
}

func runBench(ctx context.Context, cmd *cobra.Command, keywords []string, opts benchOptions) error {
	cfg, keywords, err := resolveSearchConfig(keywords, searchOptions{
		dir:     opts.dir,
		workers: opts.workers,
		exts:    opts.exts,
	})
	if err != nil {
		return err
	}

	files, err := listFiles(opts.dir, cfg)
	if err != nil {
		return err
	}

	out := output.New(cmd.OutOrStdout())

	var reports [2]*search.Report
	for i, mode := range []string{search.BackendThreads, search.BackendProcesses} {
		cfg.Search.Mode = mode
		report, err := executeSearch(ctx, cfg, files, keywords)
		if err != nil {
			return fmt.Errorf("%s run failed: %w", mode, err)
		}
		reports[i] = report
		out.Report(report, keywords, false)
		out.Newline()
	}

	if !reflect.DeepEqual(reports[0].Results, reports[1].Results) {
		out.Error("results differ between modes")
		return fmt.Errorf("threads and processes modes produced different results")
	}

	out.Success("both modes produced the same result")
	return nil
}
