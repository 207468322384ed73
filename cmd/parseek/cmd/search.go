package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parseek/parseek/internal/config"
	"github.com/parseek/parseek/internal/lister"
	"github.com/parseek/parseek/internal/output"
	"github.com/parseek/parseek/internal/search"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	dir       string
	workers   int
	mode      string
	format    string // "text", "json"
	exts      []string
	showFiles bool
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <keyword> [keyword...]",
		Short: "Search files under a directory for keywords in parallel",
		Long: `Search every text file under a directory for the given keywords.

Matching is case-insensitive substring containment. The file list is split
round-robin across the worker pool; each worker scans its chunk
independently and the partial results are merged into one sorted,
deduplicated report.

Examples:
  parseek search alpha beta --dir ./docs
  parseek search lorem --workers 8 --mode processes
  parseek search error --dir ./logs --ext .log --format json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory to search")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Number of workers (default from config)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Concurrency mode: threads or processes (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().StringSliceVar(&opts.exts, "ext", nil, "File extensions to include (repeatable)")
	cmd.Flags().BoolVarP(&opts.showFiles, "list", "l", false, "List matching files under each keyword")

	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, args []string, opts searchOptions) error {
	cfg, keywords, err := resolveSearchConfig(args, opts)
	if err != nil {
		return err
	}

	files, err := listFiles(opts.dir, cfg)
	if err != nil {
		return err
	}

	report, err := executeSearch(ctx, cfg, files, keywords)
	if err != nil {
		return err
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	out := output.New(cmd.OutOrStdout())
	out.Report(report, keywords, opts.showFiles)
	return nil
}

// resolveSearchConfig merges the project config with CLI overrides and
// resolves the effective keyword set.
func resolveSearchConfig(args []string, opts searchOptions) (*config.Config, []string, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, nil, err
	}

	if opts.workers > 0 {
		cfg.Search.Workers = opts.workers
	}
	if opts.mode != "" {
		cfg.Search.Mode = opts.mode
	}
	if len(opts.exts) > 0 {
		cfg.Search.Extensions = opts.exts
	}

	// CLI overrides may have introduced invalid values.
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	keywords := args
	if len(keywords) == 0 {
		keywords = cfg.Search.Keywords
	}
	if len(keywords) == 0 {
		return nil, nil, fmt.Errorf("no keywords given: pass them as arguments or set search.keywords in %s", config.ConfigFileName)
	}

	return cfg, keywords, nil
}

// listFiles runs the lister over dir with the configured filters.
func listFiles(dir string, cfg *config.Config) ([]string, error) {
	l, err := lister.New()
	if err != nil {
		return nil, err
	}
	return l.List(lister.Options{
		RootDir:     dir,
		Extensions:  cfg.Search.Extensions,
		MaxFileSize: cfg.Search.MaxFileSize,
	})
}

// executeSearch builds the configured backend and runs one search.
func executeSearch(ctx context.Context, cfg *config.Config, files, keywords []string) (*search.Report, error) {
	backend, err := search.NewBackend(cfg.Search.Mode)
	if err != nil {
		return nil, err
	}
	engine, err := search.NewEngine(backend)
	if err != nil {
		return nil, err
	}
	return engine.Execute(ctx, files, keywords, search.Options{Workers: cfg.Search.Workers})
}
