package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parseek/parseek/internal/config"
	"github.com/parseek/parseek/internal/corpus"
	"github.com/parseek/parseek/internal/output"
)

// genOptions holds CLI flags for gen.
type genOptions struct {
	dir   string
	files int
	seed  int64
}

func newGenCmd() *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen [keyword...]",
		Short: "Generate a synthetic text corpus for demos and benchmarks",
		Long: `Generate a directory of filler text files, sprinkling the given
keywords into a random subset. Generation is reproducible for a fixed
seed, so searches over the corpus have stable expected results.

Examples:
  parseek gen lorem threading --dir testdata/corpus --files 100
  parseek gen alpha beta --seed 7`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Output directory (default from config)")
	cmd.Flags().IntVarP(&opts.files, "files", "n", 0, "Number of files to generate (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", -1, "Random seed (default from config)")

	return cmd
}

func runGen(cmd *cobra.Command, keywords []string, opts genOptions) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	genOpts := corpus.Options{
		Dir:      cfg.Corpus.Dir,
		Files:    cfg.Corpus.Files,
		Seed:     cfg.Corpus.Seed,
		Keywords: keywords,
	}
	if opts.dir != "" {
		genOpts.Dir = opts.dir
	}
	if opts.files > 0 {
		genOpts.Files = opts.files
	}
	if opts.seed >= 0 {
		genOpts.Seed = opts.seed
	}
	if len(genOpts.Keywords) == 0 {
		genOpts.Keywords = cfg.Search.Keywords
	}

	paths, err := corpus.Generate(genOpts)
	if err != nil {
		return err
	}

	out := output.New(cmd.OutOrStdout())
	out.Successf("generated %d files in %s", len(paths), genOpts.Dir)
	return nil
}
