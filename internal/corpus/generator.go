// Package corpus generates a reproducible synthetic text corpus for demos
// and benchmarks. The generator is an external data producer: the search
// engine only ever consumes the file list, never the generator itself.
package corpus

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// lockFileName guards a corpus directory against concurrent generators.
const lockFileName = ".gen.lock"

// baseText is the filler paragraph repeated to pad files to a realistic size.
const baseText = `Lorem ipsum dolor sit amet, consectetur adipiscing elit.
Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.
Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris
nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in
reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla
pariatur. Excepteur sint occaecat cupidatat non proident, sunt in
culpa qui officia deserunt mollit anim id est laborum.
`

// Options control corpus generation.
type Options struct {
	// Dir is where the files are written. Created if missing.
	Dir string

	// Files is the number of files to generate.
	Files int

	// Seed makes the generated corpus reproducible.
	Seed int64

	// Keywords are sprinkled into a random subset of the files so
	// searches over the corpus have something to find.
	Keywords []string
}

// Generate writes opts.Files text files under opts.Dir and returns their
// sorted paths. Generation holds a cross-process file lock for the whole
// write so two concurrent generators cannot interleave output.
func Generate(opts Options) ([]string, error) {
	if opts.Dir == "" {
		return nil, pserrors.ValidationError("corpus directory must not be empty", nil)
	}
	if opts.Files < 0 {
		return nil, pserrors.ValidationError(
			fmt.Sprintf("file count must not be negative, got %d", opts.Files), nil)
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, pserrors.IOError(
			fmt.Sprintf("create corpus dir %s: %v", opts.Dir, err), err)
	}

	lock := flock.New(filepath.Join(opts.Dir, lockFileName))
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, pserrors.IOError(
			fmt.Sprintf("acquire corpus lock: %v", err), err)
	}
	if !acquired {
		return nil, pserrors.New(pserrors.ErrCodeCorpusLocked,
			fmt.Sprintf("corpus dir %s is locked by another generator", opts.Dir), nil)
	}
	defer func() { _ = lock.Unlock() }()

	rng := rand.New(rand.NewSource(opts.Seed))

	paths := make([]string, 0, opts.Files)
	for i := 0; i < opts.Files; i++ {
		path := filepath.Join(opts.Dir, fmt.Sprintf("file_%03d.txt", i))

		var sb strings.Builder
		repeat := 10 + rng.Intn(40)
		for j := 0; j < repeat; j++ {
			sb.WriteString(baseText)
		}

		if len(opts.Keywords) > 0 {
			if rng.Float64() > 0.5 {
				fmt.Fprintf(&sb, "\nSpecial word: %s\n", opts.Keywords[rng.Intn(len(opts.Keywords))])
			}
			if rng.Float64() > 0.3 {
				fmt.Fprintf(&sb, "\nAnother word: %s\n", opts.Keywords[rng.Intn(len(opts.Keywords))])
			}
		}

		if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
			return nil, pserrors.IOError(
				fmt.Sprintf("write %s: %v", path, err), err)
		}
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths, nil
}
