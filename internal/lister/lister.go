// Package lister discovers searchable text files under a root directory.
// It is the input-boundary collaborator of the search engine: the engine
// itself only ever sees the ordered file list produced here.
package lister

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// IgnoreFileName is the per-directory ignore file honored during listing.
const IgnoreFileName = ".parseekignore"

// ignoreCacheSize bounds the per-directory ignore matcher cache so
// long-running processes don't grow without limit.
const ignoreCacheSize = 256

// sniffLen is how many leading bytes are checked for a NUL to detect
// binary files.
const sniffLen = 512

// defaultSkipDirs are directory names never descended into.
var defaultSkipDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"vendor":       {},
}

// Options control file discovery.
type Options struct {
	// RootDir is the directory to walk. Must exist and be a directory.
	RootDir string

	// Extensions restricts results to these file extensions (with dot).
	// Empty means all non-binary files.
	Extensions []string

	// MaxFileSize excludes files larger than this many bytes.
	// Zero or negative means no limit.
	MaxFileSize int64
}

// Lister walks a directory tree and returns the ordered list of file paths
// the search engine should scan.
type Lister struct {
	// ignoreCache caches parsed per-directory ignore matchers,
	// LRU-evicted to keep memory bounded.
	ignoreCache *lru.Cache[string, *ignoreMatcher]
}

// New creates a new Lister.
func New() (*Lister, error) {
	cache, err := lru.New[string, *ignoreMatcher](ignoreCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create ignore cache: %w", err)
	}
	return &Lister{ignoreCache: cache}, nil
}

// List walks opts.RootDir and returns the sorted list of matching files.
// Sorting makes the engine input order, and therefore chunk assignment,
// reproducible across runs.
func (l *Lister) List(opts Options) ([]string, error) {
	root, err := filepath.Abs(opts.RootDir)
	if err != nil {
		return nil, pserrors.New(pserrors.ErrCodeInvalidPath,
			fmt.Sprintf("cannot resolve root %q: %v", opts.RootDir, err), err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, pserrors.New(pserrors.ErrCodeInvalidPath,
			fmt.Sprintf("cannot stat root %q: %v", root, err), err)
	}
	if !info.IsDir() {
		return nil, pserrors.New(pserrors.ErrCodeInvalidPath,
			fmt.Sprintf("root path is not a directory: %s", root), nil)
	}

	extAllowed := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extAllowed[ext] = struct{}{}
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: log and move on.
			slog.Warn("skipping unreadable path",
				slog.String("path", path),
				slog.String("error", err.Error()))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := defaultSkipDirs[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		if name == IgnoreFileName {
			return nil
		}

		if len(extAllowed) > 0 {
			if _, ok := extAllowed[filepath.Ext(name)]; !ok {
				return nil
			}
		}

		if l.matcherFor(filepath.Dir(path)).Match(name) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			slog.Warn("skipping unstatable file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			return nil
		}
		if opts.MaxFileSize > 0 && fi.Size() > opts.MaxFileSize {
			slog.Debug("skipping oversize file",
				slog.String("path", path),
				slog.Int64("size", fi.Size()))
			return nil
		}

		if isBinary(path) {
			slog.Debug("skipping binary file", slog.String("path", path))
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, pserrors.IOError(
			fmt.Sprintf("walk %s: %v", root, walkErr), walkErr)
	}

	sort.Strings(files)
	return files, nil
}

// matcherFor returns the ignore matcher for dir, parsing and caching the
// directory's ignore file on first use. A missing ignore file caches an
// empty matcher so the stat is not repeated.
func (l *Lister) matcherFor(dir string) *ignoreMatcher {
	if m, ok := l.ignoreCache.Get(dir); ok {
		return m
	}

	m, err := parseIgnoreFile(filepath.Join(dir, IgnoreFileName))
	if err != nil {
		slog.Warn("cannot parse ignore file",
			slog.String("dir", dir),
			slog.String("error", err.Error()))
		m = &ignoreMatcher{}
	}

	l.ignoreCache.Add(dir, m)
	return m
}

// isBinary sniffs the first bytes of path for a NUL byte.
// Unreadable files are not excluded here; the scanner accounts for them
// as per-file skips.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}
