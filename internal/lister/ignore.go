package lister

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ignoreMatcher matches file base names against the glob patterns of one
// directory's ignore file. Patterns apply only to entries of that
// directory, not recursively.
type ignoreMatcher struct {
	patterns []string
}

// parseIgnoreFile reads an ignore file. Blank lines and '#' comments are
// skipped. A missing file yields an empty matcher, not an error.
func parseIgnoreFile(path string) (*ignoreMatcher, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &ignoreMatcher{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &ignoreMatcher{patterns: patterns}, nil
}

// Match reports whether name is excluded by any pattern.
func (m *ignoreMatcher) Match(name string) bool {
	for _, p := range m.patterns {
		if ok, err := filepath.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
