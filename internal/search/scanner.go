package search

import (
	"os"
	"strings"
)

// FileScanner tests one file's content for keyword presence.
// It has no shared state; every worker creates its own.
type FileScanner struct{}

// NewFileScanner creates a new FileScanner.
func NewFileScanner() *FileScanner {
	return &FileScanner{}
}

// Scan reads the full content of path and reports which keywords it
// contains. Matching is case-insensitive substring containment: the content
// is lowercased once, each keyword is lowercased for the comparison, and
// the original-case keyword is used as the result key.
//
// A file that cannot be read returns the error to the caller; the caller
// skips the file and continues. Read failures never abort a chunk.
func (s *FileScanner) Scan(path string, keywords []string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := strings.ToLower(string(data))

	present := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		present[kw] = strings.Contains(content, strings.ToLower(kw))
	}
	return present, nil
}
