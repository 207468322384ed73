package search

import "sort"

// Merge combines all partial results into the canonical keyword → files
// mapping. Every requested keyword appears in the output, mapped to an
// empty (non-nil) list when nothing matched. Per-keyword file lists are
// deduplicated and sorted lexicographically, so the merge order of
// partials cannot affect the result.
//
// Chunks are disjoint, so duplicates across partials should not occur;
// dedup also covers a file repeated in the input list itself.
func Merge(partials []PartialResult, keywords []string) map[string][]string {
	final := make(map[string][]string, len(keywords))
	for _, kw := range keywords {
		final[kw] = []string{}
	}

	for _, p := range partials {
		for kw, files := range p.Matches {
			if _, ok := final[kw]; !ok {
				// Keys outside the declared keyword set are ignored.
				continue
			}
			final[kw] = append(final[kw], files...)
		}
	}

	for kw, files := range final {
		final[kw] = sortedUnique(files)
	}
	return final
}

// sortedUnique returns the sorted, deduplicated copy of files.
// Always returns a non-nil slice.
func sortedUnique(files []string) []string {
	out := make([]string, 0, len(files))
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
