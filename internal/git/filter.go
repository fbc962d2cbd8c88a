package git

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matchesFilters checks if a path matches the include/exclude glob patterns.
// Exclude wins; an empty include list accepts everything.
func matchesFilters(path string, include, exclude []string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for _, pattern := range include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}

// filterByTouchedFiles keeps records where at least one touched file passes
// the filters. Records with no touched files on record (merge commits,
// empty commits) are kept; the filters only exclude what they can see.
func filterByTouchedFiles(records []CommitRecord, touched map[string][]string, include, exclude []string) []CommitRecord {
	kept := make([]CommitRecord, 0, len(records))
	for _, rec := range records {
		paths, ok := touched[rec.Hash]
		if !ok || len(paths) == 0 {
			kept = append(kept, rec)
			continue
		}
		for _, path := range paths {
			if matchesFilters(path, include, exclude) {
				kept = append(kept, rec)
				break
			}
		}
	}
	return kept
}
