package stats

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ignoreMatcher matches relative paths against gitignore-style patterns.
// A pattern without a slash matches any single path segment (so
// "node_modules" ignores a node_modules directory anywhere in the tree);
// a pattern with a slash matches against the whole relative path.
type ignoreMatcher struct {
	patterns []string
}

func newIgnoreMatcher(patterns []string) *ignoreMatcher {
	return &ignoreMatcher{patterns: patterns}
}

// Match reports whether the relative path matches any ignore pattern.
func (m *ignoreMatcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	segments := strings.Split(rel, "/")

	for _, p := range m.patterns {
		if strings.Contains(p, "/") {
			if ok, err := doublestar.Match(p, rel); err == nil && ok {
				return true
			}
			continue
		}
		for _, seg := range segments {
			if ok, err := doublestar.Match(p, seg); err == nil && ok {
				return true
			}
		}
	}
	return false
}
