package stats

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner walks a repository tree and produces a ProjectStats snapshot.
type Scanner struct {
	log    *slog.Logger
	ignore *ignoreMatcher
}

// NewScanner creates a scanner. ignorePatterns are gitignore-style globs;
// matched subtrees are pruned before descent and never visited.
func NewScanner(log *slog.Logger, ignorePatterns []string) *Scanner {
	return &Scanner{
		log:    log,
		ignore: newIgnoreMatcher(ignorePatterns),
	}
}

// Scan gathers structural statistics for the repository at root.
// An invalid or inaccessible root is fatal; per-file read errors are logged
// at debug level and the file contributes nothing.
func (s *Scanner) Scan(root string) (*ProjectStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", root)
	}

	s.log.Info("scanning repository", "path", root)

	st := &ProjectStats{
		FilesByExtension: make(map[string]int),
		LinesByExtension: make(map[string]int),
		FoldersByType:    make(map[string][]string),
	}
	languages := make(map[string]bool)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.log.Debug("skipping unreadable entry", "path", path, "error", walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			// Prune ignored subtrees before descending.
			if s.ignore.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.ignore.Match(rel) {
			return nil
		}

		counts, readErr := s.countLines(path)
		if readErr != nil {
			s.log.Debug("skipping unreadable file", "path", rel, "error", readErr)
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))

		st.TotalFiles++
		st.TotalLines += counts.total
		st.TotalCodeLines += counts.code
		st.TotalBlankLines += counts.blank
		st.TotalCommentLines += counts.comment

		st.FilesByExtension[ext]++
		st.LinesByExtension[ext] += counts.total

		if lang, ok := languageByExtension[ext]; ok {
			languages[lang] = true
		}

		// Strict greater-than: ties keep the first file seen.
		if counts.total > st.LargestFileLines {
			st.LargestFileLines = counts.total
			st.LargestFile = filepath.ToSlash(rel)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	if st.TotalFiles > 0 {
		st.AverageFileSize = float64(st.TotalLines) / float64(st.TotalFiles)
	}

	st.Languages = make([]string, 0, len(languages))
	for lang := range languages {
		st.Languages = append(st.Languages, lang)
	}
	sort.Strings(st.Languages)

	s.detectFeatures(root, st)

	s.log.Info("scan complete", "files", st.TotalFiles, "lines", st.TotalLines)
	return st, nil
}

// classifier state for multi-line comment constructs.
type lineState int

const (
	stateNormal lineState = iota
	stateInBlock
)

// countLines classifies every line of a file as blank, comment, or code.
//
// The classification is a per-line heuristic, not a tokenizer: a line is a
// comment if it starts with a known marker, or if it toggles or sits inside
// a multi-line construct. Triple-quoted strings that are not docstrings are
// therefore misclassified as comments; this is an accepted approximation.
func (s *Scanner) countLines(path string) (lineCounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lineCounts{}, err
	}

	// Invalid UTF-8 is tolerated: lines are split on newlines and markers
	// are plain ASCII, so undecodable bytes pass through harmlessly.
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var c lineCounts
	state := stateNormal

	for _, line := range lines {
		c.total++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			c.blank++
		}

		switch {
		case hasCommentMarker(trimmed):
			c.comment++
		case strings.Contains(trimmed, `"""`) ||
			strings.Contains(trimmed, "'''") ||
			strings.Contains(trimmed, "/*"):
			if state == stateNormal {
				state = stateInBlock
			} else {
				state = stateNormal
			}
			c.comment++
		case state == stateInBlock:
			c.comment++
		}
	}

	c.code = c.total - c.blank - c.comment
	if c.code < 0 {
		c.code = 0
	}
	return c, nil
}

// commentMarkers are single-line and block-comment openers across the
// supported languages.
var commentMarkers = []string{"#", "//", "/*", "*", `"""`, "'''"}

func hasCommentMarker(trimmed string) bool {
	for _, m := range commentMarkers {
		if strings.HasPrefix(trimmed, m) {
			return true
		}
	}
	return false
}
