// Package stats provides the structural scanner: it walks a repository tree
// and produces a ProjectStats snapshot of line counts, languages, and
// detected project features.
package stats

// ProjectStats is the structural snapshot of a repository at scan time.
// It is created once per evaluation run and never mutated afterwards.
type ProjectStats struct {
	TotalFiles        int `json:"total_files"`
	TotalLines        int `json:"total_lines"`
	TotalCodeLines    int `json:"total_code_lines"`
	TotalBlankLines   int `json:"total_blank_lines"`
	TotalCommentLines int `json:"total_comment_lines"`

	// FilesByExtension and LinesByExtension key on the lower-cased
	// extension including the leading dot.
	FilesByExtension map[string]int `json:"files_by_extension"`
	LinesByExtension map[string]int `json:"lines_by_extension"`

	// Languages is the sorted set of human-readable language names seen.
	Languages []string `json:"languages"`

	HasTests        bool `json:"has_tests"`
	HasDocs         bool `json:"has_docs"`
	HasConfig       bool `json:"has_config"`
	HasRequirements bool `json:"has_requirements"`
	HasDockerfile   bool `json:"has_dockerfile"`
	HasCICD         bool `json:"has_ci_cd"`

	// FoldersByType maps a category (e.g. "tests") to the relative folder
	// paths that matched, in discovery order.
	FoldersByType map[string][]string `json:"folders_by_type"`

	AverageFileSize  float64 `json:"average_file_size"`
	LargestFile      string  `json:"largest_file"`
	LargestFileLines int     `json:"largest_file_lines"`
}

// HasLanguage reports whether the given language was detected.
func (s *ProjectStats) HasLanguage(name string) bool {
	for _, l := range s.Languages {
		if l == name {
			return true
		}
	}
	return false
}

// lineCounts holds the per-file classification result.
type lineCounts struct {
	total   int
	code    int
	blank   int
	comment int
}
