package stats

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Detection tables for the six boolean feature flags. Each flag is satisfied
// by any one matching indicator.
var (
	testDirIndicators  = []string{"test", "tests", "spec", "__tests__"}
	testFilePatterns   = []string{"test_*.py", "*_test.py", "*_test.go", "*.test.js", "*.spec.js"}
	docIndicators      = map[string]bool{"readme.md": true, "readme.rst": true, "docs": true, "documentation": true}
	configFiles        = []string{"config.yaml", "config.yml", "config.json", "setup.py", "pyproject.toml", "package.json"}
	requirementFiles   = []string{"requirements.txt", "requirements.in", "Pipfile", "environment.yml", "package.json", "go.mod", "Cargo.toml"}
	dockerFiles        = []string{"Dockerfile", "docker-compose.yml"}
	ciIndicators       = []string{filepath.Join(".github", "workflows"), ".gitlab-ci.yml", ".travis.yml", "Jenkinsfile", ".circleci"}
)

// detectFeatures fills in the boolean feature flags and the tests folder
// list. It runs over the whole tree independently of the line-counting walk
// and is deliberately not filtered by ignore patterns: ignore patterns scope
// what gets counted, not what the repository visibly contains.
func (s *Scanner) detectFeatures(root string, st *ProjectStats) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		name := strings.ToLower(d.Name())

		if d.IsDir() {
			for _, ind := range testDirIndicators {
				if strings.Contains(name, ind) {
					st.HasTests = true
					st.FoldersByType["tests"] = append(st.FoldersByType["tests"], filepath.ToSlash(rel))
					break
				}
			}
			if docIndicators[name] {
				st.HasDocs = true
			}
			return nil
		}

		if !st.HasTests {
			for _, pattern := range testFilePatterns {
				if ok, _ := filepath.Match(pattern, name); ok {
					st.HasTests = true
					break
				}
			}
		}
		if docIndicators[name] {
			st.HasDocs = true
		}
		return nil
	})

	st.HasConfig = anyExists(root, configFiles)
	st.HasRequirements = anyExists(root, requirementFiles)
	st.HasDockerfile = anyExists(root, dockerFiles)
	st.HasCICD = anyExists(root, ciIndicators)
}

// anyExists reports whether any of the names exists directly under root.
func anyExists(root string, names []string) bool {
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return true
		}
	}
	return false
}
