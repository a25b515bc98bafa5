package stats

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/repograde/repograde/internal/logger"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestScanner(patterns ...string) *Scanner {
	return NewScanner(logger.Discard(), patterns)
}

// --- countLines ---

func TestCountLines_Classification(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "# header\n\ndef foo():\n    return 1\n")

	c, err := newTestScanner().countLines(filepath.Join(dir, "main.py"))
	if err != nil {
		t.Fatal(err)
	}
	if c.total != 4 || c.blank != 1 || c.comment != 1 || c.code != 2 {
		t.Errorf("got total=%d blank=%d comment=%d code=%d", c.total, c.blank, c.comment, c.code)
	}
}

func TestCountLines_MultilineBlock(t *testing.T) {
	dir := t.TempDir()
	// Opening and closing quotes mid-line toggle the block state; interior
	// lines count as comments.
	writeFile(t, dir, "doc.py", "x = 1\ns = '''\nhello\nend'''\ny = 2\n")

	c, err := newTestScanner().countLines(filepath.Join(dir, "doc.py"))
	if err != nil {
		t.Fatal(err)
	}
	if c.total != 5 || c.comment != 3 || c.code != 2 {
		t.Errorf("got total=%d comment=%d code=%d", c.total, c.comment, c.code)
	}
}

func TestCountLines_DocstringPrefixDoesNotToggle(t *testing.T) {
	dir := t.TempDir()
	// A one-line docstring starts with the marker, so it is a plain comment
	// and must not flip the block state for the rest of the file.
	writeFile(t, dir, "one.py", "\"\"\"Module doc.\"\"\"\nx = 1\n")

	c, err := newTestScanner().countLines(filepath.Join(dir, "one.py"))
	if err != nil {
		t.Fatal(err)
	}
	if c.comment != 1 || c.code != 1 {
		t.Errorf("got comment=%d code=%d", c.comment, c.code)
	}
}

func TestCountLines_NoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.go", "package x")

	c, err := newTestScanner().countLines(filepath.Join(dir, "x.go"))
	if err != nil {
		t.Fatal(err)
	}
	if c.total != 1 || c.code != 1 {
		t.Errorf("got total=%d code=%d", c.total, c.code)
	}
}

func TestCountLines_CodeFlooredAtZero(t *testing.T) {
	dir := t.TempDir()
	// A blank line inside a block counts as both blank and comment, which
	// would push code negative without the floor.
	writeFile(t, dir, "b.py", "x = '''\n\n'''\n")

	c, err := newTestScanner().countLines(filepath.Join(dir, "b.py"))
	if err != nil {
		t.Fatal(err)
	}
	if c.code != 0 {
		t.Errorf("expected code floored at 0, got %d", c.code)
	}
}

// --- Scan ---

func TestScan_Totals(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n\n// entry\nfunc main() {}\n")
	writeFile(t, dir, "util.py", "def util():\n    pass\n")

	st, err := newTestScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}

	if st.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", st.TotalFiles)
	}
	if st.TotalLines != 6 {
		t.Errorf("TotalLines = %d, want 6", st.TotalLines)
	}
	if st.FilesByExtension[".go"] != 1 || st.FilesByExtension[".py"] != 1 {
		t.Errorf("FilesByExtension = %v", st.FilesByExtension)
	}
	if st.LinesByExtension[".go"] != 4 {
		t.Errorf("LinesByExtension[.go] = %d, want 4", st.LinesByExtension[".go"])
	}
	if want := []string{"Go", "Python"}; !reflect.DeepEqual(st.Languages, want) {
		t.Errorf("Languages = %v, want %v", st.Languages, want)
	}
	if st.AverageFileSize != 3 {
		t.Errorf("AverageFileSize = %v, want 3", st.AverageFileSize)
	}
}

func TestScan_IgnorePatternsPruned(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.js", "let x = 1\n")
	writeFile(t, dir, "node_modules/dep/index.js", "let y = 2\nlet z = 3\n")
	writeFile(t, dir, ".git/config", "[core]\n")

	st, err := newTestScanner("node_modules", ".git").Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalFiles != 1 {
		t.Errorf("TotalFiles = %d, want 1 (ignored trees counted)", st.TotalFiles)
	}
	if st.TotalLines != 1 {
		t.Errorf("TotalLines = %d, want 1", st.TotalLines)
	}
}

func TestScan_LargestFileTieKeepsFirst(t *testing.T) {
	dir := t.TempDir()
	// Walk order is lexicographic, so a.py is visited before b.py.
	writeFile(t, dir, "a.py", "x = 1\ny = 2\n")
	writeFile(t, dir, "b.py", "p = 1\nq = 2\n")

	st, err := newTestScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if st.LargestFile != "a.py" {
		t.Errorf("LargestFile = %q, want a.py (first wins on ties)", st.LargestFile)
	}
	if st.LargestFileLines != 2 {
		t.Errorf("LargestFileLines = %d, want 2", st.LargestFileLines)
	}
}

func TestScan_MissingRootFails(t *testing.T) {
	if _, err := newTestScanner().Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScan_FileRootFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "f.txt", "hi\n")
	if _, err := newTestScanner().Scan(filepath.Join(dir, "f.txt")); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestScan_EmptyRepository(t *testing.T) {
	st, err := newTestScanner().Scan(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalFiles != 0 || st.AverageFileSize != 0 || st.LargestFile != "" {
		t.Errorf("unexpected stats for empty repo: %+v", st)
	}
	if len(st.Languages) != 0 {
		t.Errorf("expected no languages, got %v", st.Languages)
	}
}

// --- feature detection ---

func TestDetectFeatures_TestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tests/test_app.py", "def test_ok():\n    pass\n")
	writeFile(t, dir, "app.py", "x = 1\n")

	st, err := newTestScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !st.HasTests {
		t.Error("expected HasTests for tests/ directory")
	}
	if folders := st.FoldersByType["tests"]; len(folders) != 1 || folders[0] != "tests" {
		t.Errorf("FoldersByType[tests] = %v", folders)
	}
}

func TestDetectFeatures_TestFilePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app_test.go", "package app\n")

	st, err := newTestScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !st.HasTests {
		t.Error("expected HasTests for *_test.go file")
	}
}

func TestDetectFeatures_RootIndicators(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# hi\n")
	writeFile(t, dir, "config.yaml", "a: 1\n")
	writeFile(t, dir, "requirements.txt", "flask\n")
	writeFile(t, dir, "Dockerfile", "FROM scratch\n")
	writeFile(t, dir, ".github/workflows/ci.yml", "on: push\n")

	st, err := newTestScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !st.HasDocs || !st.HasConfig || !st.HasRequirements || !st.HasDockerfile || !st.HasCICD {
		t.Errorf("feature flags: docs=%v config=%v reqs=%v docker=%v ci=%v",
			st.HasDocs, st.HasConfig, st.HasRequirements, st.HasDockerfile, st.HasCICD)
	}
}

func TestDetectFeatures_BareRepository(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.c", "int main() { return 0; }\n")

	st, err := newTestScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if st.HasTests || st.HasDocs || st.HasConfig || st.HasRequirements || st.HasDockerfile || st.HasCICD {
		t.Errorf("expected all feature flags false, got %+v", st)
	}
}

func TestDetectFeatures_IgnoredTreesStillVisible(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vendor/pkg/pkg_test.go", "package pkg\n")
	writeFile(t, dir, "main.go", "package main\n")

	st, err := newTestScanner("vendor").Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	// vendor is excluded from counting but feature detection sees it.
	if st.TotalFiles != 1 {
		t.Errorf("TotalFiles = %d, want 1", st.TotalFiles)
	}
	if !st.HasTests {
		t.Error("feature detection should not honor ignore patterns")
	}
}

func TestHasLanguage(t *testing.T) {
	st := &ProjectStats{Languages: []string{"Go", "Python"}}
	if !st.HasLanguage("Python") {
		t.Error("expected HasLanguage(Python)")
	}
	if st.HasLanguage("Rust") {
		t.Error("did not expect HasLanguage(Rust)")
	}
}
