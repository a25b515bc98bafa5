// Package fetch acquires repositories for evaluation. Remote GitHub URLs
// are shallow-cloned into a local cache with mtime-based expiry; plain
// local directories are passed through untouched.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// githubURLPatterns are the accepted GitHub repository URL forms: https
// with or without a trailing slash or .git suffix, and the ssh form.
var githubURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://github\.com/[\w\-.]+/[\w\-.]+/?$`),
	regexp.MustCompile(`^git@github\.com:[\w\-.]+/[\w\-.]+\.git$`),
	regexp.MustCompile(`^https?://github\.com/[\w\-.]+/[\w\-.]+\.git$`),
}

// runGit is injectable in tests.
var runGit = func(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Fetcher clones and caches GitHub repositories.
type Fetcher struct {
	log        *slog.Logger
	cacheDir   string
	expiryDays int
}

// NewFetcher creates a fetcher that caches clones under cacheDir. Cached
// clones older than expiryDays are refreshed on the next fetch.
func NewFetcher(log *slog.Logger, cacheDir string, expiryDays int) *Fetcher {
	return &Fetcher{log: log, cacheDir: cacheDir, expiryDays: expiryDays}
}

// IsGitHubURL reports whether url is a valid GitHub repository URL.
func IsGitHubURL(url string) bool {
	url = strings.TrimSpace(url)
	for _, p := range githubURLPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// RepoName derives the cache directory name for a GitHub URL, in the form
// "owner_repo".
func RepoName(url string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	var rest string
	switch {
	case strings.Contains(trimmed, "github.com/"):
		parts := strings.SplitN(trimmed, "github.com/", 2)
		rest = parts[1]
	case strings.Contains(trimmed, "github.com:"):
		parts := strings.SplitN(trimmed, "github.com:", 2)
		rest = parts[1]
	default:
		return "", fmt.Errorf("cannot extract repository name from URL: %s", url)
	}

	segs := strings.Split(rest, "/")
	if len(segs) < 2 || segs[0] == "" || segs[1] == "" {
		return "", fmt.Errorf("cannot extract repository name from URL: %s", url)
	}
	return segs[0] + "_" + segs[1], nil
}

// Fetch returns a local directory for the given target. A path to an
// existing directory is returned as-is; a GitHub URL is resolved through
// the clone cache. forceRefresh bypasses the cache and clones fresh.
func (f *Fetcher) Fetch(ctx context.Context, target string, forceRefresh bool) (string, error) {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return target, nil
	}

	if !IsGitHubURL(target) {
		return "", fmt.Errorf("not a local directory or valid GitHub URL: %s", target)
	}

	name, err := RepoName(target)
	if err != nil {
		return "", err
	}

	repoPath := filepath.Join(f.cacheDir, name)

	if !forceRefresh && f.cacheValid(repoPath) {
		f.log.Info("using cached repository", "path", repoPath)
		return repoPath, nil
	}

	if err := f.clone(ctx, target, repoPath); err != nil {
		return "", err
	}
	return repoPath, nil
}

// cacheValid reports whether repoPath holds a non-expired git clone.
func (f *Fetcher) cacheValid(repoPath string) bool {
	info, err := os.Stat(repoPath)
	if err != nil || !info.IsDir() {
		return false
	}
	if git, err := os.Stat(filepath.Join(repoPath, ".git")); err != nil || !git.IsDir() {
		return false
	}

	age := time.Since(info.ModTime())
	return age < time.Duration(f.expiryDays)*24*time.Hour
}

// clone shallow-clones url into target, replacing any existing directory.
func (f *Fetcher) clone(ctx context.Context, url, target string) error {
	f.log.Info("cloning repository", "url", url)

	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("clearing stale clone: %w", err)
	}

	if err := runGit(ctx, "clone", "--depth", "1", "--single-branch", url, target); err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}

	f.log.Info("clone complete", "path", target)
	return nil
}

// ClearCache removes all cached clones and recreates the cache directory.
func (f *Fetcher) ClearCache() error {
	if err := os.RemoveAll(f.cacheDir); err != nil {
		return err
	}
	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return err
	}
	f.log.Info("repository cache cleared")
	return nil
}

// CacheSize returns the total byte size and count of cached repositories.
func (f *Fetcher) CacheSize() (int64, int, error) {
	entries, err := os.ReadDir(f.cacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	var total int64
	count := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		count++
		_ = filepath.WalkDir(filepath.Join(f.cacheDir, e.Name()), func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
			return nil
		})
	}
	return total, count, nil
}
