package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repograde/repograde/internal/config"
	"github.com/repograde/repograde/internal/fetch"
	"github.com/repograde/repograde/internal/output"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the repository clone cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache location, size, and repository count",
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached repository clones",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	setupOutput()
	cfg := config.Load(flagConfig, log)

	fetcher := fetch.NewFetcher(log, cfg.CacheDir, cfg.CacheExpiryDays)
	size, count, err := fetcher.CacheSize()
	if err != nil {
		return fmt.Errorf("reading cache: %w", err)
	}

	fmt.Println(output.Section("Clone Cache"))
	t := output.NewTable("Property", "Value")
	t.AddRow("Location", cfg.CacheDir)
	t.AddRow("Repositories", fmt.Sprintf("%d", count))
	t.AddRow("Size", formatBytes(size))
	t.AddRow("Expiry", fmt.Sprintf("%d days", cfg.CacheExpiryDays))
	fmt.Println(t.Render())
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	cfg := config.Load(flagConfig, log)

	fetcher := fetch.NewFetcher(log, cfg.CacheDir, cfg.CacheExpiryDays)
	if err := fetcher.ClearCache(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	fmt.Println("Cache cleared.")
	return nil
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
