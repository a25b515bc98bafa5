package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repograde/repograde/internal/config"
	"github.com/repograde/repograde/internal/fetch"
	"github.com/repograde/repograde/internal/output"
	"github.com/repograde/repograde/internal/stats"
)

var scanFlagRefresh bool

var scanCmd = &cobra.Command{
	Use:   "scan <repository>",
	Short: "Show structural statistics only",
	Long: `Scan walks the repository and reports file counts, line counts broken
down into code, comments, and blanks, detected languages, and the
project feature checklist, without running quality analysis or scoring.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanFlagRefresh, "refresh", false, "Ignore the clone cache and fetch fresh")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	setupOutput()
	cfg := config.Load(flagConfig, log)

	fetcher := fetch.NewFetcher(log, cfg.CacheDir, cfg.CacheExpiryDays)
	repoPath, err := fetcher.Fetch(cmd.Context(), args[0], scanFlagRefresh)
	if err != nil {
		return err
	}

	st, err := stats.NewScanner(log, cfg.IgnorePatterns).Scan(repoPath)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	renderScan(args[0], st)
	return nil
}

func renderScan(repo string, st *stats.ProjectStats) {
	fmt.Println(output.Section("Project Structure: " + repo))

	t := output.NewTable("Metric", "Value")
	t.AlignColumn(1, output.AlignRight)
	t.AddRow("Total Files", fmt.Sprintf("%d", st.TotalFiles))
	t.AddRow("Total Lines", fmt.Sprintf("%d", st.TotalLines))
	t.AddRow("Code Lines", fmt.Sprintf("%d", st.TotalCodeLines))
	t.AddRow("Comment Lines", fmt.Sprintf("%d", st.TotalCommentLines))
	t.AddRow("Blank Lines", fmt.Sprintf("%d", st.TotalBlankLines))
	t.AddRow("Average File Size", fmt.Sprintf("%.1f lines", st.AverageFileSize))
	if st.LargestFile != "" {
		t.AddRow("Largest File", fmt.Sprintf("%s (%d lines)", st.LargestFile, st.LargestFileLines))
	}
	t.AddRow("Languages", strings.Join(st.Languages, ", "))
	fmt.Println(t.Render())

	fmt.Println(output.Section("Features"))
	features := []struct {
		name    string
		present bool
	}{
		{"Tests", st.HasTests},
		{"Documentation", st.HasDocs},
		{"Configuration Files", st.HasConfig},
		{"Requirements/Dependencies", st.HasRequirements},
		{"Docker Support", st.HasDockerfile},
		{"CI/CD Pipeline", st.HasCICD},
	}
	for _, f := range features {
		fmt.Printf(" %s %s\n", output.Checkmark(f.present), f.name)
	}
}
