package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repograde/repograde/internal/config"
	"github.com/repograde/repograde/internal/fetch"
	"github.com/repograde/repograde/internal/output"
	"github.com/repograde/repograde/internal/quality"
)

var (
	qualityFlagRefresh bool
	qualityFlagFiles   bool
)

var qualityCmd = &cobra.Command{
	Use:   "quality <repository>",
	Short: "Show code quality metrics only",
	Long: `Quality analyzes cyclomatic complexity and maintainability across the
repository's source files and prints the aggregated metrics, without
structural scoring or recommendations.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuality,
}

func init() {
	qualityCmd.Flags().BoolVar(&qualityFlagRefresh, "refresh", false, "Ignore the clone cache and fetch fresh")
	qualityCmd.Flags().BoolVar(&qualityFlagFiles, "files", false, "List per-file metrics")

	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	setupOutput()
	cfg := config.Load(flagConfig, log)

	fetcher := fetch.NewFetcher(log, cfg.CacheDir, cfg.CacheExpiryDays)
	repoPath, err := fetcher.Fetch(cmd.Context(), args[0], qualityFlagRefresh)
	if err != nil {
		return err
	}

	qm, err := quality.NewAnalyzer(log).AnalyzeRepository(repoPath, cfg.MaxFiles)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(qm)
	}

	renderQuality(args[0], qm)
	return nil
}

func renderQuality(repo string, qm *quality.QualityMetrics) {
	fmt.Println(output.Section("Code Quality: " + repo))

	t := output.NewTable("Metric", "Value")
	t.AlignColumn(1, output.AlignRight)
	t.AddRow("Files Analyzed", fmt.Sprintf("%d", qm.FilesAnalyzed))
	t.AddRow("Average Complexity", fmt.Sprintf("%.2f", qm.AverageComplexity))
	t.AddRow("Median Complexity", fmt.Sprintf("%.2f", qm.MedianComplexity))
	t.AddRow("Max Complexity", fmt.Sprintf("%.2f", qm.MaxComplexity))
	t.AddRow("Average Maintainability", fmt.Sprintf("%.2f", qm.AverageMaintainability))
	t.AddRow("Min Maintainability", fmt.Sprintf("%.2f", qm.MinMaintainability))
	t.AddRow("Total Functions", fmt.Sprintf("%d", qm.TotalFunctions))
	t.AddRow("Complex Functions (>10)", fmt.Sprintf("%d", qm.ComplexFunctions))
	t.AddRow("Very Complex Functions (>20)", fmt.Sprintf("%d", qm.VeryComplexFunctions))
	t.AddRow("Problematic Files", fmt.Sprintf("%d", len(qm.ProblematicFiles)))
	fmt.Println(t.Render())

	if !qualityFlagFiles || len(qm.FileMetrics) == 0 {
		return
	}

	fmt.Println(output.Section("Per-File Metrics"))
	ft := output.NewTable("File", "LOC", "Complexity", "Maintainability", "Rank")
	ft.AlignColumn(1, output.AlignRight)
	ft.AlignColumn(2, output.AlignRight)
	ft.AlignColumn(3, output.AlignRight)
	for _, fq := range qm.FileMetrics {
		ft.AddRow(
			fq.FilePath,
			fmt.Sprintf("%d", fq.LOC),
			fmt.Sprintf("%.2f", fq.Complexity),
			fmt.Sprintf("%.2f", fq.Maintainability),
			fq.ComplexityRank,
		)
	}
	fmt.Println(ft.Render())
}
