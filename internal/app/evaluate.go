package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/repograde/repograde/internal/config"
	"github.com/repograde/repograde/internal/fetch"
	"github.com/repograde/repograde/internal/quality"
	"github.com/repograde/repograde/internal/report"
	"github.com/repograde/repograde/internal/score"
	"github.com/repograde/repograde/internal/stats"
	"github.com/repograde/repograde/internal/store"
	"github.com/repograde/repograde/internal/suggest"
)

var (
	evalFlagRefresh bool
	evalFlagNoSave  bool
	evalFlagOutput  string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <repository>",
	Short: "Run the full evaluation pipeline on a repository",
	Long: `Evaluate runs the complete pipeline: fetch (for GitHub URLs), structural
scan, code quality analysis, weighted scoring, and recommendation
generation. The result is rendered as a terminal report, or as JSON with
--json or --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().BoolVar(&evalFlagRefresh, "refresh", false, "Ignore the clone cache and fetch fresh")
	evaluateCmd.Flags().BoolVar(&evalFlagNoSave, "no-save", false, "Do not record this evaluation in history")
	evaluateCmd.Flags().StringVar(&evalFlagOutput, "output", "", "Write the JSON report to a file")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	setupOutput()
	cfg := config.Load(flagConfig, log)

	target := args[0]

	fetcher := fetch.NewFetcher(log, cfg.CacheDir, cfg.CacheExpiryDays)
	repoPath, err := fetcher.Fetch(cmd.Context(), target, evalFlagRefresh)
	if err != nil {
		return err
	}

	// The scan and the quality analysis read the tree independently, so
	// they run concurrently.
	var (
		st *stats.ProjectStats
		qm *quality.QualityMetrics
		g  errgroup.Group
	)
	g.Go(func() error {
		var err error
		st, err = stats.NewScanner(log, cfg.IgnorePatterns).Scan(repoPath)
		return err
	})
	g.Go(func() error {
		var err error
		qm, err = quality.NewAnalyzer(log).AnalyzeRepository(repoPath, cfg.MaxFiles)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	sc := score.NewEngine(log, cfg.Scoring).Calculate(st, qm)
	recs := suggest.NewEngine(log).Generate(&suggest.Inputs{
		Stats:   st,
		Metrics: qm,
		Scores:  sc,
	})

	if flagJSON || evalFlagOutput != "" {
		jr := report.BuildJSON(target, appVersion, st, qm, sc, recs)
		if evalFlagOutput != "" {
			if err := jr.WriteFile(evalFlagOutput); err != nil {
				return fmt.Errorf("writing JSON report: %w", err)
			}
			log.Info("JSON report saved", "path", evalFlagOutput)
		}
		if flagJSON {
			data, err := jr.Marshal()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		}
	} else {
		report.NewRenderer(os.Stdout, appVersion).Render(target, st, qm, sc, recs)
	}

	if evalFlagNoSave {
		return nil
	}
	return saveEvaluation(log, target, st, qm, sc)
}

// saveEvaluation records the evaluation in the history database. A storage
// failure does not invalidate the already-rendered report, so it is logged
// rather than returned.
func saveEvaluation(log *slog.Logger, target string, st *stats.ProjectStats, qm *quality.QualityMetrics, sc *score.EvaluationScores) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		log.Warn("history database unavailable, evaluation not saved", "error", err)
		return nil
	}
	defer func() { _ = db.Close() }()

	_, err = db.InsertEvaluation(&store.Evaluation{
		Repository:           target,
		CodeQualityScore:     sc.CodeQualityScore,
		ArchitectureScore:    sc.ArchitectureScore,
		MaintainabilityScore: sc.MaintainabilityScore,
		TestCoverageScore:    sc.TestCoverageScore,
		MLAIReadinessScore:   sc.MLAIReadinessScore,
		OverallScore:         sc.OverallScore,
		Grade:                sc.Grade,
		TotalFiles:           st.TotalFiles,
		TotalLines:           st.TotalLines,
		FilesAnalyzed:        qm.FilesAnalyzed,
	})
	if err != nil {
		log.Warn("recording evaluation failed", "error", err)
	}
	return nil
}
