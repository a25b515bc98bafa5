package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repograde/repograde/internal/config"
	"github.com/repograde/repograde/internal/output"
	"github.com/repograde/repograde/internal/store"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [repository]",
	Short: "List past evaluation results",
	Long: `History lists evaluations recorded by previous runs of the evaluate
command, most recent first. With a repository argument, only that
repository's history is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 10, "Maximum number of entries to show (0 = all)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	setupOutput()

	repo := ""
	if len(args) == 1 {
		repo = args[0]
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	evals, err := db.ListEvaluations(repo, historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing evaluations: %w", err)
	}

	if flagJSON {
		if evals == nil {
			evals = []store.Evaluation{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(evals)
	}

	fmt.Println(output.Section("Evaluation History"))
	if len(evals) == 0 {
		fmt.Println(" " + output.StyleMuted.Render("No evaluations recorded yet."))
		return nil
	}

	t := output.NewTable("When", "Repository", "Overall", "Grade", "Files", "Analyzed")
	t.AlignColumn(2, output.AlignRight)
	t.AlignColumn(4, output.AlignRight)
	t.AlignColumn(5, output.AlignRight)
	for _, ev := range evals {
		t.AddRow(
			ev.TakenAt.Local().Format("2006-01-02 15:04"),
			ev.Repository,
			output.ScoreStyle(ev.OverallScore).Render(fmt.Sprintf("%.2f", ev.OverallScore)),
			output.GradeStyle(ev.Grade).Render(ev.Grade),
			fmt.Sprintf("%d", ev.TotalFiles),
			fmt.Sprintf("%d", ev.FilesAnalyzed),
		)
	}
	fmt.Println(t.Render())
	return nil
}
