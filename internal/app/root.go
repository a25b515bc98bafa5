// Package app contains the Cobra command tree for repograde.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/repograde/repograde/internal/logger"
	"github.com/repograde/repograde/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagJSON    bool
	flagNoColor bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "repograde",
	Short: "Automated repository quality evaluation",
	Long: `repograde evaluates the quality of a code repository. It scans the
project structure, analyzes code complexity and maintainability, computes
weighted category scores with a letter grade, and generates prioritized
improvement recommendations.

Point it at a local directory or a GitHub URL:
  repograde evaluate https://github.com/user/repo
  repograde evaluate ./my-project`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("repograde", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  evaluate  Run the full evaluation pipeline on a repository")
		fmt.Println("  scan      Show structural statistics only")
		fmt.Println("  quality   Show code quality metrics only")
		fmt.Println("  history   List past evaluation results")
		fmt.Println("  cache     Manage the repository clone cache")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repograde/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// setupLogger builds the CLI logger honoring --verbose.
func setupLogger() *slog.Logger {
	return logger.Default(flagVerbose)
}

// setupOutput applies --no-color or terminal autodetection.
func setupOutput() {
	if flagNoColor {
		output.SetNoColor(true)
		return
	}
	output.AutoDetect()
}
