// Package config provides configuration loading and defaults for repograde.
package config

// DefaultConfigDir is the default location for repograde configuration.
const DefaultConfigDir = "~/.config/repograde"

// DefaultCacheDir is the default location for cloned repositories.
const DefaultCacheDir = "~/.cache/repograde/repos"

// DefaultCacheExpiryDays is how long a cached clone stays fresh.
const DefaultCacheExpiryDays = 7

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "repograde.db"

// DefaultMaxFiles bounds how many files the quality aggregator analyzes.
const DefaultMaxFiles = 1000

// DefaultIgnorePatterns are gitignore-style patterns the structural scanner
// prunes before counting anything.
var DefaultIgnorePatterns = []string{
	"__pycache__",
	"*.pyc",
	".git",
	".venv",
	"venv",
	"env",
	"node_modules",
	".pytest_cache",
	".mypy_cache",
	"*.egg-info",
	"dist",
	"build",
	"vendor",
	".DS_Store",
	"*.min.js",
	"*.min.css",
}

// DefaultWeights holds the category weights for the overall score.
// They are expected to sum to 1.0; the scoring engine does not validate
// this, so a skewed config silently skews the overall score.
var DefaultWeights = Weights{
	CodeQuality:     0.30,
	Architecture:    0.25,
	Maintainability: 0.20,
	TestCoverage:    0.15,
	MLAIReadiness:   0.10,
}

// DefaultComplexityThresholds is the band ladder for average cyclomatic
// complexity (lower is better).
var DefaultComplexityThresholds = Thresholds{
	Excellent: 5,
	Good:      10,
	Moderate:  15,
	Poor:      20,
}

// DefaultMaintainabilityThresholds is the band ladder for the
// maintainability index (higher is better).
var DefaultMaintainabilityThresholds = Thresholds{
	Excellent: 80,
	Good:      65,
	Moderate:  50,
	Poor:      25,
}

// DefaultMLFrameworks are dependency names that signal ML/AI work.
var DefaultMLFrameworks = []string{
	"tensorflow", "pytorch", "scikit-learn", "keras", "numpy", "pandas",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
