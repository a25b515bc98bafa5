package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level repograde configuration.
type Config struct {
	CacheDir        string   `mapstructure:"cache_dir"`
	CacheExpiryDays int      `mapstructure:"cache_expiry_days"`
	MaxFiles        int      `mapstructure:"max_files"`
	IgnorePatterns  []string `mapstructure:"ignore_patterns"`
	Scoring         Scoring  `mapstructure:"scoring"`
	Output          Output   `mapstructure:"output"`
}

// Scoring groups the weights and threshold ladders the scoring engine uses.
type Scoring struct {
	Weights         Weights    `mapstructure:"weights"`
	Complexity      Thresholds `mapstructure:"complexity_thresholds"`
	Maintainability Thresholds `mapstructure:"maintainability_thresholds"`
	MLFrameworks    []string   `mapstructure:"ml_frameworks"`
}

// Weights defines the per-category weights for the overall score.
type Weights struct {
	CodeQuality     float64 `mapstructure:"code_quality"`
	Architecture    float64 `mapstructure:"architecture"`
	Maintainability float64 `mapstructure:"maintainability"`
	TestCoverage    float64 `mapstructure:"test_coverage"`
	MLAIReadiness   float64 `mapstructure:"ml_ai_readiness"`
}

// Thresholds is a four-band ladder. For complexity the bands are upper
// bounds (lower is better); for maintainability they are lower bounds.
type Thresholds struct {
	Excellent float64 `mapstructure:"excellent"`
	Good      float64 `mapstructure:"good"`
	Moderate  float64 `mapstructure:"moderate"`
	Poor      float64 `mapstructure:"poor"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		CacheDir:        expandPath(DefaultCacheDir),
		CacheExpiryDays: DefaultCacheExpiryDays,
		MaxFiles:        DefaultMaxFiles,
		IgnorePatterns:  append([]string(nil), DefaultIgnorePatterns...),
		Scoring: Scoring{
			Weights:         DefaultWeights,
			Complexity:      DefaultComplexityThresholds,
			Maintainability: DefaultMaintainabilityThresholds,
			MLFrameworks:    append([]string(nil), DefaultMLFrameworks...),
		},
		Output: DefaultOutput,
	}
}

// Load reads configuration from the given path (or the default location).
// A missing config file is not an error. An unreadable or unparsable file
// logs a warning and falls back to the built-in defaults: configuration
// problems never abort an evaluation run.
func Load(cfgFile string, log *slog.Logger) *Config {
	v := viper.New()

	v.SetDefault("cache_dir", DefaultCacheDir)
	v.SetDefault("cache_expiry_days", DefaultCacheExpiryDays)
	v.SetDefault("max_files", DefaultMaxFiles)
	v.SetDefault("ignore_patterns", DefaultIgnorePatterns)
	v.SetDefault("scoring.weights.code_quality", DefaultWeights.CodeQuality)
	v.SetDefault("scoring.weights.architecture", DefaultWeights.Architecture)
	v.SetDefault("scoring.weights.maintainability", DefaultWeights.Maintainability)
	v.SetDefault("scoring.weights.test_coverage", DefaultWeights.TestCoverage)
	v.SetDefault("scoring.weights.ml_ai_readiness", DefaultWeights.MLAIReadiness)
	v.SetDefault("scoring.complexity_thresholds.excellent", DefaultComplexityThresholds.Excellent)
	v.SetDefault("scoring.complexity_thresholds.good", DefaultComplexityThresholds.Good)
	v.SetDefault("scoring.complexity_thresholds.moderate", DefaultComplexityThresholds.Moderate)
	v.SetDefault("scoring.complexity_thresholds.poor", DefaultComplexityThresholds.Poor)
	v.SetDefault("scoring.maintainability_thresholds.excellent", DefaultMaintainabilityThresholds.Excellent)
	v.SetDefault("scoring.maintainability_thresholds.good", DefaultMaintainabilityThresholds.Good)
	v.SetDefault("scoring.maintainability_thresholds.moderate", DefaultMaintainabilityThresholds.Moderate)
	v.SetDefault("scoring.maintainability_thresholds.poor", DefaultMaintainabilityThresholds.Poor)
	v.SetDefault("scoring.ml_frameworks", DefaultMLFrameworks)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			log.Warn("failed to read config, using defaults", "error", err)
			return Defaults()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Warn("failed to parse config, using defaults", "error", err)
		return Defaults()
	}

	cfg.CacheDir = expandPath(cfg.CacheDir)
	return &cfg
}

// DBPath returns the full path to the SQLite history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
