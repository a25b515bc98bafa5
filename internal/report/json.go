// Package report renders evaluation results as a styled terminal report
// or as JSON for programmatic consumption.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/repograde/repograde/internal/quality"
	"github.com/repograde/repograde/internal/score"
	"github.com/repograde/repograde/internal/stats"
	"github.com/repograde/repograde/internal/suggest"
)

// JSONReport is the machine-readable evaluation report.
type JSONReport struct {
	Metadata        Metadata                 `json:"metadata"`
	Overview        Overview                 `json:"overview"`
	Scores          Scores                   `json:"scores"`
	QualityMetrics  Quality                  `json:"quality_metrics"`
	Features        Features                 `json:"features"`
	Recommendations []suggest.Recommendation `json:"recommendations"`
}

// Metadata identifies the evaluated repository and the evaluator run.
type Metadata struct {
	Repository  string `json:"repository"`
	GeneratedAt string `json:"generated_at"`
	Version     string `json:"evaluator_version"`
}

// Overview summarizes the project's size and composition.
type Overview struct {
	TotalFiles    int      `json:"total_files"`
	TotalLines    int      `json:"total_lines"`
	CodeLines     int      `json:"code_lines"`
	Languages     []string `json:"languages"`
	FilesAnalyzed int      `json:"files_analyzed"`
}

// Scores carries the overall and per-category scores.
type Scores struct {
	Overall         float64 `json:"overall"`
	Grade           string  `json:"grade"`
	CodeQuality     float64 `json:"code_quality"`
	Architecture    float64 `json:"architecture"`
	Maintainability float64 `json:"maintainability"`
	TestCoverage    float64 `json:"test_coverage"`
	MLAIReadiness   float64 `json:"ml_ai_readiness"`
}

// Quality carries the headline quality metrics.
type Quality struct {
	AverageComplexity      float64        `json:"average_complexity"`
	MaxComplexity          float64        `json:"max_complexity"`
	AverageMaintainability float64        `json:"average_maintainability"`
	TotalFunctions         int            `json:"total_functions"`
	ComplexFunctions       int            `json:"complex_functions"`
	Distribution           map[string]int `json:"distribution"`
}

// Features is the project feature checklist.
type Features struct {
	HasTests        bool `json:"has_tests"`
	HasDocs         bool `json:"has_docs"`
	HasConfig       bool `json:"has_config"`
	HasRequirements bool `json:"has_requirements"`
	HasDockerfile   bool `json:"has_dockerfile"`
	HasCICD         bool `json:"has_ci_cd"`
}

// BuildJSON assembles the machine-readable report from the four evaluation
// snapshots.
func BuildJSON(repo, version string, st *stats.ProjectStats, qm *quality.QualityMetrics, sc *score.EvaluationScores, recs []suggest.Recommendation) *JSONReport {
	if recs == nil {
		recs = []suggest.Recommendation{}
	}
	return &JSONReport{
		Metadata: Metadata{
			Repository:  repo,
			GeneratedAt: time.Now().Format(time.RFC3339),
			Version:     version,
		},
		Overview: Overview{
			TotalFiles:    st.TotalFiles,
			TotalLines:    st.TotalLines,
			CodeLines:     st.TotalCodeLines,
			Languages:     st.Languages,
			FilesAnalyzed: qm.FilesAnalyzed,
		},
		Scores: Scores{
			Overall:         sc.OverallScore,
			Grade:           sc.Grade,
			CodeQuality:     sc.CodeQualityScore,
			Architecture:    sc.ArchitectureScore,
			Maintainability: sc.MaintainabilityScore,
			TestCoverage:    sc.TestCoverageScore,
			MLAIReadiness:   sc.MLAIReadinessScore,
		},
		QualityMetrics: Quality{
			AverageComplexity:      qm.AverageComplexity,
			MaxComplexity:          qm.MaxComplexity,
			AverageMaintainability: qm.AverageMaintainability,
			TotalFunctions:         qm.TotalFunctions,
			ComplexFunctions:       qm.ComplexFunctions,
			Distribution:           qm.QualityDistribution,
		},
		Features: Features{
			HasTests:        st.HasTests,
			HasDocs:         st.HasDocs,
			HasConfig:       st.HasConfig,
			HasRequirements: st.HasRequirements,
			HasDockerfile:   st.HasDockerfile,
			HasCICD:         st.HasCICD,
		},
		Recommendations: recs,
	}
}

// Marshal renders the report as indented JSON.
func (r *JSONReport) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteFile writes the indented JSON report to path.
func (r *JSONReport) WriteFile(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
