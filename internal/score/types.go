// Package score combines a ProjectStats and a QualityMetrics snapshot into
// weighted 0-100 category scores, an overall score, and a letter grade.
package score

// EvaluationScores holds the complete evaluation result. All scores are on
// a 0-100 scale; Grade is a single uppercase letter derived from
// OverallScore.
type EvaluationScores struct {
	CodeQualityScore     float64 `json:"code_quality_score"`
	ArchitectureScore    float64 `json:"architecture_score"`
	MaintainabilityScore float64 `json:"maintainability_score"`
	TestCoverageScore    float64 `json:"test_coverage_score"`
	MLAIReadinessScore   float64 `json:"ml_ai_readiness_score"`

	OverallScore float64 `json:"overall_score"`
	Grade        string  `json:"grade"`

	// Display-only sub-scores for the detailed breakdown.
	ComplexityScore    float64 `json:"complexity_score"`
	DocumentationScore float64 `json:"documentation_score"`
	StructureScore     float64 `json:"structure_score"`
}
