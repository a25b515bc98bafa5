// Package quality aggregates per-file complexity and maintainability
// readings into a QualityMetrics snapshot for an entire repository.
package quality

// Complexity thresholds shared by bucketing, per-file counters, and the
// problematic-file rule.
const (
	ThresholdSimple      = 5
	ThresholdModerate    = 10
	ThresholdComplex     = 15
	ThresholdVeryComplex = 20
)

// ThresholdMaintainabilityModerate is the floor below which a file's
// maintainability marks it problematic.
const ThresholdMaintainabilityModerate = 50

// FileQuality is one file's quality reading, produced by a FileAnalyzer and
// never mutated afterwards.
type FileQuality struct {
	FilePath                  string  `json:"file_path"`
	LOC                       int     `json:"loc"`
	Complexity                float64 `json:"complexity"`
	Maintainability           float64 `json:"maintainability"`
	ComplexityRank            string  `json:"complexity_rank"`
	MaintainabilityRank       string  `json:"maintainability_rank"`
	FunctionsCount            int     `json:"functions_count"`
	AverageFunctionComplexity float64 `json:"average_function_complexity"`
}

// QualityMetrics is the aggregate over all analyzed files. When no files
// qualify, every aggregate keeps its declared default (zero, or 100 for
// MinMaintainability) rather than being undefined; downstream scoring
// special-cases FilesAnalyzed == 0.
type QualityMetrics struct {
	AverageComplexity float64 `json:"average_complexity"`
	MedianComplexity  float64 `json:"median_complexity"`
	MaxComplexity     float64 `json:"max_complexity"`

	AverageMaintainability float64 `json:"average_maintainability"`
	MedianMaintainability  float64 `json:"median_maintainability"`
	MinMaintainability     float64 `json:"min_maintainability"`

	TotalFunctions int `json:"total_functions"`

	// ComplexFunctions and VeryComplexFunctions count analyzed files whose
	// average complexity exceeds the moderate (>10) and very-complex (>20)
	// thresholds respectively.
	ComplexFunctions     int `json:"complex_functions"`
	VeryComplexFunctions int `json:"very_complex_functions"`

	FilesAnalyzed int `json:"files_analyzed"`

	// ProblematicFiles lists repository-relative paths whose complexity
	// exceeds the complex threshold or whose maintainability falls below
	// the moderate threshold.
	ProblematicFiles []string `json:"problematic_files"`

	// QualityDistribution maps bucket name to file count. Bucket counts
	// always sum to FilesAnalyzed.
	QualityDistribution map[string]int `json:"quality_distribution"`

	// FileMetrics holds the per-file readings in discovery order, capped
	// at the configured maximum file count.
	FileMetrics []FileQuality `json:"file_metrics"`
}

// newQualityMetrics returns a QualityMetrics with declared defaults.
func newQualityMetrics() *QualityMetrics {
	return &QualityMetrics{
		MinMaintainability: 100,
		ProblematicFiles:   []string{},
		QualityDistribution: map[string]int{
			"simple":       0,
			"moderate":     0,
			"complex":      0,
			"very_complex": 0,
		},
		FileMetrics: []FileQuality{},
	}
}

// bucket assigns a complexity value to its quality bucket.
func bucket(complexity float64) string {
	switch {
	case complexity <= ThresholdSimple:
		return "simple"
	case complexity <= ThresholdModerate:
		return "moderate"
	case complexity <= ThresholdComplex:
		return "complex"
	default:
		return "very_complex"
	}
}
