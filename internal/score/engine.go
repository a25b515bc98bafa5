package score

import (
	"log/slog"
	"math"
	"strings"

	"github.com/repograde/repograde/internal/config"
	"github.com/repograde/repograde/internal/quality"
	"github.com/repograde/repograde/internal/stats"
)

// Engine calculates weighted evaluation scores from the two snapshots.
// Weights and threshold ladders come from configuration; the engine does
// not validate that weights sum to 1.0, so a skewed config silently skews
// the overall score.
type Engine struct {
	log *slog.Logger
	cfg config.Scoring
}

// NewEngine creates a scoring engine with the given scoring configuration.
func NewEngine(log *slog.Logger, cfg config.Scoring) *Engine {
	return &Engine{log: log, cfg: cfg}
}

// Calculate produces the full EvaluationScores for a project.
func (e *Engine) Calculate(st *stats.ProjectStats, qm *quality.QualityMetrics) *EvaluationScores {
	s := &EvaluationScores{
		CodeQualityScore:     e.codeQualityScore(qm),
		ArchitectureScore:    e.architectureScore(st),
		MaintainabilityScore: e.maintainabilityScore(qm, st),
		TestCoverageScore:    e.testCoverageScore(st),
		MLAIReadinessScore:   e.mlAIReadinessScore(st),
	}

	s.ComplexityScore = s.CodeQualityScore
	s.StructureScore = s.ArchitectureScore
	if st.HasDocs {
		s.DocumentationScore = 100
	} else {
		s.DocumentationScore = 30
	}

	w := e.cfg.Weights
	s.OverallScore = round2(
		s.CodeQualityScore*w.CodeQuality +
			s.ArchitectureScore*w.Architecture +
			s.MaintainabilityScore*w.Maintainability +
			s.TestCoverageScore*w.TestCoverage +
			s.MLAIReadinessScore*w.MLAIReadiness)

	s.Grade = GradeFor(s.OverallScore)

	e.log.Info("scoring complete", "overall", s.OverallScore, "grade", s.Grade)
	return s
}

// codeQualityScore maps average complexity through the threshold ladder and
// subtracts a penalty for very complex files. With no analyzed files there
// is no signal, so the score is a neutral 50.
func (e *Engine) codeQualityScore(qm *quality.QualityMetrics) float64 {
	if qm.FilesAnalyzed == 0 {
		return 50
	}

	c := qm.AverageComplexity
	t := e.cfg.Complexity

	var base float64
	switch {
	case c <= t.Excellent:
		base = 100
	case c <= t.Good:
		base = 85
	case c <= t.Moderate:
		base = 70
	case c <= t.Poor:
		base = 50
	default:
		base = math.Max(20, 100-2*c)
	}

	penalty := math.Min(30, float64(qm.VeryComplexFunctions)*5)
	return round2(math.Max(0, base-penalty))
}

// architectureScore rewards structure, configuration, dependency
// declarations, CI, and Docker on top of a base of 50, and adjusts for
// average file size.
func (e *Engine) architectureScore(st *stats.ProjectStats) float64 {
	s := 50.0

	if len(st.FoldersByType) > 0 {
		s += 10
	}
	if st.HasConfig {
		s += 10
	}
	if st.HasRequirements {
		s += 10
	}
	if st.HasCICD {
		s += 10
	}
	if st.HasDockerfile {
		s += 5
	}

	if st.AverageFileSize < 300 {
		s += 5
	} else if st.AverageFileSize > 1000 {
		s -= 10
	}

	return round2(clamp(s))
}

// maintainabilityScore bases on the maintainability index, adjusted for
// documentation, largest-file size, and the problematic-file ratio.
func (e *Engine) maintainabilityScore(qm *quality.QualityMetrics, st *stats.ProjectStats) float64 {
	var s float64
	if qm.AverageMaintainability > 0 {
		s = qm.AverageMaintainability * 0.7
	} else {
		s = 40
	}

	if st.HasDocs {
		s += 15
	}

	if st.LargestFileLines < 500 {
		s += 10
	} else if st.LargestFileLines > 2000 {
		s -= 15
	}

	if qm.FilesAnalyzed > 0 {
		ratio := float64(len(qm.ProblematicFiles)) / float64(qm.FilesAnalyzed)
		if ratio > 0.3 {
			s -= 20
		}
	}

	return round2(clamp(s))
}

// testCoverageScore estimates coverage from test presence and the test-file
// ratio. This is an estimate, not a measurement: without tests the score is
// 0, with tests it starts at 40 and is refined upward by ratio bands.
func (e *Engine) testCoverageScore(st *stats.ProjectStats) float64 {
	if !st.HasTests {
		return 0
	}

	s := 40.0

	testFiles := 0
	for ext, count := range st.FilesByExtension {
		if strings.Contains(ext, "test") {
			testFiles += count
		}
	}

	if st.TotalFiles > 0 {
		ratio := float64(testFiles) / float64(st.TotalFiles)
		switch {
		case ratio >= 0.3:
			s = 90
		case ratio >= 0.2:
			s = 75
		case ratio >= 0.1:
			s = 60
		}
	}

	return round2(s)
}

// mlFolderKeywords are folder-name fragments that signal ML work.
var mlFolderKeywords = []string{"model", "models", "data", "dataset", "train", "inference"}

// dataExtensions are file extensions that signal datasets or artifacts.
var dataExtensions = []string{".csv", ".json", ".pkl", ".h5", ".npy"}

// mlAIReadinessScore sums additive ML/AI signals, capped at 100.
func (e *Engine) mlAIReadinessScore(st *stats.ProjectStats) float64 {
	s := 0.0

	if st.HasLanguage("Python") {
		s += 20
	}
	if st.HasRequirements {
		s += 20
	}

	if hasMLFolder(st.FoldersByType) {
		s += 15
	}

	for _, ext := range dataExtensions {
		if _, ok := st.FilesByExtension[ext]; ok {
			s += 15
			break
		}
	}

	if _, ok := st.FilesByExtension[".ipynb"]; ok {
		s += 10
	}

	return round2(math.Min(100, s))
}

func hasMLFolder(foldersByType map[string][]string) bool {
	for _, folders := range foldersByType {
		for _, folder := range folders {
			lower := strings.ToLower(folder)
			for _, kw := range mlFolderKeywords {
				if strings.Contains(lower, kw) {
					return true
				}
			}
		}
	}
	return false
}

// GradeFor converts a numeric score to its letter grade.
func GradeFor(overall float64) string {
	switch {
	case overall >= 90:
		return "A"
	case overall >= 80:
		return "B"
	case overall >= 70:
		return "C"
	case overall >= 60:
		return "D"
	default:
		return "F"
	}
}

func clamp(s float64) float64 {
	return math.Min(100, math.Max(0, s))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
