package suggest

import (
	"strings"
	"testing"

	"github.com/repograde/repograde/internal/quality"
	"github.com/repograde/repograde/internal/score"
	"github.com/repograde/repograde/internal/stats"
)

// healthyInputs returns inputs that trigger no recommendations.
func healthyInputs() *Inputs {
	return &Inputs{
		Stats: &stats.ProjectStats{
			HasTests:         true,
			HasDocs:          true,
			HasConfig:        true,
			HasRequirements:  true,
			HasDockerfile:    true,
			HasCICD:          true,
			AverageFileSize:  120,
			LargestFileLines: 400,
			Languages:        []string{"Go"},
		},
		Metrics: &quality.QualityMetrics{
			AverageComplexity: 3.0,
			FilesAnalyzed:     10,
		},
		Scores: &score.EvaluationScores{
			MaintainabilityScore: 80,
			TestCoverageScore:    75,
			DocumentationScore:   100,
			MLAIReadinessScore:   60,
		},
	}
}

// --- HighComplexity ---

func TestHighComplexity_Critical(t *testing.T) {
	in := healthyInputs()
	in.Metrics.AverageComplexity = 18.3

	recs := HighComplexity(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	r := recs[0]
	if r.Priority != PriorityCritical {
		t.Errorf("expected Critical priority, got %s", r.Priority)
	}
	if r.Title != "Reduce Code Complexity" {
		t.Errorf("unexpected title %q", r.Title)
	}
	if !strings.Contains(r.Description, "18.3") {
		t.Errorf("expected description to embed the average, got %q", r.Description)
	}
}

func TestHighComplexity_High(t *testing.T) {
	in := healthyInputs()
	in.Metrics.AverageComplexity = 12

	recs := HighComplexity(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Priority != PriorityHigh {
		t.Errorf("expected High priority, got %s", recs[0].Priority)
	}
	if recs[0].Title != "Optimize Complex Functions" {
		t.Errorf("unexpected title %q", recs[0].Title)
	}
}

func TestHighComplexity_AtMostOneFires(t *testing.T) {
	// Above both thresholds only the critical variant fires.
	in := healthyInputs()
	in.Metrics.AverageComplexity = 50

	recs := HighComplexity(in)
	if len(recs) != 1 {
		t.Fatalf("expected exactly 1 recommendation, got %d", len(recs))
	}
	if recs[0].Priority != PriorityCritical {
		t.Errorf("expected Critical, got %s", recs[0].Priority)
	}
}

func TestHighComplexity_LowComplexitySilent(t *testing.T) {
	in := healthyInputs()
	in.Metrics.AverageComplexity = 10 // boundary, not strictly greater

	if recs := HighComplexity(in); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations at boundary, got %d", len(recs))
	}
}

// --- ProblematicFiles ---

func TestProblematicFiles_FiresAboveFive(t *testing.T) {
	in := healthyInputs()
	in.Metrics.ProblematicFiles = []string{"a.go", "b.go", "c.go", "d.go", "e.go", "f.go"}

	recs := ProblematicFiles(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Priority != PriorityHigh {
		t.Errorf("expected High priority, got %s", recs[0].Priority)
	}

	// Only the first three files are named.
	last := recs[0].ActionSteps[len(recs[0].ActionSteps)-1]
	if !strings.Contains(last, "a.go, b.go, c.go") {
		t.Errorf("expected first three files in focus step, got %q", last)
	}
	if strings.Contains(last, "d.go") {
		t.Errorf("expected at most three files in focus step, got %q", last)
	}
}

func TestProblematicFiles_ExactlyFiveSilent(t *testing.T) {
	in := healthyInputs()
	in.Metrics.ProblematicFiles = []string{"a", "b", "c", "d", "e"}

	if recs := ProblematicFiles(in); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations at 5 files, got %d", len(recs))
	}
}

// --- LowMaintainability ---

func TestLowMaintainability(t *testing.T) {
	in := healthyInputs()
	in.Scores.MaintainabilityScore = 49.9

	recs := LowMaintainability(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Priority != PriorityCritical {
		t.Errorf("expected Critical priority, got %s", recs[0].Priority)
	}

	in.Scores.MaintainabilityScore = 50
	if recs := LowMaintainability(in); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations at score 50, got %d", len(recs))
	}
}

// --- Missing infrastructure rules ---

func TestMissingConfig(t *testing.T) {
	in := healthyInputs()
	in.Stats.HasConfig = false

	recs := MissingConfig(in)
	if len(recs) != 1 || recs[0].Priority != PriorityMedium {
		t.Fatalf("expected 1 Medium recommendation, got %+v", recs)
	}
}

func TestMissingDocker(t *testing.T) {
	in := healthyInputs()
	in.Stats.HasDockerfile = false

	recs := MissingDocker(in)
	if len(recs) != 1 || recs[0].Priority != PriorityMedium {
		t.Fatalf("expected 1 Medium recommendation, got %+v", recs)
	}
}

func TestMissingCI(t *testing.T) {
	in := healthyInputs()
	in.Stats.HasCICD = false

	recs := MissingCI(in)
	if len(recs) != 1 || recs[0].Priority != PriorityHigh {
		t.Fatalf("expected 1 High recommendation, got %+v", recs)
	}
}

// --- File size rules ---

func TestLargeAverageFiles(t *testing.T) {
	in := healthyInputs()
	in.Stats.AverageFileSize = 750

	recs := LargeAverageFiles(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0].Description, "750") {
		t.Errorf("expected average size in description, got %q", recs[0].Description)
	}
}

func TestLargestFile_NamesTheFile(t *testing.T) {
	in := healthyInputs()
	in.Stats.LargestFile = "pkg/huge.go"
	in.Stats.LargestFileLines = 1500

	recs := LargestFile(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0].ActionSteps[0], "pkg/huge.go") {
		t.Errorf("expected largest file named in first action step, got %q", recs[0].ActionSteps[0])
	}
}

// --- Testing ---

func TestTesting_NoTests(t *testing.T) {
	in := healthyInputs()
	in.Stats.HasTests = false
	in.Scores.TestCoverageScore = 0

	recs := Testing(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Title != "Add Unit Tests" || recs[0].Priority != PriorityCritical {
		t.Errorf("unexpected recommendation %+v", recs[0])
	}
}

func TestTesting_LowCoverage(t *testing.T) {
	in := healthyInputs()
	in.Scores.TestCoverageScore = 40

	recs := Testing(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Title != "Improve Test Coverage" || recs[0].Priority != PriorityHigh {
		t.Errorf("unexpected recommendation %+v", recs[0])
	}
}

func TestTesting_GoodCoverageSilent(t *testing.T) {
	in := healthyInputs()
	in.Scores.TestCoverageScore = 60

	if recs := Testing(in); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations at coverage 60, got %d", len(recs))
	}
}

// --- MLReadiness ---

func TestMLReadiness_PythonOnly(t *testing.T) {
	in := healthyInputs()
	in.Scores.MLAIReadinessScore = 20
	in.Stats.Languages = []string{"Go"}

	if recs := MLReadiness(in); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations for non-Python project, got %d", len(recs))
	}

	in.Stats.Languages = []string{"Python"}
	recs := MLReadiness(in)
	if len(recs) != 1 || recs[0].Priority != PriorityLow {
		t.Fatalf("expected 1 Low recommendation for Python project, got %+v", recs)
	}
}

// --- Documentation ---

func TestDocumentation_Missing(t *testing.T) {
	in := healthyInputs()
	in.Stats.HasDocs = false

	recs := Documentation(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Title != "Add Project Documentation" || recs[0].Priority != PriorityHigh {
		t.Errorf("unexpected recommendation %+v", recs[0])
	}
}

func TestDocumentation_WeakScore(t *testing.T) {
	in := healthyInputs()
	in.Scores.DocumentationScore = 30 // docs exist but sub-score is weak

	recs := Documentation(in)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Title != "Enhance Documentation" || recs[0].Priority != PriorityMedium {
		t.Errorf("unexpected recommendation %+v", recs[0])
	}
}

func TestDocumentation_Silent(t *testing.T) {
	if recs := Documentation(healthyInputs()); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations, got %d", len(recs))
	}
}
