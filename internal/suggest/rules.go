package suggest

import (
	"fmt"
	"strings"
)

// HighComplexity flags a high average cyclomatic complexity. Above 15 the
// recommendation is critical; above 10 it downgrades to a softer high
// priority suggestion. At most one of the two fires.
func HighComplexity(in *Inputs) []Recommendation {
	var recs []Recommendation

	if in.Metrics.AverageComplexity > 15 {
		recs = append(recs, Recommendation{
			Title: "Reduce Code Complexity",
			Description: fmt.Sprintf(
				"Average cyclomatic complexity is %.1f, which is high. "+
					"Complex code is harder to understand and maintain.",
				in.Metrics.AverageComplexity,
			),
			Priority: PriorityCritical,
			Category: "Code Quality",
			Impact:   "High - improves maintainability and reduces bugs",
			Effort:   "Medium - requires refactoring",
			ActionSteps: []string{
				"Identify functions with complexity > 15",
				"Break down complex functions into smaller ones",
				"Use early returns to reduce nesting",
				"Extract conditional logic into separate functions",
				"Run complexity analysis: radon cc -a .",
			},
		})
	} else if in.Metrics.AverageComplexity > 10 {
		recs = append(recs, Recommendation{
			Title: "Optimize Complex Functions",
			Description: fmt.Sprintf(
				"Average complexity is %.1f. Consider simplifying the most complex functions.",
				in.Metrics.AverageComplexity,
			),
			Priority: PriorityHigh,
			Category: "Code Quality",
			Impact:   "Medium - improves code readability",
			Effort:   "Low to Medium",
			ActionSteps: []string{
				"Review functions with complexity > 10",
				"Refactor complex conditional statements",
				"Consider using design patterns (Strategy, State)",
				"Add inline comments for complex logic",
			},
		})
	}

	return recs
}

// ProblematicFiles fires when more than 5 files were flagged for quality
// issues. The first three flagged paths are named in the action steps.
func ProblematicFiles(in *Inputs) []Recommendation {
	n := len(in.Metrics.ProblematicFiles)
	if n <= 5 {
		return nil
	}

	focus := in.Metrics.ProblematicFiles
	if len(focus) > 3 {
		focus = focus[:3]
	}

	return []Recommendation{{
		Title: "Address Problematic Files",
		Description: fmt.Sprintf(
			"Found %d files with quality issues. These files need refactoring.", n,
		),
		Priority: PriorityHigh,
		Category: "Code Quality",
		Impact:   "High - prevents technical debt accumulation",
		Effort:   "Medium to High",
		ActionSteps: []string{
			"Review files flagged with quality issues",
			"Prioritize files by complexity score",
			"Refactor or split large files",
			"Add unit tests before refactoring",
			"Focus on: " + strings.Join(focus, ", "),
		},
	}}
}

// LowMaintainability fires when the maintainability category score is
// below 50.
func LowMaintainability(in *Inputs) []Recommendation {
	if in.Scores.MaintainabilityScore >= 50 {
		return nil
	}

	return []Recommendation{{
		Title:       "Improve Code Maintainability",
		Description: "Maintainability index is low. Code may be difficult to update and extend.",
		Priority:    PriorityCritical,
		Category:    "Maintainability",
		Impact:      "High - reduces long-term maintenance costs",
		Effort:      "High - requires systematic refactoring",
		ActionSteps: []string{
			"Add comprehensive docstrings and comments",
			"Reduce code duplication (DRY principle)",
			"Improve naming conventions",
			"Simplify complex expressions",
			"Run: radon mi -s .",
		},
	}}
}

// MissingConfig suggests externalizing settings when no configuration
// files were detected.
func MissingConfig(in *Inputs) []Recommendation {
	if in.Stats.HasConfig {
		return nil
	}

	return []Recommendation{{
		Title:       "Add Configuration Management",
		Description: "No configuration files detected. Externalize settings for flexibility.",
		Priority:    PriorityMedium,
		Category:    "Architecture",
		Impact:      "Medium - improves deployment flexibility",
		Effort:      "Low",
		ActionSteps: []string{
			"Create config.yaml or .env file",
			"Move hardcoded values to config",
			"Use environment variables for secrets",
			"Document configuration options",
		},
	}}
}

// MissingDocker suggests containerization when no Dockerfile was found.
func MissingDocker(in *Inputs) []Recommendation {
	if in.Stats.HasDockerfile {
		return nil
	}

	return []Recommendation{{
		Title:       "Containerize Application",
		Description: "Add Docker support for consistent deployment environments.",
		Priority:    PriorityMedium,
		Category:    "Architecture",
		Impact:      "High - improves deployment consistency",
		Effort:      "Low to Medium",
		ActionSteps: []string{
			"Create Dockerfile",
			"Add docker-compose.yml for local development",
			"Define environment variables",
			"Document Docker commands in README",
		},
	}}
}

// MissingCI suggests pipeline automation when no CI configuration was
// found.
func MissingCI(in *Inputs) []Recommendation {
	if in.Stats.HasCICD {
		return nil
	}

	return []Recommendation{{
		Title:       "Set Up CI/CD Pipeline",
		Description: "Automate testing and deployment with CI/CD.",
		Priority:    PriorityHigh,
		Category:    "Architecture",
		Impact:      "High - improves code quality and deployment speed",
		Effort:      "Medium",
		ActionSteps: []string{
			"Set up GitHub Actions or GitLab CI",
			"Add automated testing on pull requests",
			"Configure linting and type checking",
			"Add deployment automation",
			"Example: .github/workflows/ci.yml",
		},
	}}
}

// LargeAverageFiles fires when the average file size exceeds 500 lines.
func LargeAverageFiles(in *Inputs) []Recommendation {
	if in.Stats.AverageFileSize <= 500 {
		return nil
	}

	return []Recommendation{{
		Title: "Refactor Large Files",
		Description: fmt.Sprintf(
			"Average file size is %.0f lines. Consider breaking down large modules.",
			in.Stats.AverageFileSize,
		),
		Priority: PriorityMedium,
		Category: "Architecture",
		Impact:   "Medium - improves code organization",
		Effort:   "Medium",
		ActionSteps: []string{
			"Identify files > 500 lines",
			"Split into logical modules",
			"Use clear module boundaries",
			"Apply Single Responsibility Principle",
		},
	}}
}

// LargestFile fires when the single largest file exceeds 1000 lines and
// names that file in the action steps.
func LargestFile(in *Inputs) []Recommendation {
	if in.Stats.LargestFileLines <= 1000 {
		return nil
	}

	return []Recommendation{{
		Title: "Break Down Large Files",
		Description: fmt.Sprintf(
			"Largest file has %d lines. Large files are harder to maintain.",
			in.Stats.LargestFileLines,
		),
		Priority: PriorityHigh,
		Category: "Maintainability",
		Impact:   "High - improves code navigability",
		Effort:   "Medium",
		ActionSteps: []string{
			"Refactor: " + in.Stats.LargestFile,
			"Extract related functions into modules",
			"Consider using classes for grouping",
			"Maintain clear file boundaries",
		},
	}}
}

// Testing emits the critical missing-tests recommendation, or when tests
// exist but the estimated coverage score is below 60, a softer coverage
// recommendation. At most one of the two fires.
func Testing(in *Inputs) []Recommendation {
	if !in.Stats.HasTests {
		return []Recommendation{{
			Title:       "Add Unit Tests",
			Description: "No tests detected. Testing is critical for code reliability.",
			Priority:    PriorityCritical,
			Category:    "Testing",
			Impact:      "Very High - prevents bugs and regressions",
			Effort:      "High - requires test implementation",
			ActionSteps: []string{
				"Set up testing framework (pytest, unittest, jest)",
				"Start with critical business logic",
				"Aim for 70%+ code coverage",
				"Add tests for edge cases",
				"Integrate tests into CI pipeline",
			},
		}}
	}

	if in.Scores.TestCoverageScore < 60 {
		return []Recommendation{{
			Title: "Improve Test Coverage",
			Description: fmt.Sprintf(
				"Estimated test coverage is %.0f%%. Increase coverage for better reliability.",
				in.Scores.TestCoverageScore,
			),
			Priority: PriorityHigh,
			Category: "Testing",
			Impact:   "High - improves code confidence",
			Effort:   "Medium to High",
			ActionSteps: []string{
				"Measure actual coverage: pytest --cov",
				"Identify untested modules",
				"Add tests for critical paths",
				"Target 80%+ coverage",
				"Add integration tests",
			},
		}}
	}

	return nil
}

// MLReadiness fires only for Python projects with a low ML/AI readiness
// score. Non-Python projects are never nudged toward ML infrastructure.
func MLReadiness(in *Inputs) []Recommendation {
	if in.Scores.MLAIReadinessScore >= 50 || !in.Stats.HasLanguage("Python") {
		return nil
	}

	return []Recommendation{{
		Title:       "Enhance ML/AI Capabilities",
		Description: "Project shows potential for ML/AI but lacks standard ML infrastructure.",
		Priority:    PriorityLow,
		Category:    "ML/AI",
		Impact:      "Variable - depends on project goals",
		Effort:      "Medium to High",
		ActionSteps: []string{
			"Add ML framework dependencies (if needed)",
			"Create data/ and models/ directories",
			"Add experiment tracking (MLflow, Weights & Biases)",
			"Document model architecture and training",
			"Version control datasets and models",
		},
	}}
}

// Documentation emits the missing-docs recommendation, or when docs exist
// but the documentation sub-score is below 70, a softer enhancement
// recommendation. At most one of the two fires.
func Documentation(in *Inputs) []Recommendation {
	if !in.Stats.HasDocs {
		return []Recommendation{{
			Title:       "Add Project Documentation",
			Description: "No documentation found. Documentation is essential for collaboration.",
			Priority:    PriorityHigh,
			Category:    "Documentation",
			Impact:      "High - improves onboarding and collaboration",
			Effort:      "Low to Medium",
			ActionSteps: []string{
				"Create comprehensive README.md",
				"Document installation steps",
				"Add usage examples",
				"Document API/module interfaces",
				"Add contributing guidelines",
				"Consider adding docs/ folder with detailed docs",
			},
		}}
	}

	if in.Scores.DocumentationScore < 70 {
		return []Recommendation{{
			Title:       "Enhance Documentation",
			Description: "Documentation exists but could be improved.",
			Priority:    PriorityMedium,
			Category:    "Documentation",
			Impact:      "Medium - improves code understanding",
			Effort:      "Low",
			ActionSteps: []string{
				"Add inline code comments for complex logic",
				"Write docstrings for all public functions",
				"Add architecture diagrams",
				"Document design decisions",
				"Keep README up to date",
			},
		}}
	}

	return nil
}
