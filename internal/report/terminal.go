package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/repograde/repograde/internal/output"
	"github.com/repograde/repograde/internal/quality"
	"github.com/repograde/repograde/internal/score"
	"github.com/repograde/repograde/internal/stats"
	"github.com/repograde/repograde/internal/suggest"
)

// distributionOrder fixes the render order of complexity buckets.
var distributionOrder = []string{"simple", "moderate", "complex", "very_complex"}

// Renderer writes the styled terminal report.
type Renderer struct {
	w       io.Writer
	version string
}

// NewRenderer creates a terminal report renderer writing to w.
func NewRenderer(w io.Writer, version string) *Renderer {
	return &Renderer{w: w, version: version}
}

// Render writes the full evaluation report.
func (r *Renderer) Render(repo string, st *stats.ProjectStats, qm *quality.QualityMetrics, sc *score.EvaluationScores, recs []suggest.Recommendation) {
	r.header(repo)
	r.overview(st, qm)
	r.scores(sc)
	r.qualityDetails(qm)
	r.features(st)
	r.recommendations(recs)
	r.footer()
}

func (r *Renderer) header(repo string) {
	body := fmt.Sprintf("%s\n%s\n%s",
		output.StyleHeader.Render("Repograde Evaluation Report"),
		output.StyleMuted.Render("Repository: "+repo),
		output.StyleMuted.Render("Generated:  "+time.Now().Format("2006-01-02 15:04:05")),
	)
	fmt.Fprintln(r.w, output.StylePanel.Render(body))
}

func (r *Renderer) overview(st *stats.ProjectStats, qm *quality.QualityMetrics) {
	fmt.Fprintln(r.w, output.Section("Project Overview"))

	t := output.NewTable("Metric", "Value")
	t.AlignColumn(1, output.AlignRight)
	t.AddRow("Total Files", fmt.Sprintf("%d", st.TotalFiles))
	t.AddRow("Total Lines", fmt.Sprintf("%d", st.TotalLines))
	t.AddRow("Code Lines", fmt.Sprintf("%d", st.TotalCodeLines))
	t.AddRow("Languages", strings.Join(st.Languages, ", "))
	t.AddRow("Files Analyzed", fmt.Sprintf("%d", qm.FilesAnalyzed))
	fmt.Fprintln(r.w, indent(t.Render()))
}

func (r *Renderer) scores(sc *score.EvaluationScores) {
	fmt.Fprintln(r.w, output.Section("Evaluation Scores"))

	overall := fmt.Sprintf("%s  %s",
		output.ScoreStyle(sc.OverallScore).Render(fmt.Sprintf("%.2f/100", sc.OverallScore)),
		output.GradeStyle(sc.Grade).Render("Grade: "+sc.Grade),
	)
	fmt.Fprintln(r.w, indent(output.StylePanel.Render(overall)))
	fmt.Fprintln(r.w)

	categories := []struct {
		name  string
		value float64
	}{
		{"Code Quality", sc.CodeQualityScore},
		{"Architecture", sc.ArchitectureScore},
		{"Maintainability", sc.MaintainabilityScore},
		{"Test Coverage", sc.TestCoverageScore},
		{"ML/AI Readiness", sc.MLAIReadinessScore},
	}

	for _, c := range categories {
		fmt.Fprintf(r.w, "   %-18s %s\n", c.name, output.ScoreBar(c.value, 20))
	}
}

func (r *Renderer) qualityDetails(qm *quality.QualityMetrics) {
	fmt.Fprintln(r.w, output.Section("Code Quality Analysis"))

	t := output.NewTable("Metric", "Value")
	t.AlignColumn(1, output.AlignRight)
	t.AddRow("Average Complexity", fmt.Sprintf("%.2f", qm.AverageComplexity))
	t.AddRow("Max Complexity", fmt.Sprintf("%.2f", qm.MaxComplexity))
	t.AddRow("Average Maintainability", fmt.Sprintf("%.2f", qm.AverageMaintainability))
	t.AddRow("Total Functions", fmt.Sprintf("%d", qm.TotalFunctions))
	t.AddRow("Complex Functions (>10)", fmt.Sprintf("%d", qm.ComplexFunctions))
	t.AddRow("Very Complex Functions (>20)", fmt.Sprintf("%d", qm.VeryComplexFunctions))
	fmt.Fprintln(r.w, indent(t.Render()))

	total := 0
	for _, n := range qm.QualityDistribution {
		total += n
	}
	if total == 0 {
		return
	}

	fmt.Fprintln(r.w, "   "+output.StyleHeader.Render("Complexity Distribution"))
	dist := output.NewTable("Level", "Count", "Percentage")
	dist.AlignColumn(1, output.AlignRight)
	dist.AlignColumn(2, output.AlignRight)
	for _, level := range distributionOrder {
		count := qm.QualityDistribution[level]
		pct := float64(count) / float64(total) * 100
		dist.AddRow(levelLabel(level), fmt.Sprintf("%d", count), fmt.Sprintf("%.1f%%", pct))
	}
	fmt.Fprintln(r.w, indent(dist.Render()))
}

func (r *Renderer) features(st *stats.ProjectStats) {
	fmt.Fprintln(r.w, output.Section("Project Features"))

	features := []struct {
		name    string
		present bool
	}{
		{"Tests", st.HasTests},
		{"Documentation", st.HasDocs},
		{"Configuration Files", st.HasConfig},
		{"Requirements/Dependencies", st.HasRequirements},
		{"Docker Support", st.HasDockerfile},
		{"CI/CD Pipeline", st.HasCICD},
	}

	for _, f := range features {
		fmt.Fprintf(r.w, "   %s %s\n", output.Checkmark(f.present), f.name)
	}
}

func (r *Renderer) recommendations(recs []suggest.Recommendation) {
	fmt.Fprintln(r.w, output.Section("Improvement Recommendations"))

	if len(recs) == 0 {
		fmt.Fprintln(r.w, "   "+output.StyleMuted.Render("No recommendations. Excellent work!"))
		return
	}

	byPriority := make(map[suggest.Priority][]suggest.Recommendation)
	for _, rec := range recs {
		byPriority[rec.Priority] = append(byPriority[rec.Priority], rec)
	}

	priorities := make([]suggest.Priority, 0, len(byPriority))
	for p := range byPriority {
		priorities = append(priorities, p)
	}
	sort.Slice(priorities, func(i, j int) bool {
		return priorities[i].Rank() < priorities[j].Rank()
	})

	for _, p := range priorities {
		label := string(p) + " Priority"
		fmt.Fprintln(r.w, "\n   "+output.PriorityStyle(string(p)).Render(label))

		for i, rec := range byPriority[p] {
			fmt.Fprintf(r.w, "\n   %d. %s %s\n", i+1,
				output.StyleBold.Render(rec.Title),
				output.StyleMuted.Render("["+rec.Category+"]"))
			fmt.Fprintln(r.w, "      "+output.StyleMuted.Render(rec.Description))
			fmt.Fprintf(r.w, "      Impact: %s | Effort: %s\n", rec.Impact, rec.Effort)

			if len(rec.ActionSteps) > 0 {
				fmt.Fprintln(r.w, "      "+output.StyleHeader.Render("Action Steps:"))
				steps := rec.ActionSteps
				if len(steps) > 3 {
					steps = steps[:3]
				}
				for _, step := range steps {
					fmt.Fprintln(r.w, "      - "+step)
				}
			}
		}
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) footer() {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, " "+output.StyleMuted.Render(strings.Repeat("─", 66)))
	fmt.Fprintln(r.w, " "+output.StyleMuted.Render("repograde "+r.version))
}

// levelLabel renders a distribution bucket key as a display label.
func levelLabel(level string) string {
	label := strings.ReplaceAll(level, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// indent prefixes every non-empty line with three spaces.
func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "   " + line
		}
	}
	return strings.Join(lines, "\n")
}
