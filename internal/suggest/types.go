// Package suggest provides the recommendation engine and rule types.
package suggest

import (
	"github.com/repograde/repograde/internal/quality"
	"github.com/repograde/repograde/internal/score"
	"github.com/repograde/repograde/internal/stats"
)

// Priority orders recommendations: Critical > High > Medium > Low.
// It serializes as the literal label.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// priorityRank maps each priority to its sort rank.
var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Rank returns the sort rank of the priority (Critical=0 .. Low=3).
// Unknown priorities sort last.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// Recommendation is a single actionable improvement suggestion. It is
// created transiently by the engine and never persisted by the core.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	Impact      string   `json:"impact"`
	Effort      string   `json:"effort"`
	ActionSteps []string `json:"action_steps"`
}

// Inputs bundles the three upstream snapshots rules inspect. Rules treat
// all three as read-only.
type Inputs struct {
	Stats   *stats.ProjectStats
	Metrics *quality.QualityMetrics
	Scores  *score.EvaluationScores
}

// Rule examines the inputs and produces zero or more recommendations.
// Rules must be pure: same inputs, same output, no side effects.
type Rule func(in *Inputs) []Recommendation
