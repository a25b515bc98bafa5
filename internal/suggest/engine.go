package suggest

import (
	"log/slog"
	"sort"
)

// Engine runs all registered rules against the evaluation inputs and
// collects the resulting recommendations.
type Engine struct {
	log   *slog.Logger
	rules []Rule
}

// NewEngine creates a recommendation engine with all built-in rules
// registered. Rule order is fixed so that output is deterministic within
// each priority band.
func NewEngine(log *slog.Logger) *Engine {
	return &Engine{
		log: log,
		rules: []Rule{
			HighComplexity,
			ProblematicFiles,
			LowMaintainability,
			MissingConfig,
			MissingDocker,
			MissingCI,
			LargeAverageFiles,
			LargestFile,
			Testing,
			MLReadiness,
			Documentation,
		},
	}
}

// Generate runs every rule in registration order and returns the collected
// recommendations sorted by priority, Critical first. The sort is stable,
// so recommendations of equal priority keep rule order.
func (e *Engine) Generate(in *Inputs) []Recommendation {
	e.log.Info("generating improvement recommendations")

	var all []Recommendation
	for _, rule := range e.rules {
		all = append(all, rule(in)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Priority.Rank() < all[j].Priority.Rank()
	})

	e.log.Info("recommendations generated", "count", len(all))
	return all
}
