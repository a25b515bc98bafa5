package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a 0-100 score.
// Example: "████████████░░░░░░░░ 62/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	styled := ScoreStyle(score).Render(bar)

	return fmt.Sprintf("%s %s", styled, StyleMuted.Render(fmt.Sprintf("%.1f/100", score)))
}

// Checkmark renders a present/absent feature indicator.
func Checkmark(present bool) string {
	if present {
		return StyleSuccess.Render("✓")
	}
	return StyleError.Render("✗")
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
