package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/sift/internal/models"
)

// colorScheme defines consistent colors for summary metrics.
// Green: matches, Red: skipped errors, Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	label   *color.Color
	value   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric as "label: value" with a cyan label.
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// formatColorizedSearchMetrics formats the search summary with color coding.
// Format: "matches: N, candidates: N, skipped: N"
// The skipped metric is only shown (in red) when errors were tolerated.
func formatColorizedSearchMetrics(result *models.Result) string {
	scheme := newColorScheme()
	var parts []string

	matches := fmt.Sprintf("%s: %s",
		scheme.success.Sprint("matches"),
		scheme.value.Sprintf("%d", len(result.Matches)))
	parts = append(parts, matches)

	parts = append(parts, formatColorizedMetric("candidates", result.Candidates, scheme))

	if len(result.Skipped) > 0 {
		skipped := fmt.Sprintf("%s: %s",
			scheme.fail.Sprint("skipped"),
			scheme.fail.Sprintf("%d", len(result.Skipped)))
		parts = append(parts, skipped)
	} else {
		parts = append(parts, formatColorizedMetric("skipped", 0, scheme))
	}

	return strings.Join(parts, ", ")
}
