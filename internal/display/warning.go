package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/sift/internal/search"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when colorOutput is set
func (w Warning) Display(out io.Writer, colorOutput bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, newColor(colorOutput, color.FgYellow).Sprint(b.String()))
}

// SkippedWarning builds a warning listing the entries skipped in keep-going mode
func SkippedWarning(skipped []error) Warning {
	files := make([]string, 0, len(skipped))
	for _, err := range skipped {
		var travErr *search.TraversalError
		if errors.As(err, &travErr) {
			files = append(files, fmt.Sprintf("%s (%s: %v)", travErr.Path, travErr.Op, travErr.Err))
			continue
		}
		files = append(files, err.Error())
	}

	noun := "entries"
	if len(skipped) == 1 {
		noun = "entry"
	}

	return Warning{
		Title:      fmt.Sprintf("Skipped %d unreadable %s", len(skipped), noun),
		Message:    "Results below these paths are incomplete",
		Files:      files,
		Suggestion: "Check permissions, or drop --keep-going to stop at the first error",
	}
}
