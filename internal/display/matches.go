package display

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/sift/internal/models"
)

// ListMatches writes a 1-indexed listing of entries to out.
// Format: "  N. path" with directories suffixed by the path separator.
// An empty listing prints "No matches found".
func ListMatches(out io.Writer, entries []models.Entry, colorOutput bool) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No matches found")
		return
	}

	index := newColor(colorOutput, color.FgHiBlack)
	dir := newColor(colorOutput, color.FgBlue, color.Bold)

	// Right-align indices so paths line up past 9 matches
	width := len(fmt.Sprint(len(entries)))

	var b strings.Builder
	for i, entry := range entries {
		num := index.Sprintf("%*d.", width, i+1)
		b.WriteString("  ")
		b.WriteString(num)
		b.WriteString(" ")
		b.WriteString(FormatEntry(entry, dir))
		b.WriteString("\n")
	}

	fmt.Fprint(out, b.String())
}

// FormatEntry renders a single entry path, marking directories with a
// trailing separator in dirColor.
func FormatEntry(entry models.Entry, dirColor *color.Color) string {
	if !entry.IsDir() {
		return entry.Path
	}
	path := entry.Path
	if !strings.HasSuffix(path, string(filepath.Separator)) {
		path += string(filepath.Separator)
	}
	if dirColor == nil {
		return path
	}
	return dirColor.Sprint(path)
}
