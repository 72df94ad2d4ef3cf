package display

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/sift/internal/models"
)

func TestListMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	ListMatches(&buf, nil, false)

	if buf.String() != "No matches found\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestListMatches_Plain(t *testing.T) {
	sep := string(filepath.Separator)
	entries := []models.Entry{
		{Path: filepath.Join("x", "a.txt"), Kind: models.EntryFile},
		{Path: filepath.Join("x", "sub"), Kind: models.EntryDirectory},
	}

	var buf bytes.Buffer
	ListMatches(&buf, entries, false)

	want := "  1. " + filepath.Join("x", "a.txt") + "\n" +
		"  2. " + filepath.Join("x", "sub") + sep + "\n"
	if buf.String() != want {
		t.Errorf("ListMatches() =\n%q\nwant\n%q", buf.String(), want)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected no ANSI codes with color disabled")
	}
}

func TestListMatches_AlignsIndices(t *testing.T) {
	entries := make([]models.Entry, 12)
	for i := range entries {
		entries[i] = models.Entry{Path: "f", Kind: models.EntryFile}
	}

	var buf bytes.Buffer
	ListMatches(&buf, entries, false)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	if lines[0] != "   1. f" {
		t.Errorf("first line = %q, want %q", lines[0], "   1. f")
	}
	if lines[11] != "  12. f" {
		t.Errorf("last line = %q, want %q", lines[11], "  12. f")
	}
}

func TestListMatches_Color(t *testing.T) {
	entries := []models.Entry{
		{Path: "a.txt", Kind: models.EntryFile},
		{Path: "sub", Kind: models.EntryDirectory},
	}

	var buf bytes.Buffer
	ListMatches(&buf, entries, true)

	output := buf.String()
	if !strings.Contains(output, "\x1b[") {
		t.Error("expected ANSI codes with color enabled")
	}
	if !strings.Contains(output, "sub"+string(filepath.Separator)) {
		t.Errorf("expected directory with trailing separator, got %q", output)
	}
}

func TestFormatEntry(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name  string
		entry models.Entry
		want  string
	}{
		{"file", models.Entry{Path: "a.txt", Kind: models.EntryFile}, "a.txt"},
		{"directory", models.Entry{Path: "sub", Kind: models.EntryDirectory}, "sub" + sep},
		{"directory already suffixed", models.Entry{Path: "sub" + sep, Kind: models.EntryDirectory}, "sub" + sep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEntry(tt.entry, nil); got != tt.want {
				t.Errorf("FormatEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}
