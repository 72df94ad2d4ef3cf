// Package display renders sift's user-facing output.
//
// # Match listing
//
// ListMatches writes a 1-indexed listing of search results. Directories end
// with a path separator and, when color is enabled, are shown in bold blue:
//
//	display.ListMatches(os.Stdout, result.Matches, colorOutput)
//
// # Warnings
//
// Warning renders a titled warning with optional message, file list and
// suggestion. SkippedWarning builds one from the errors tolerated in
// keep-going mode:
//
//	if len(result.Skipped) > 0 {
//	    display.SkippedWarning(result.Skipped).Display(os.Stderr, colorOutput)
//	}
//
// # Color
//
// ColorEnabled resolves a color mode ("auto", "always", "never") against an
// output file. "auto" enables color only for terminals.
//
// All functions accept io.Writer interfaces for testability.
package display
