package models

// Result represents the outcome of a single search invocation
type Result struct {
	Matches    []Entry // Entries passing both filters, in traversal order
	Candidates int     // Entries passing the kind filter before pattern matching
	Skipped    []error // Per-entry failures tolerated in keep-going mode
}
