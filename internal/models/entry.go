package models

import (
	"os"
	"path/filepath"
	"strconv"
)

// Kind selects which entry types a search keeps
type Kind int

const (
	// KindBoth keeps files and directories (the zero value)
	KindBoth Kind = iota
	// KindFile keeps regular files only
	KindFile
	// KindDirectory keeps directories only
	KindDirectory
)

// ParseKind maps a type flag value to a Kind.
// f/file, d/directory and b/both are recognized; anything else resolves to KindBoth.
func ParseKind(s string) Kind {
	switch s {
	case "f", "file":
		return KindFile
	case "d", "directory":
		return KindDirectory
	default:
		return KindBoth
	}
}

// String returns the long flag spelling of the kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "both"
	}
}

// Keeps reports whether an entry with the given mode passes the kind filter.
// Entries that are neither regular files nor directories never pass.
func (k Kind) Keeps(mode os.FileMode) bool {
	switch k {
	case KindFile:
		return mode.IsRegular()
	case KindDirectory:
		return mode.IsDir()
	default:
		return mode.IsRegular() || mode.IsDir()
	}
}

// Depth is an optional recursion budget. The zero value is unbounded.
type Depth struct {
	levels  uint64
	bounded bool
}

// Unbounded returns a Depth with no recursion limit
func Unbounded() Depth {
	return Depth{}
}

// Limit returns a Depth allowing n levels of recursion below the root
func Limit(n uint64) Depth {
	return Depth{levels: n, bounded: true}
}

// Bounded reports whether a limit is set
func (d Depth) Bounded() bool {
	return d.bounded
}

// CanDescend reports whether a subdirectory may be entered from this level
func (d Depth) CanDescend() bool {
	return !d.bounded || d.levels > 0
}

// Next returns the budget for one level further down.
// Unbounded stays unbounded; a bounded budget clamps at zero.
func (d Depth) Next() Depth {
	if !d.bounded || d.levels == 0 {
		return d
	}
	return Depth{levels: d.levels - 1, bounded: true}
}

// String returns the budget as a decimal, or "unbounded"
func (d Depth) String() string {
	if !d.bounded {
		return "unbounded"
	}
	return strconv.FormatUint(d.levels, 10)
}

// EntryKind tags a collected entry
type EntryKind int

const (
	EntryFile EntryKind = iota
	EntryDirectory
)

// String returns "file" or "directory"
func (k EntryKind) String() string {
	if k == EntryDirectory {
		return "directory"
	}
	return "file"
}

// Entry is a filesystem object collected during traversal
type Entry struct {
	Path string    // Path as visited, joined onto the search root
	Kind EntryKind // Resolved from metadata at visitation time
}

// NewEntry builds an Entry for path from its (symlink-following) mode
func NewEntry(path string, mode os.FileMode) Entry {
	kind := EntryFile
	if mode.IsDir() {
		kind = EntryDirectory
	}
	return Entry{Path: path, Kind: kind}
}

// IsDir returns true if the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == EntryDirectory
}

// Name returns the basename used for pattern matching
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}
