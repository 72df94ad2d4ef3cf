package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/sift/internal/logger"
	"github.com/harrison/sift/internal/models"
	"github.com/spf13/afero"
)

// Traverser walks a directory tree depth-first, collecting entries that pass
// the kind filter. A Traverser is not safe for concurrent use.
type Traverser struct {
	fs        afero.Fs
	logger    Logger
	keepGoing bool

	visited map[string]bool
	skipped []error
}

// NewTraverser creates a Traverser over fsys. A nil logger discards diagnostics.
func NewTraverser(fsys afero.Fs, log Logger) *Traverser {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Traverser{
		fs:     fsys,
		logger: log,
	}
}

// SetKeepGoing switches from abort-on-first-error to skip-and-continue
func (t *Traverser) SetKeepGoing(keepGoing bool) {
	t.keepGoing = keepGoing
}

// Skipped returns the failures tolerated by the last Traverse in keep-going mode
func (t *Traverser) Skipped() []error {
	return t.skipped
}

// Traverse enumerates root and returns every entry of the requested kind
// within depth, in visitation order: a directory's descendants precede the
// directory itself. Root must be an existing directory.
func (t *Traverser) Traverse(root string, kind models.Kind, depth models.Depth) ([]models.Entry, error) {
	info, err := t.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &PreconditionError{Path: root, Reason: "does not exist", Err: err}
		}
		return nil, &PreconditionError{Path: root, Reason: "cannot be accessed", Err: err}
	}
	if !info.IsDir() {
		return nil, &PreconditionError{Path: root, Reason: "is not a directory"}
	}

	t.visited = make(map[string]bool)
	t.skipped = nil

	if _, err := t.enter(root); err != nil {
		return nil, err
	}

	entries, err := t.walk(root, kind, depth)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (t *Traverser) walk(dir string, kind models.Kind, depth models.Depth) ([]models.Entry, error) {
	t.logger.LogTrace(fmt.Sprintf("Reading %s (depth budget %s)", dir, depth))

	children, err := afero.ReadDir(t.fs, dir)
	if err != nil {
		return nil, &TraversalError{Op: "read directory", Path: dir, Err: err}
	}

	entries := make([]models.Entry, 0, len(children))
	for _, child := range children {
		path := filepath.Join(dir, child.Name())

		// Stat follows symlinks so a link to a directory counts as one
		info, err := t.fs.Stat(path)
		if err != nil {
			if err := t.fail(&TraversalError{Op: "stat", Path: path, Err: err}); err != nil {
				return nil, err
			}
			continue
		}

		if info.IsDir() && depth.CanDescend() {
			sub, err := t.descend(path, kind, depth.Next())
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
		}

		if kind.Keeps(info.Mode()) {
			entries = append(entries, models.NewEntry(path, info.Mode()))
		}
	}

	return entries, nil
}

// descend walks a subdirectory unless it was already entered through another path.
// In keep-going mode a failing subdirectory yields no entries and a nil error.
func (t *Traverser) descend(dir string, kind models.Kind, depth models.Depth) ([]models.Entry, error) {
	first, err := t.enter(dir)
	if err != nil {
		return nil, t.fail(err)
	}
	if !first {
		t.logger.LogWarn(fmt.Sprintf("Not descending into %s: directory already visited (filesystem loop)", dir))
		return nil, nil
	}

	sub, err := t.walk(dir, kind, depth)
	if err != nil {
		return nil, t.fail(err)
	}
	return sub, nil
}

// enter records dir's canonical path and reports whether this is the first visit.
func (t *Traverser) enter(dir string) (bool, error) {
	canonical, err := canonicalPath(t.fs, dir)
	if err != nil {
		return false, &TraversalError{Op: "resolve", Path: dir, Err: err}
	}
	if t.visited[canonical] {
		return false, nil
	}
	t.visited[canonical] = true
	return true, nil
}

// fail returns err unchanged in abort mode. In keep-going mode it records
// err and returns nil; the caller reports the recorded failures.
func (t *Traverser) fail(err error) error {
	if !t.keepGoing {
		return err
	}
	var terr *TraversalError
	if !errors.As(err, &terr) {
		return err
	}
	t.logger.LogDebug(fmt.Sprintf("Skipping %s: %v", terr.Path, terr.Err))
	t.skipped = append(t.skipped, err)
	return nil
}

// maxLinkHops bounds the symlinks followed while resolving one path
const maxLinkHops = 255

// canonicalPath returns the absolute path of path with every symlink
// resolved. Filesystems that cannot read links (afero.MemMapFs) have none,
// so the cleaned absolute path is canonical there.
func canonicalPath(fsys afero.Fs, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return abs, nil
	}
	reader, ok := fsys.(afero.LinkReader)
	if !ok {
		return abs, nil
	}
	return resolveLinks(lstater, reader, abs)
}

// resolveLinks walks the clean absolute path one component at a time,
// splicing in link targets through the afero link interfaces.
func resolveLinks(lstater afero.Lstater, reader afero.LinkReader, path string) (string, error) {
	const sep = string(filepath.Separator)

	vol := filepath.VolumeName(path)
	resolved := vol + sep
	rest := path[len(vol):]
	hops := 0

	for {
		rest = strings.TrimLeft(rest, sep)
		if rest == "" {
			return resolved, nil
		}

		part := rest
		rest = ""
		if i := strings.Index(part, sep); i >= 0 {
			part, rest = part[:i], part[i:]
		}

		switch part {
		case ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, part)
		info, lstatCalled, err := lstater.LstatIfPossible(next)
		if err != nil {
			return "", err
		}
		if !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", fmt.Errorf("%s: too many levels of symbolic links", path)
		}

		target, err := reader.ReadlinkIfPossible(next)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(target) {
			tvol := filepath.VolumeName(target)
			resolved = tvol + sep
			rest = target[len(tvol):] + sep + rest
		} else {
			rest = target + sep + rest
		}
	}
}
