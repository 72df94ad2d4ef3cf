package search

import (
	"fmt"
	"time"

	"github.com/harrison/sift/internal/logger"
	"github.com/harrison/sift/internal/models"
	"github.com/spf13/afero"
)

// Logger is the diagnostics sink used during a search.
// *logger.ConsoleLogger and *logger.NoOpLogger implement it.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
	LogSummary(result *models.Result, duration time.Duration)
}

// Searcher runs the traverse-then-filter pipeline against a filesystem
type Searcher struct {
	fs     afero.Fs
	logger Logger
}

// NewSearcher creates a Searcher over fsys. A nil logger discards diagnostics.
func NewSearcher(fsys afero.Fs, log Logger) *Searcher {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Searcher{fs: fsys, logger: log}
}

// Run traverses opts.Path and filters the candidates by opts.Pattern.
// Any error aborts the search and no partial result is returned.
func (s *Searcher) Run(opts *Options) (*models.Result, error) {
	start := time.Now()
	s.logger.LogDebug(fmt.Sprintf("Searching %s (type=%s, depth=%s, regex=%q, keep-going=%t)",
		opts.Path, opts.Kind, opts.Depth, opts.Pattern, opts.KeepGoing))

	traverser := NewTraverser(s.fs, s.logger)
	traverser.SetKeepGoing(opts.KeepGoing)

	candidates, err := traverser.Traverse(opts.Path, opts.Kind, opts.Depth)
	if err != nil {
		return nil, err
	}

	matches, err := Filter(candidates, opts.Pattern)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		Matches:    matches,
		Candidates: len(candidates),
		Skipped:    traverser.Skipped(),
	}
	s.logger.LogSummary(result, time.Since(start))

	return result, nil
}
