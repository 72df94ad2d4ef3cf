package search

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid user-supplied setting: a malformed depth,
// an uncompilable pattern or an unreadable configuration file.
type ConfigError struct {
	Field string // Flag or config key, e.g. "depth", "regex"
	Value string // Offending value as given by the user
	Err   error  // Underlying error (optional)
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("invalid %s %q", e.Field, e.Value))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PreconditionError reports a search root that is missing or not a directory.
type PreconditionError struct {
	Path   string
	Reason string
	Err    error
}

// Error implements the error interface for PreconditionError.
func (e *PreconditionError) Error() string {
	msg := fmt.Sprintf("search root %s %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error wrapping support.
func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// TraversalError reports an I/O failure on a single entry during the walk.
type TraversalError struct {
	Op   string // "stat", "read directory" or "resolve"
	Path string
	Err  error
}

// Error implements the error interface for TraversalError.
func (e *TraversalError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *TraversalError) Unwrap() error {
	return e.Err
}
