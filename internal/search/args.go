package search

import (
	"errors"
	"strconv"
	"strings"

	"github.com/harrison/sift/internal/models"
	"github.com/spf13/pflag"
)

// Options configures a single search
type Options struct {
	// Path is the root directory to search (default ".")
	Path string
	// Kind restricts which entry types are kept
	Kind models.Kind
	// Depth bounds recursion below Path; the zero value is unbounded
	Depth models.Depth
	// Pattern is a regular expression matched against basenames; empty matches all
	Pattern string
	// KeepGoing records per-entry I/O failures and continues instead of aborting
	KeepGoing bool

	// set holds the long names of flags given explicitly by ParseArgs
	set map[string]bool
}

// Changed reports whether the flag with the given long name was set on the
// command line parsed into these Options.
func (o *Options) Changed(name string) bool {
	return o.set[name]
}

// DefaultOptions returns Options with the documented defaults
func DefaultOptions() *Options {
	return &Options{
		Path:  ".",
		Kind:  models.KindBoth,
		Depth: models.Unbounded(),
	}
}

// Search flag names, long form. Short aliases are the first letter.
const (
	FlagType  = "type"
	FlagPath  = "path"
	FlagRegex = "regex"
	FlagDepth = "depth"
)

// kindValue is a permissive pflag.Value: unknown kinds resolve to both.
type kindValue struct {
	kind *models.Kind
}

func (v *kindValue) String() string {
	if v.kind == nil {
		return models.KindBoth.String()
	}
	return v.kind.String()
}

func (v *kindValue) Set(s string) error {
	*v.kind = models.ParseKind(s)
	return nil
}

func (v *kindValue) Type() string { return "kind" }

// depthValue parses an unsigned recursion budget. The typed error is kept
// because pflag flattens Set errors into a plain string.
type depthValue struct {
	depth *models.Depth
	err   error
}

func (v *depthValue) String() string {
	if v.depth == nil || !v.depth.Bounded() {
		return ""
	}
	return v.depth.String()
}

func (v *depthValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		v.err = &ConfigError{Field: FlagDepth, Value: s, Err: errors.Unwrap(err)}
		return v.err
	}
	*v.depth = models.Limit(n)
	return nil
}

func (v *depthValue) Type() string { return "uint" }

// BindFlags registers the search flags on fs, writing into opts.
// Unknown flags are tolerated so newer scripts keep working with older builds.
func BindFlags(fs *pflag.FlagSet, opts *Options) {
	fs.VarP(&kindValue{kind: &opts.Kind}, FlagType, "t", "entry type: f|file, d|directory, b|both")
	fs.StringVarP(&opts.Path, FlagPath, "p", opts.Path, "root directory to search")
	fs.StringVarP(&opts.Pattern, FlagRegex, "r", opts.Pattern, "regular expression matched against basenames")
	fs.VarP(&depthValue{depth: &opts.Depth}, FlagDepth, "d", "levels of recursion below the root (unbounded when unset)")
	fs.BoolVar(&opts.KeepGoing, "keep-going", opts.KeepGoing, "skip unreadable entries instead of aborting")
	fs.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
}

// NewFlagSet returns a FlagSet named name with the search flags bound to opts
func NewFlagSet(name string, opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	BindFlags(fs, opts)
	return fs
}

// ParseArgs parses a process argument vector (without the program name)
// into a fresh Options. Flags from extra are parsed in the same pass, so
// callers can add their own flags to the grammar; search flags take
// precedence over extra flags of the same name.
func ParseArgs(args []string, extra ...*pflag.FlagSet) (*Options, error) {
	opts := DefaultOptions()
	fs := NewFlagSet("sift", opts)
	for _, other := range extra {
		fs.AddFlagSet(other)
	}
	if err := Parse(fs, args); err != nil {
		return nil, err
	}
	Finalize(opts)

	opts.set = make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// Parse normalizes args and parses them with fs.
// A malformed depth is returned as a *ConfigError.
func Parse(fs *pflag.FlagSet, args []string) error {
	err := fs.Parse(NormalizeArgs(fs, args))
	if err == nil {
		return nil
	}
	if errors.Is(err, pflag.ErrHelp) {
		return err
	}
	if f := fs.Lookup(FlagDepth); f != nil {
		if dv, ok := f.Value.(*depthValue); ok && dv.err != nil {
			return dv.err
		}
	}
	return &ConfigError{Field: "arguments", Value: strings.Join(args, " "), Err: err}
}

// Finalize applies post-parse defaults
func Finalize(opts *Options) {
	if opts.Path == "" {
		opts.Path = "."
	}
}

// NormalizeArgs rewrites single-dash long flags (-type=f, -depth 2) into the
// double-dash form pflag understands, and joined shorthands (-p=x) into their
// long form so an empty value stays empty. Values of flags registered on fs
// and everything after "--" are left alone.
func NormalizeArgs(fs *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	expectValue := false
	for i, arg := range args {
		if expectValue {
			out = append(out, arg)
			expectValue = false
			continue
		}
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if isSingleDashLong(arg) {
			arg = "-" + arg
		} else {
			arg = expandShorthand(fs, arg)
		}
		expectValue = takesSeparateValue(fs, arg)
		out = append(out, arg)
	}
	return out
}

// takesSeparateValue reports whether arg is a known flag whose value is the next token
func takesSeparateValue(fs *pflag.FlagSet, arg string) bool {
	if fs == nil || strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		f = fs.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-':
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

// expandShorthand turns "-x=value" into "--long=value" for a registered
// shorthand x. pflag reads "-x=" as the value "=".
func expandShorthand(fs *pflag.FlagSet, arg string) string {
	if fs == nil || len(arg) < 3 || arg[0] != '-' || arg[1] == '-' || arg[2] != '=' {
		return arg
	}
	f := fs.ShorthandLookup(arg[1:2])
	if f == nil {
		return arg
	}
	return "--" + f.Name + arg[2:]
}

func isSingleDashLong(arg string) bool {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	name := arg[1:]
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	if len(name) < 2 {
		return false
	}
	// negative numbers are values, not flags
	if _, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return false
	}
	return true
}
