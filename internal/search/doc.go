// Package search implements sift's core: argument parsing, bounded-depth
// directory traversal and basename pattern filtering.
//
// # Arguments
//
// ParseArgs turns an argument vector into Options. Every flag has a long and
// a single-letter name and accepts its value either joined with "=" or as the
// next token:
//
//	-t=f  -type=file  --type file     entry kind (f|file, d|directory, b|both)
//	-p=.  -path=src   --path src      search root (default ".")
//	-r=go -regex='_test\.go$'         pattern matched against basenames
//	-d=0  -depth=2    --depth 2       recursion budget (unbounded when unset)
//
// Unknown flags and unknown kinds are ignored; a later flag overrides an
// earlier one. A depth that is not an unsigned integer is a *ConfigError.
//
// # Traversal
//
// Traverser walks an afero.Fs depth-first. Depth 0 keeps the root's direct
// children only, depth 1 also descends one level, and so on. Each directory
// is entered at most once per traversal, keyed by its symlink-resolved path,
// so link cycles terminate. The first I/O failure aborts the walk with a
// *TraversalError unless keep-going mode is enabled.
//
// # Filtering
//
// Filter searches each entry's basename with the compiled pattern. A pattern
// that does not compile is a *ConfigError, but only once there is at least
// one candidate to test.
//
// # Usage
//
//	opts, err := search.ParseArgs(os.Args[1:])
//	if err != nil {
//	    return err
//	}
//	result, err := search.NewSearcher(afero.NewOsFs(), nil).Run(opts)
package search
