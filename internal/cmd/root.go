package cmd

import (
	"github.com/harrison/sift/internal/search"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds the values bound to the root command's own flags.
// Search flags are parsed into a fresh search.Options per run.
type rootOptions struct {
	configPath string
	logLevel   string
	color      string
	version    bool
}

// NewRootCommand creates and returns the root cobra command for sift
func NewRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs())
}

// newRootCommand builds the root command over fsys
func newRootCommand(fsys afero.Fs) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sift [flags]",
		Short: "Find files and directories whose names match a regular expression",
		Long: `Sift walks a directory tree and lists the entries whose basename
matches a regular expression.

Every flag has a long and a one-letter name, written with one or two dashes,
and takes its value after "=" or as the next argument:

  -t, -type    f|file, d|directory or b|both (default both; unknown values mean both)
  -p, -path    directory to search (default ".")
  -r, -regex   pattern searched for anywhere in the basename (default: match all)
  -d, -depth   levels to descend below the root; 0 lists the root only (default: unlimited)

Unknown flags are ignored. When a flag is repeated the last value wins.

Examples:
  sift -t=f -r='\.go$'
  sift -path src -depth 1 -regex test
  sift --type=d --depth=0 --path=/var/log

Exit code: 0 on success (including no matches), 1 on any error`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Flags are parsed in RunE so single-dash long flags and unknown
		// flags follow sift's grammar instead of cobra's.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, fsys, opts)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	// Listed for help output only; runSearch parses them with search.ParseArgs
	search.BindFlags(flags, search.DefaultOptions())
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file with default settings")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostics level: trace, debug, info, warn, error (default warn)")
	flags.StringVar(&opts.color, "color", "", "colored output: auto, always, never (default auto)")
	// Declared here so cobra does not add its -v shorthand, which would
	// shadow an otherwise ignored unknown flag.
	flags.BoolVar(&opts.version, "version", false, "print the version and exit")

	return cmd
}
