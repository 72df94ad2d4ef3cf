package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/sift/internal/config"
	"github.com/harrison/sift/internal/display"
	"github.com/harrison/sift/internal/logger"
	"github.com/harrison/sift/internal/search"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runSearch implements the root command logic
func runSearch(cmd *cobra.Command, args []string, fsys afero.Fs, opts *rootOptions) error {
	flags := cmd.Flags()
	searchOpts, err := search.ParseArgs(args, flags)
	if err != nil {
		return err
	}

	if help, _ := flags.GetBool("help"); help {
		return cmd.Help()
	}
	if opts.version {
		fmt.Fprintf(cmd.OutOrStdout(), "sift version %s\n", cmd.Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Build flag pointers for merge (only values set on the command line)
	var logLevelPtr, colorPtr *string
	if searchOpts.Changed("log-level") {
		logLevelPtr = &opts.logLevel
	}
	if searchOpts.Changed("color") {
		colorPtr = &opts.color
	}
	var keepGoingPtr *bool
	if searchOpts.Changed("keep-going") {
		keepGoingPtr = &searchOpts.KeepGoing
	}

	cfg.MergeWithFlags(logLevelPtr, colorPtr, keepGoingPtr)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ApplyDefaults(searchOpts, searchOpts.Changed)

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	outColor, err := display.ColorEnabled(cfg.Color, asFile(out))
	if err != nil {
		return err
	}
	errColor, err := display.ColorEnabled(cfg.Color, asFile(errOut))
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	log.SetColorOutput(errColor)

	result, err := search.NewSearcher(fsys, log).Run(searchOpts)
	if err != nil {
		return err
	}

	display.ListMatches(out, result.Matches, outColor)
	if len(result.Skipped) > 0 {
		display.SkippedWarning(result.Skipped).Display(errOut, errColor)
	}

	return nil
}

// asFile returns w as an *os.File when it is one, for terminal detection
func asFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
