package search

import (
	"errors"
	"testing"

	"github.com/harrison/sift/internal/models"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPath    string
		wantKind    models.Kind
		wantDepth   models.Depth
		wantPattern string
	}{
		{
			name:     "no arguments uses defaults",
			args:     nil,
			wantPath: ".",
			wantKind: models.KindBoth,
		},
		{
			name:     "short type with space",
			args:     []string{"-t", "f"},
			wantPath: ".",
			wantKind: models.KindFile,
		},
		{
			name:     "short type with equals",
			args:     []string{"-t=d"},
			wantPath: ".",
			wantKind: models.KindDirectory,
		},
		{
			name:     "single-dash long type",
			args:     []string{"-type=file"},
			wantPath: ".",
			wantKind: models.KindFile,
		},
		{
			name:     "double-dash long type with space",
			args:     []string{"--type", "directory"},
			wantPath: ".",
			wantKind: models.KindDirectory,
		},
		{
			name:     "unknown type falls back to both",
			args:     []string{"-t=f", "-t=symlink"},
			wantPath: ".",
			wantKind: models.KindBoth,
		},
		{
			name:     "later path wins",
			args:     []string{"-p=/tmp", "-path", "src"},
			wantPath: "src",
			wantKind: models.KindBoth,
		},
		{
			name:     "empty path defaults to current directory",
			args:     []string{"-path="},
			wantPath: ".",
			wantKind: models.KindBoth,
		},
		{
			name:     "empty short path defaults to current directory",
			args:     []string{"-p=/tmp", "-p="},
			wantPath: ".",
			wantKind: models.KindBoth,
		},
		{
			name:     "empty short regex matches everything",
			args:     []string{"-r=txt", "-r="},
			wantPath: ".",
			wantKind: models.KindBoth,
		},
		{
			name:        "short regex containing equals",
			args:        []string{"-r==x"},
			wantPath:    ".",
			wantKind:    models.KindBoth,
			wantPattern: "=x",
		},
		{
			name:        "regex with metacharacters",
			args:        []string{"-regex", `^a.*\.(txt|md)+$`},
			wantPath:    ".",
			wantKind:    models.KindBoth,
			wantPattern: `^a.*\.(txt|md)+$`,
		},
		{
			name:        "regex value starting with a dash",
			args:        []string{"-r", "-config"},
			wantPath:    ".",
			wantKind:    models.KindBoth,
			wantPattern: "-config",
		},
		{
			name:      "depth zero",
			args:      []string{"-d=0"},
			wantPath:  ".",
			wantKind:  models.KindBoth,
			wantDepth: models.Limit(0),
		},
		{
			name:      "long depth with space",
			args:      []string{"-depth", "3"},
			wantPath:  ".",
			wantKind:  models.KindBoth,
			wantDepth: models.Limit(3),
		},
		{
			name:        "all flags in any order",
			args:        []string{"-r=txt", "-d=1", "-p=/tmp/x", "-t=b"},
			wantPath:    "/tmp/x",
			wantKind:    models.KindBoth,
			wantDepth:   models.Limit(1),
			wantPattern: "txt",
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-x=1", "-foo", "bar", "--unknown=2", "-q", "value", "-v", "-t=f"},
			wantPath: ".",
			wantKind: models.KindFile,
		},
		{
			name:     "positional arguments are ignored",
			args:     []string{"stray", "-t", "d", "another"},
			wantPath: ".",
			wantKind: models.KindDirectory,
		},
		{
			name:     "flag glued to value is an unknown flag",
			args:     []string{"-d1"},
			wantPath: ".",
			wantKind: models.KindBoth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, opts.Path)
			assert.Equal(t, tt.wantKind, opts.Kind)
			assert.Equal(t, tt.wantDepth, opts.Depth)
			assert.Equal(t, tt.wantPattern, opts.Pattern)
			assert.False(t, opts.KeepGoing)
		})
	}
}

func TestParseArgs_KeepGoing(t *testing.T) {
	opts, err := ParseArgs([]string{"--keep-going", "-p", "root"})
	require.NoError(t, err)
	assert.True(t, opts.KeepGoing)
	assert.Equal(t, "root", opts.Path)
}

func TestParseArgs_Changed(t *testing.T) {
	opts, err := ParseArgs([]string{"-p=src", "-regex", "go$"})
	require.NoError(t, err)

	assert.True(t, opts.Changed(FlagPath))
	assert.True(t, opts.Changed(FlagRegex))
	assert.False(t, opts.Changed(FlagType))
	assert.False(t, opts.Changed(FlagDepth))
	assert.False(t, opts.Changed("keep-going"))
	assert.False(t, DefaultOptions().Changed(FlagPath))
}

func TestParseArgs_ExtraFlags(t *testing.T) {
	extra := pflag.NewFlagSet("extra", pflag.ContinueOnError)
	level := extra.String("log-level", "", "")
	verbose := extra.Bool("verbose", false, "")

	opts, err := ParseArgs([]string{"-log-level", "debug", "-t=f", "--verbose", "-x=1"}, extra)
	require.NoError(t, err)

	assert.Equal(t, "debug", *level)
	assert.True(t, *verbose)
	assert.Equal(t, models.KindFile, opts.Kind)
	assert.True(t, opts.Changed("log-level"))
	assert.True(t, extra.Changed("log-level"), "extra flags share state with the caller's set")
}

func TestParseArgs_MalformedDepth(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		value string
	}{
		{"letters", []string{"-d=abc"}, "abc"},
		{"negative", []string{"-depth", "-1"}, "-1"},
		{"fraction", []string{"--depth=1.5"}, "1.5"},
		{"empty", []string{"-depth="}, ""},
		{"empty shorthand", []string{"-d="}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %T", err)
			assert.Equal(t, FlagDepth, cfgErr.Field)
			assert.Equal(t, tt.value, cfgErr.Value)
			assert.Contains(t, err.Error(), "invalid depth")
		})
	}
}

func TestParseArgs_MissingValue(t *testing.T) {
	_, err := ParseArgs([]string{"-t"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "arguments", cfgErr.Field)
}

func TestNormalizeArgs(t *testing.T) {
	opts := DefaultOptions()
	fs := NewFlagSet("test", opts)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"short flags untouched", []string{"-t", "f", "-d", "2"}, []string{"-t", "f", "-d", "2"}},
		{"joined shorthand expanded", []string{"-d=2", "-p="}, []string{"--depth=2", "--path="}},
		{"unknown joined shorthand untouched", []string{"-x=1"}, []string{"-x=1"}},
		{"single-dash long promoted", []string{"-type=f", "-path", "x"}, []string{"--type=f", "--path", "x"}},
		{"double-dash untouched", []string{"--regex=a"}, []string{"--regex=a"}},
		{"value of known flag untouched", []string{"-regex", "-abc"}, []string{"--regex", "-abc"}},
		{"negative number untouched", []string{"-12"}, []string{"-12"}},
		{"after terminator untouched", []string{"--", "-type=f"}, []string{"--", "-type=f"}},
		{"unknown single-dash long promoted", []string{"-foo", "bar"}, []string{"--foo", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArgs(fs, tt.args))
		})
	}
}
