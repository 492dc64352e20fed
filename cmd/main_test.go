package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/internal/util"
)

func newVerbosityFlagSet(verbose *int) *flag.FlagSet {
	flags := flag.NewFlagSet("memfs", flag.ContinueOnError)
	flags.IntVar(verbose, "verbose", 3, "")
	flags.IntVar(verbose, "v", 3, "")
	return flags
}

func TestApplyCLIVerbosity_FlagPassed(t *testing.T) {
	t.Parallel()

	var verbose int
	flags := newVerbosityFlagSet(&verbose)
	require.NoError(t, flags.Parse([]string{"-v", "5"}))

	cfg := config.NewDefaultConfig()
	applyCLIVerbosity(cfg, flags, verbose)

	assert.Equal(t, util.TraceLevel, cfg.LogLvl)
}

func TestApplyCLIVerbosity_FlagOmitted_KeepsConfigFileValue(t *testing.T) {
	t.Parallel()

	var verbose int
	flags := newVerbosityFlagSet(&verbose)
	require.NoError(t, flags.Parse(nil))

	// Simulate a config file that already raised the verbosity
	fileVerbose := 5
	cfg := config.NewConfig(&config.ConfigOverride{LogLvl: &fileVerbose})
	require.Equal(t, util.TraceLevel, cfg.LogLvl)

	// The unpassed flag default must not clobber the file setting
	applyCLIVerbosity(cfg, flags, verbose)
	assert.Equal(t, util.TraceLevel, cfg.LogLvl)
}

func TestApplyCLIVerbosity_LongFlag(t *testing.T) {
	t.Parallel()

	var verbose int
	flags := newVerbosityFlagSet(&verbose)
	require.NoError(t, flags.Parse([]string{"-verbose", "1"}))

	cfg := config.NewDefaultConfig()
	applyCLIVerbosity(cfg, flags, verbose)

	assert.Equal(t, util.ErrorLevel, cfg.LogLvl)
}
