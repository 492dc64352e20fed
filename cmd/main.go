package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/brettbedarf/memfs"
	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/internal/util"
	"github.com/brettbedarf/memfs/requests"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		nodesDef   string
		verbose    int
	)
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&nodesDef, "nodes", "", "Path to nodes def file")
	flag.StringVar(&nodesDef, "n", "", "--nodes (shorthand)")
	flag.IntVar(&verbose, "verbose", 3, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", 3, "--verbose (shorthand)")
	flag.Parse()

	// Build config: file overrides first, then CLI verbosity on top when
	// the flag was explicitly passed
	cfg := config.NewDefaultConfig()
	if configPath != "" {
		override, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config file: %v\n", err)
			os.Exit(1)
		}
		cfg.Merge(override)
	}
	applyCLIVerbosity(cfg, flag.CommandLine, verbose)

	// Initialize logger
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")

	// The optional positional argument is the path to dump; defaults to root
	dumpPath := flag.Arg(0)
	if dumpPath == "" {
		dumpPath = "/"
	}
	logger.Info().Int("verbose", verbose).Str("nodes", nodesDef).Str("path", dumpPath).Msg("memfs initializing")

	// Init the fs
	fs := memfs.New(cfg)

	// Load seed requests
	if nodesDef != "" {
		dirRequests, fileRequests, err := requests.UnmarshalSeedFile(nodesDef)
		if err != nil {
			logger.Fatal().Err(err).Str("nodes", nodesDef).Msg("Failed to load nodes def file")
		}
		logger.Debug().
			Int("directories", len(dirRequests)).
			Int("files", len(fileRequests)).
			Msg("Successfully loaded seed requests")

		// Add nodes to the fs: directories first so explicit dirs win over
		// auto-created intermediates
		dirAddCnt := 0
		for _, req := range dirRequests {
			if err := fs.MkdirWithID(req.UUID, req.Path); err != nil {
				logger.Error().Err(err).Str("path", req.Path).Msg("Failed to add directory request")
				continue
			}
			dirAddCnt++
		}
		fileAddCnt := 0
		for _, req := range fileRequests {
			if err := fs.AddContentToFileWithID(req.UUID, req.Path, req.Content); err != nil {
				logger.Error().Err(err).Str("path", req.Path).Msg("Failed to add file request")
				continue
			}
			fileAddCnt++
		}
		logger.Info().Int("directories", dirAddCnt).Int("files", fileAddCnt).Msg("Added new nodes to filesystem")
	} else {
		logger.Warn().Msg("No nodes def file provided; dumping an empty namespace")
	}

	fmt.Print(fs.TreeStructure(dumpPath))
}

// applyCLIVerbosity merges the -verbose flag into cfg only when it was
// explicitly passed, so a verbosity set in the config file is not clobbered
// by the flag default.
func applyCLIVerbosity(cfg *config.Config, flags *flag.FlagSet, verbose int) {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "verbose" || f.Name == "v" {
			set = true
		}
	})
	if set {
		cfg.Merge(&config.ConfigOverride{LogLvl: &verbose})
	}
}
