package memfs

import (
	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/filesystem"
)

// New creates an in-memory FileSystem instance given your config.
// A nil config uses defaults.
func New(cfg *config.Config) *filesystem.FileSystem {
	return filesystem.NewFS(cfg)
}
