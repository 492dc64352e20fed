package e2e

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/memfs"
	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/filesystem"
	"github.com/brettbedarf/memfs/requests"
)

// TestE2ESeedAndQuery drives the whole stack the way cmd/ does: decode a
// seed file, apply it to a fresh filesystem, then query and dump it.
func TestE2ESeedAndQuery(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "nodes.yaml")
	seed := `
- type: dir
  path: /projects/go/memfs
  uuid: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
- type: file
  path: /docs/readme.txt
  content: "Welcome to the file system!"
- type: file
  path: /docs/readme.txt
  content: " Enjoy."
`
	require.NoError(t, os.WriteFile(seedPath, []byte(seed), 0o644))

	dirs, files, err := requests.UnmarshalSeedFile(seedPath)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	require.Len(t, files, 2)

	fs := memfs.New(config.NewDefaultConfig())
	for _, req := range dirs {
		require.NoError(t, fs.MkdirWithID(req.UUID, req.Path))
	}
	for _, req := range files {
		require.NoError(t, fs.AddContentToFileWithID(req.UUID, req.Path, req.Content))
	}

	// The seed-supplied uuid links straight to the created node
	node, ok := fs.GetNodeByID(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	require.True(t, ok)
	assert.Equal(t, "/projects/go/memfs", node.Path())

	names, err := fs.Ls("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "projects"}, names)

	content, err := fs.ReadContentFromFile("/docs/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the file system! Enjoy.", content)

	assert.True(t, fs.IsDirectory("/projects/go/memfs"))
	assert.True(t, fs.IsFile("/docs/readme.txt"))
	assert.False(t, fs.Exists("/projects/rust"))

	want := "//\n" +
		"  docs/\n" +
		"    readme.txt (34 chars)\n" +
		"  projects/\n" +
		"    go/\n" +
		"      memfs/\n"
	assert.Equal(t, want, fs.TreeStructure("/"))
}

// TestE2EErrorTaxonomy checks that each failure kind surfaces through
// the public API as a matchable error value.
func TestE2EErrorTaxonomy(t *testing.T) {
	fs := memfs.New(nil)
	require.NoError(t, fs.AddContentToFile("/x", "a"))

	_, err := fs.Ls("relative/path")
	assert.ErrorIs(t, err, filesystem.ErrInvalidPath)

	_, err = fs.Ls("/missing")
	assert.ErrorIs(t, err, filesystem.ErrDirectoryNotFound)

	_, err = fs.ReadContentFromFile("/missing")
	assert.ErrorIs(t, err, filesystem.ErrFileNotFound)

	assert.ErrorIs(t, fs.Mkdir("/x"), filesystem.ErrTypeConflict)

	// The failed mkdir must leave the file untouched
	content, err := fs.ReadContentFromFile("/x")
	require.NoError(t, err)
	assert.Equal(t, "a", content)
}
