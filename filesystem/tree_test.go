package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/memfs/config"
)

func TestFS_TreeStructure(t *testing.T) {
	t.Parallel()

	fs := newTestFS(t)
	require.NoError(t, fs.Mkdir("/a/b"))
	require.NoError(t, fs.AddContentToFile("/a/b/d.txt", "hello"))
	require.NoError(t, fs.AddContentToFile("/a/c.txt", "hi"))

	want := "//\n" +
		"  a/\n" +
		"    b/\n" +
		"      d.txt (5 chars)\n" +
		"    c.txt (2 chars)\n"
	assert.Equal(t, want, fs.TreeStructure("/"))
}

func TestFS_TreeStructure_Subtree(t *testing.T) {
	t.Parallel()

	fs := newTestFS(t)
	require.NoError(t, fs.AddContentToFile("/a/b/d.txt", "hello"))

	want := "b/\n" +
		"  d.txt (5 chars)\n"
	assert.Equal(t, want, fs.TreeStructure("/a/b"))
}

func TestFS_TreeStructure_File(t *testing.T) {
	t.Parallel()

	fs := newTestFS(t)

	// The char annotation counts runes, not bytes
	require.NoError(t, fs.AddContentToFile("/f.txt", "héllo"))
	assert.Equal(t, "f.txt (5 chars)\n", fs.TreeStructure("/f.txt"))
}

func TestFS_TreeStructure_NotFound(t *testing.T) {
	t.Parallel()

	fs := newTestFS(t)

	assert.Equal(t, "[Path not found: /missing]", fs.TreeStructure("/missing"))
}

func TestFS_TreeStructure_CustomIndent(t *testing.T) {
	t.Parallel()

	indent := 4
	cfg := config.NewConfig(&config.ConfigOverride{TreeIndent: &indent})
	fs := NewFS(cfg)
	require.NoError(t, fs.Mkdir("/a"))

	want := "//\n" +
		"    a/\n"
	assert.Equal(t, want, fs.TreeStructure("/"))
}
