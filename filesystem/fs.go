package filesystem

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/internal/util"
)

// FileSystem is the public operation surface over the namespace tree.
// Every operation is a synchronous, bounded walk of depth equal to the
// path's component count.
//
// The child maps are individually thread-safe, but whole operations are
// not atomic with respect to each other; callers sharing a FileSystem
// across goroutines must serialize operations externally.
type FileSystem struct {
	cfg          *config.Config
	root         *Node                      // Root of node tree
	nodeRegistry *xsync.Map[uuid.UUID, *Node] // maps node UUIDs to Nodes
}

// NewFS creates an empty filesystem with a root directory.
// A nil config uses defaults.
func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewConfig(nil)
	}
	root := newRootNode()

	fs := &FileSystem{cfg: cfg, root: root}
	fs.nodeRegistry = xsync.NewMap[uuid.UUID, *Node]()
	fs.nodeRegistry.Store(root.ID(), root)
	return fs
}

// Root returns the root directory node.
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// GetNodeByID returns the registered node for a UUID, if any.
func (fs *FileSystem) GetNodeByID(id uuid.UUID) (*Node, bool) {
	return fs.nodeRegistry.Load(id)
}

// register records a newly created node in the UUID registry.
func (fs *FileSystem) register(n *Node) {
	fs.nodeRegistry.Store(n.ID(), n)
}

// resolve parses path and walks its components from the root. With create
// set, missing components are materialized as directories along the way;
// otherwise a missing component fails with ErrDirectoryNotFound. Resolution
// descends into whatever node a component names, so the caller must check
// the kind of the returned node before treating it as a directory or file.
func (fs *FileSystem) resolve(path string, create bool) (*Node, error) {
	components, err := SplitPath(path)
	if err != nil {
		return nil, err
	}

	cur := fs.root
	for _, component := range components {
		child, ok := cur.GetChild(component)
		if !ok {
			if !create {
				return nil, fmt.Errorf("%w: directory %q not found in path %q",
					ErrDirectoryNotFound, component, path)
			}
			// Make intermediate dir
			child = NewDirNode(component)
			if err := cur.AddChild(child); err != nil {
				return nil, err
			}
			fs.register(child)
		}
		cur = child
	}
	return cur, nil
}

// Ls lists the contents of a directory, sorted ascending. If path resolves
// to a file, it returns a single-element list holding the file's own name.
func (fs *FileSystem) Ls(path string) ([]string, error) {
	node, err := fs.resolve(path, false)
	if err != nil {
		if errors.Is(err, ErrDirectoryNotFound) {
			return nil, fmt.Errorf("%w: path %q not found", ErrDirectoryNotFound, path)
		}
		return nil, err
	}

	if node.IsFile() {
		return []string{node.Name()}, nil
	}
	return node.ListChildren(), nil
}

// Mkdir creates the directory at path along with all missing intermediate
// directories, like `mkdir -p`. Creating an existing directory is a no-op;
// a file at path is a conflict.
func (fs *FileSystem) Mkdir(path string) error {
	return fs.MkdirWithID(uuid.New(), path)
}

// MkdirWithID behaves like Mkdir but assigns the caller-supplied UUID to
// the leaf directory when it is newly created. Existing directories and
// auto-created intermediates keep self-assigned ids.
func (fs *FileSystem) MkdirWithID(id uuid.UUID, path string) error {
	logger := util.GetLogger("FS.Mkdir")

	node, err := fs.resolve(path, false)
	if err == nil {
		if node.IsFile() {
			return fmt.Errorf("%w: cannot create directory: file exists at %q", ErrTypeConflict, path)
		}
		// Directory already exists, nothing to do
		return nil
	}
	if !errors.Is(err, ErrDirectoryNotFound) {
		return err
	}

	parentPath, name := SplitParent(path)
	parent, err := fs.resolve(parentPath, true)
	if err != nil {
		logger.Error().Err(err).Str("path", parentPath).Msg("Failed to create ancestor directory(s)")
		return err
	}

	dir := NewDirNodeWithID(id, name)
	if err := parent.AddChild(dir); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to create directory")
		return err
	}
	fs.register(dir)
	logger.Debug().Str("path", path).Str("node", dir.ID().String()).Msg("Created directory")
	return nil
}

// AddContentToFile appends content to the file at path, creating the file
// and any missing intermediate directories if it does not exist yet.
func (fs *FileSystem) AddContentToFile(path, content string) error {
	return fs.AddContentToFileWithID(uuid.New(), path, content)
}

// AddContentToFileWithID behaves like AddContentToFile but assigns the
// caller-supplied UUID to the file when it is newly created. An existing
// file keeps its original id and just appends.
func (fs *FileSystem) AddContentToFileWithID(id uuid.UUID, path, content string) error {
	logger := util.GetLogger("FS.AddContentToFile")

	node, err := fs.resolve(path, false)
	if err == nil {
		if node.IsDir() {
			return fmt.Errorf("%w: cannot write to file: directory exists at %q", ErrTypeConflict, path)
		}
		return node.AppendContent(content)
	}
	if !errors.Is(err, ErrDirectoryNotFound) {
		return err
	}

	// File doesn't exist; ensure the parent directory chain and create it
	parentPath, name := SplitParent(path)
	parent, err := fs.resolve(parentPath, true)
	if err != nil {
		logger.Error().Err(err).Str("path", parentPath).Msg("Failed to create file's ancestor directory(s)")
		return err
	}

	file := NewFileNodeWithID(id, name, content)
	if err := parent.AddChild(file); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to create file")
		return err
	}
	fs.register(file)
	logger.Debug().Str("path", path).Str("node", file.ID().String()).Msg("Added new file node")
	return nil
}

// ReadContentFromFile returns the content of the file at path.
func (fs *FileSystem) ReadContentFromFile(path string) (string, error) {
	node, err := fs.resolve(path, false)
	if err != nil {
		if errors.Is(err, ErrDirectoryNotFound) {
			return "", fmt.Errorf("%w: file %q not found", ErrFileNotFound, path)
		}
		return "", err
	}

	if node.IsDir() {
		return "", fmt.Errorf("%w: cannot read content: %q is a directory", ErrTypeConflict, path)
	}
	return node.Content()
}

// Exists reports whether a path resolves to any node. Resolution and path
// errors become false rather than propagating.
func (fs *FileSystem) Exists(path string) bool {
	_, err := fs.resolve(path, false)
	return err == nil
}

// IsFile reports whether a path resolves to a file.
func (fs *FileSystem) IsFile(path string) bool {
	node, err := fs.resolve(path, false)
	return err == nil && node.IsFile()
}

// IsDirectory reports whether a path resolves to a directory.
func (fs *FileSystem) IsDirectory(path string) bool {
	node, err := fs.resolve(path, false)
	return err == nil && node.IsDir()
}

// NodeInfo is a point-in-time snapshot of a node's identity and size.
type NodeInfo struct {
	ID   uuid.UUID
	Name string
	Kind NodeKind
	Size int // characters for files, child count for directories
}

// Stat returns a snapshot of the node at path.
func (fs *FileSystem) Stat(path string) (*NodeInfo, error) {
	node, err := fs.resolve(path, false)
	if err != nil {
		return nil, err
	}

	info := &NodeInfo{ID: node.ID(), Name: node.Name(), Kind: node.Kind()}
	if node.IsFile() {
		info.Size = node.contentLen()
	} else {
		info.Size = len(node.ListChildren())
	}
	return info, nil
}
