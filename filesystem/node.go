package filesystem

import (
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// NodeKind tags a Node as either a directory or a file.
type NodeKind int

const (
	KindDirectory NodeKind = iota
	KindFile
)

func (k NodeKind) String() string {
	if k == KindFile {
		return "file"
	}
	return "directory"
}

// Node is a single vertex of the namespace tree: a directory owning a
// name-keyed child map, or a file owning an append-only text buffer.
// The kinds are mutually exclusive; a directory never holds content and a
// file never holds children.
type Node struct {
	id       uuid.UUID                 // Assigned at creation; immutable
	name     string                    // Name of the node (last part of the path); immutable
	kind     NodeKind                  // Immutable after creation
	parent   *Node                     // Protected by mu; nil only for root and detached nodes
	content  string                    // File buffer, append-only; protected by mu
	children *xsync.Map[string, *Node] // thread-safe map of child nodes by name; nil for files
	mu       sync.RWMutex
}

// NewDirNode creates a detached directory node.
//
// NOTE: Parent node is responsible for adding itself to the returned Node's
// parent ref when linking as its child via [Node.AddChild]
func NewDirNode(name string) *Node {
	return NewDirNodeWithID(uuid.New(), name)
}

// NewDirNodeWithID creates a detached directory node with a caller-supplied
// UUID, used when a seed request pins the node's id.
func NewDirNodeWithID(id uuid.UUID, name string) *Node {
	return &Node{
		id:       id,
		name:     name,
		kind:     KindDirectory,
		children: xsync.NewMap[string, *Node](),
	}
}

// NewFileNode creates a detached file node with the given initial content.
func NewFileNode(name, content string) *Node {
	return NewFileNodeWithID(uuid.New(), name, content)
}

// NewFileNodeWithID creates a detached file node with a caller-supplied UUID.
func NewFileNodeWithID(id uuid.UUID, name, content string) *Node {
	return &Node{
		id:      id,
		name:    name,
		kind:    KindFile,
		content: content,
	}
}

// newRootNode creates the namespace root: a parentless directory whose name
// is the separator itself.
func newRootNode() *Node {
	return NewDirNode(Separator)
}

// ID returns the node's immutable UUID.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Name returns the node's immutable name.
func (n *Node) Name() string {
	return n.name
}

// Kind returns the node's immutable kind tag.
func (n *Node) Kind() NodeKind {
	return n.kind
}

func (n *Node) IsFile() bool {
	return n.kind == KindFile
}

func (n *Node) IsDir() bool {
	return n.kind == KindDirectory
}

// IsRoot reports whether the node is the namespace root.
func (n *Node) IsRoot() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent == nil && n.name == Separator
}

// Parent returns the node's parent; nil for the root and detached nodes.
// The back-reference is non-owning and used only for lookup.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent
}

// Path returns the absolute path of the node from root.
func (n *Node) Path() string {
	if n.IsRoot() {
		return Separator
	}
	p := n.Parent()
	if p == nil {
		// detached node, name only
		return n.name
	}
	if p.IsRoot() {
		return Separator + n.name
	}
	return p.Path() + Separator + n.name
}

// AddChild adds a child node to the node's children map and sets the
// child's parent to this node. It fails if the node is a file or if a
// child with the same name already exists.
func (n *Node) AddChild(child *Node) error {
	if n.kind != KindDirectory {
		return fmt.Errorf("%w: cannot add child %q to a file", ErrTypeConflict, child.name)
	}
	if _, loaded := n.children.LoadOrStore(child.name, child); loaded {
		return fmt.Errorf("%w: child %q already exists", ErrTypeConflict, child.name)
	}
	child.mu.Lock()
	defer child.mu.Unlock()
	child.parent = n
	return nil
}

// GetChild returns a child node by name. Files have no children, so the
// lookup always reports absent on a file.
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if n.kind != KindDirectory {
		return nil, false
	}
	return n.children.Load(name)
}

// ListChildren returns all child names in ascending lexicographic order.
// Empty for files.
func (n *Node) ListChildren() []string {
	if n.kind != KindDirectory {
		return []string{}
	}
	names := make([]string, 0, n.children.Size())
	n.children.Range(func(name string, _ *Node) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// AppendContent concatenates content onto the file's buffer. There is no
// truncate or overwrite; the buffer only grows.
func (n *Node) AppendContent(content string) error {
	if n.kind != KindFile {
		return fmt.Errorf("%w: cannot append content to a directory", ErrTypeConflict)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.content += content
	return nil
}

// Content returns the file's buffer.
func (n *Node) Content() (string, error) {
	if n.kind != KindFile {
		return "", fmt.Errorf("%w: cannot get content from a directory", ErrTypeConflict)
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content, nil
}

// contentLen returns the buffer length in characters, not bytes.
func (n *Node) contentLen() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return utf8.RuneCountInString(n.content)
}
