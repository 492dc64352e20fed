package filesystem

import (
	"fmt"
	"strings"
)

// TreeStructure renders the subtree rooted at path, one node per line.
// Directories are suffixed with the separator, files annotated with their
// content length in characters, and each level indented by the configured
// tree indent. An unresolvable path renders a single not-found marker line
// instead of failing.
func (fs *FileSystem) TreeStructure(path string) string {
	node, err := fs.resolve(path, false)
	if err != nil {
		return fmt.Sprintf("[Path not found: %s]", path)
	}

	var b strings.Builder
	fs.renderTree(&b, node, 0)
	return b.String()
}

func (fs *FileSystem) renderTree(b *strings.Builder, node *Node, depth int) {
	b.WriteString(strings.Repeat(" ", fs.cfg.TreeIndent*depth))
	b.WriteString(node.Name())
	if node.IsFile() {
		fmt.Fprintf(b, " (%d chars)", node.contentLen())
	} else {
		b.WriteString(Separator)
	}
	b.WriteString("\n")

	for _, name := range node.ListChildren() {
		if child, ok := node.GetChild(name); ok {
			fs.renderTree(b, child, depth+1)
		}
	}
}
