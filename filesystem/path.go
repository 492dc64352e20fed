package filesystem

import (
	"fmt"
	"strings"
)

// Separator is the path separator. It is also the root directory's name.
const Separator = "/"

// IsValidName reports whether name is a legal path component: non-empty and
// built only from lowercase letters, digits, and periods.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '.':
		default:
			return false
		}
	}
	return true
}

// SplitPath parses an absolute path into its ordered components,
// root-to-leaf. The root path "/" parses to an empty slice. A trailing
// slash produces an empty final component and is rejected.
func SplitPath(path string) ([]string, error) {
	if !strings.HasPrefix(path, Separator) {
		return nil, fmt.Errorf("%w: path %q must start with %q", ErrInvalidPath, path, Separator)
	}
	if path == Separator {
		return nil, nil
	}
	components := strings.Split(path[1:], Separator)
	for _, component := range components {
		if component == "" {
			return nil, fmt.Errorf("%w: path %q cannot contain empty components", ErrInvalidPath, path)
		}
		if !IsValidName(component) {
			return nil, fmt.Errorf("%w: invalid name %q: only lowercase letters, digits, and periods allowed",
				ErrInvalidPath, component)
		}
	}
	return components, nil
}

// SplitParent returns the parent directory path and the leaf name.
// The parent of the root is the root itself, with an empty leaf.
func SplitParent(path string) (parent, leaf string) {
	if path == Separator {
		return Separator, ""
	}
	idx := strings.LastIndex(path, Separator)
	if idx <= 0 {
		return Separator, path[idx+1:]
	}
	return path[:idx], path[idx+1:]
}
