package filesystem

import "errors"

// Failure kinds surfaced by the filesystem. Call sites wrap these with
// fmt.Errorf("%w: ...") so callers can match with errors.Is while still
// seeing the offending path or component.
var (
	// ErrInvalidPath is returned for malformed paths: missing leading
	// separator, empty component, or a disallowed character.
	ErrInvalidPath = errors.New("invalid path")

	// ErrDirectoryNotFound is returned when a path component does not
	// exist during a no-create resolution.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrFileNotFound is returned when the terminal path of a read does
	// not resolve.
	ErrFileNotFound = errors.New("file not found")

	// ErrTypeConflict is returned on kind mismatches: a directory where a
	// file exists, a file write against a directory, or a duplicate child
	// name insertion.
	ErrTypeConflict = errors.New("type conflict")
)
