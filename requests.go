package memfs

import "github.com/google/uuid"

// NodeRequest represents user input for node creation. It is passed from
// entrypoints (cli, seed files, etc.) down to the filesystem facade.
type NodeRequest struct {
	Path string                `json:"path" yaml:"path"`
	Type NodeCreateRequestType `json:"type" yaml:"type"`
	// UUID identifies the node to create, enabling registry lookup at
	// request time. Defaulted during unmarshaling when the caller omits it.
	UUID uuid.UUID `json:"uuid" yaml:"uuid"`
}

type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

type DirCreateRequest struct {
	NodeRequest
}

// FileWriteRequest creates the file at Path if needed and appends Content.
type FileWriteRequest struct {
	NodeRequest
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}
