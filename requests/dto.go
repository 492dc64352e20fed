package requests

import "github.com/brettbedarf/memfs"

// NodeRequestDTO is the seed-file representation of [memfs.NodeRequest]
type NodeRequestDTO struct {
	Path string                      `json:"path" yaml:"path"`
	Type memfs.NodeCreateRequestType `json:"type" yaml:"type"`
	// UUID optionally pins the created node's id for linking at request time
	UUID *string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	// Content is only meaningful for file entries and defaults to empty
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
}
