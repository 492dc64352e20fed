package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/memfs"
)

// UnmarshalSeedFile decodes a seed definition file into directory and file
// requests, preserving entry order within each kind. The format is chosen by
// file extension: YAML (.yaml, .yml) or JSON (.json).
func UnmarshalSeedFile(path string) ([]*memfs.DirCreateRequest, []*memfs.FileWriteRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var dtos []NodeRequestDTO
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &dtos); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &dtos); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("unknown seed file extension: %s", path)
	}

	return ConvertDTOs(dtos)
}

// ConvertDTOs splits decoded seed entries into typed dir and file requests.
func ConvertDTOs(dtos []NodeRequestDTO) ([]*memfs.DirCreateRequest, []*memfs.FileWriteRequest, error) {
	var dirs []*memfs.DirCreateRequest
	var files []*memfs.FileWriteRequest

	for i, dto := range dtos {
		id, err := parseOrNewUUID(dto.UUID)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %d: invalid uuid: %w", i, err)
		}

		switch dto.Type {
		case memfs.DirNodeType:
			dirs = append(dirs, &memfs.DirCreateRequest{
				NodeRequest: memfs.NodeRequest{Path: dto.Path, Type: dto.Type, UUID: id},
			})
		case memfs.FileNodeType:
			files = append(files, &memfs.FileWriteRequest{
				NodeRequest: memfs.NodeRequest{Path: dto.Path, Type: dto.Type, UUID: id},
				Content:     valueOrDefault(dto.Content, ""),
			})
		default:
			return nil, nil, fmt.Errorf("entry %d: unknown node type: %q", i, dto.Type)
		}
	}

	return dirs, files, nil
}

// parseOrNewUUID parses a caller-supplied id, defaulting to a fresh one when
// the entry carries none.
func parseOrNewUUID(ptr *string) (uuid.UUID, error) {
	if ptr == nil {
		return uuid.New(), nil
	}
	return uuid.Parse(*ptr)
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
