package memory

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/easel/pkg/domain"
)

// Loader implements ports.WorkspaceLoader using an in-memory map.
type Loader struct {
	workspaces map[string][]byte
}

// NewLoader creates a new Loader with the provided raw data (JSON strings).
func NewLoader(data map[string]string) *Loader {
	workspaces := make(map[string][]byte)
	for k, v := range data {
		workspaces[k] = []byte(v)
	}
	return &Loader{
		workspaces: workspaces,
	}
}

// NewFromWorkspaces creates a new Loader from domain objects.
// This handles serialization automatically, improving DX for tests.
func NewFromWorkspaces(states ...*domain.WorkspaceState) (*Loader, error) {
	data := make(map[string][]byte)
	for _, s := range states {
		if s.WorkspaceID == "" {
			return nil, fmt.Errorf("workspace missing ID")
		}
		bytes, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal workspace %s: %w", s.WorkspaceID, err)
		}
		data[s.WorkspaceID] = bytes
	}
	return &Loader{workspaces: data}, nil
}

// GetWorkspace retrieves the raw definition of a workspace by ID.
func (l *Loader) GetWorkspace(id string) ([]byte, error) {
	content, ok := l.workspaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkspaceNotFound, id)
	}
	return content, nil
}
