package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/easel/pkg/domain"
)

// Store implements ports.WorkspaceStore using the local filesystem.
// It stores workspace snapshots as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".easel/workspaces".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".easel", "workspaces")
	}
	return &Store{BasePath: basePath}
}

// Save persists the workspace snapshot to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination.
func (s *Store) Save(ctx context.Context, workspaceID string, state *domain.WorkspaceState) error {
	if workspaceID == "" {
		return fmt.Errorf("workspaceID cannot be empty")
	}

	// Ensure directory exists
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure workspace directory: %w", err)
	}

	destPath := filepath.Join(s.BasePath, workspaceID+".json")

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+workspaceID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Close before rename (cannot rename open file on Windows)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists, so remove first. The
	// delete+rename window is acceptable for CLI usage; a partial write is
	// the failure mode being avoided here.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing workspace file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to valid workspace: %w", err)
	}

	return nil
}

// Load retrieves the workspace snapshot from a JSON file.
func (s *Store) Load(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	if workspaceID == "" {
		return nil, fmt.Errorf("workspaceID cannot be empty")
	}

	filePath := filepath.Join(s.BasePath, workspaceID+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrWorkspaceNotFound, workspaceID)
		}
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	var state domain.WorkspaceState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspace state: %w", err)
	}

	return &state, nil
}

// Delete removes the workspace file.
func (s *Store) Delete(ctx context.Context, workspaceID string) error {
	if workspaceID == "" {
		return fmt.Errorf("workspaceID cannot be empty")
	}

	filePath := filepath.Join(s.BasePath, workspaceID+".json")

	err := os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete workspace file: %w", err)
	}

	return nil
}

// List returns all stored workspace IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	var workspaces []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			name := entry.Name()
			workspaces = append(workspaces, name[:len(name)-len(".json")])
		}
	}

	return workspaces, nil
}
