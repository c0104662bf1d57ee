package ports

import (
	"context"

	"github.com/aretw0/easel/pkg/domain"
)

// WorkspaceStore defines the interface for persisting workspace state.
// The store is the authoritative owner of the live document list and the
// committed layout mode; the layout engine itself never persists anything.
type WorkspaceStore interface {
	// Save persists the state for a given workspace ID.
	Save(ctx context.Context, workspaceID string, state *domain.WorkspaceState) error

	// Load retrieves the state for a given workspace ID.
	// Returns domain.ErrWorkspaceNotFound if the workspace does not exist.
	Load(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error)

	// Delete removes the state for a given workspace ID.
	Delete(ctx context.Context, workspaceID string) error

	// List returns the IDs of all stored workspaces.
	List(ctx context.Context) ([]string, error)
}
