package ports

import "context"

// WorkspaceLoader defines how the engine retrieves workspace definitions.
// This allows the definition source (Loam repo, memory, test fixtures) to be
// decoupled from the engine.
type WorkspaceLoader interface {
	// GetWorkspace retrieves the raw definition of a workspace by ID.
	// It returns the raw bytes (JSON) or an error.
	GetWorkspace(id string) ([]byte, error)
}

// Watchable defines an interface for loaders that can notify about backend
// changes, typically for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying
	// definitions change. It abstracts away the specific event details,
	// signaling only that a reload is required.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
