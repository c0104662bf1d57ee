package middleware

import "github.com/aretw0/easel/pkg/ports"

// Middleware allows wrapping a WorkspaceStore to add behavior.
type Middleware func(ports.WorkspaceStore) ports.WorkspaceStore

// Chain applies middlewares right to left, so the first one listed sees
// calls first.
func Chain(store ports.WorkspaceStore, middlewares ...Middleware) ports.WorkspaceStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
