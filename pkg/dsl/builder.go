package dsl

import (
	"fmt"

	"github.com/aretw0/easel/pkg/adapters/memory"
	"github.com/aretw0/easel/pkg/domain"
)

// Builder manages the construction of a set of workspace definitions.
type Builder struct {
	order      []string
	workspaces map[string]*WorkspaceBuilder
}

// New creates a new workspace set builder.
func New() *Builder {
	return &Builder{
		workspaces: make(map[string]*WorkspaceBuilder),
	}
}

// Workspace creates a new workspace definition.
// If the workspace already exists, it returns the existing builder.
func (b *Builder) Workspace(id string) *WorkspaceBuilder {
	if wb, ok := b.workspaces[id]; ok {
		return wb
	}
	wb := &WorkspaceBuilder{
		state:   domain.NewWorkspaceState(id),
		builder: b,
	}
	b.order = append(b.order, id)
	b.workspaces[id] = wb
	return wb
}

// Build compiles the definitions into a memory Loader.
func (b *Builder) Build() (*memory.Loader, error) {
	states := make([]*domain.WorkspaceState, 0, len(b.order))
	for _, id := range b.order {
		states = append(states, b.workspaces[id].state)
	}

	loader, err := memory.NewFromWorkspaces(states...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}

	return loader, nil
}
