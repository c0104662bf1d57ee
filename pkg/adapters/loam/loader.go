package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/easel/pkg/domain"
)

// Loader adapts the Loam library to the Easel WorkspaceLoader interface.
// Workspace definitions live as loam documents whose frontmatter carries the
// layout mode, workspace size and the open document list.
type Loader struct {
	Repo *loam.TypedRepository[WorkspaceMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[WorkspaceMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// GetWorkspace retrieves a workspace from the Loam repository.
// The definition is normalized into a domain.WorkspaceState and returned as
// JSON bytes, which the engine facade unmarshals.
func (l *Loader) GetWorkspace(id string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	state := buildState(doc.ID, doc.Data)

	bytes, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workspace data: %w", err)
	}

	return bytes, nil
}

// buildState maps frontmatter metadata onto the domain snapshot, applying
// defaults so sparse definitions stay loadable.
func buildState(docID string, meta WorkspaceMetadata) *domain.WorkspaceState {
	rawID := meta.ID
	if rawID == "" {
		rawID = docID
	}

	state := domain.NewWorkspaceState(trimExtension(rawID))

	if meta.Name != "" {
		state.Name = meta.Name
	}
	if meta.Mode != "" {
		state.Mode = meta.Mode
	}
	if meta.Width > 0 && meta.Height > 0 {
		state.Size = domain.NewDimensions(meta.Width, meta.Height)
	}

	state.Documents = make([]domain.DocumentLayoutInfo, 0, len(meta.Documents))
	for _, d := range meta.Documents {
		w := d.Width
		h := d.Height
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		state.Documents = append(state.Documents, domain.DocumentLayoutInfo{
			ID:                domain.DocumentCaddyID(d.ID),
			CurrentPosition:   domain.NewPosition(d.X, d.Y),
			CurrentDimensions: domain.NewDimensions(w, h),
			IsActive:          d.Active,
			ZIndex:            d.ZIndex,
		})
	}

	return state
}

// ListWorkspaces lists all workspace IDs in the repository.
func (l *Loader) ListWorkspaces() ([]string, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		// Collision Detection
		if existingPath, ok := seen[id]; ok {
			// doc.ID is usually the filepath in Loam (or relative path)
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}

// trimExtension strips a trailing file extension from loam document IDs
// (e.g. "main-desk.md" -> "main-desk").
func trimExtension(id string) string {
	if idx := strings.LastIndex(id, "."); idx > 0 {
		return id[:idx]
	}
	return id
}
