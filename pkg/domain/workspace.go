package domain

import "time"

// DefaultLayoutMode is the mode assigned to freshly created workspaces.
const DefaultLayoutMode = "stacked"

// WorkspaceState is the authoritative snapshot of a workspace: the live
// document list, the committed layout mode, and the workspace size.
// It is owned by the store; the layout engine only ever reads it.
type WorkspaceState struct {
	// WorkspaceID identifies the workspace across sessions.
	WorkspaceID string `json:"workspace_id"`

	// Name is a human-readable label (defaults to the ID).
	Name string `json:"name,omitempty"`

	// Mode is the committed layout mode token ("stacked", "grid", "freeform").
	// Stored as a string so persisted snapshots survive without importing the
	// layout package; callers parse it via layout.ParseMode before trusting it.
	Mode string `json:"mode"`

	// Size is the bounded on-screen area hosting all open documents.
	Size Dimensions `json:"size"`

	// Documents is the ordered list of open documents.
	Documents []DocumentLayoutInfo `json:"documents"`

	// Meta carries host-defined annotations (tags, client capabilities).
	// Store middleware may also use it for opaque envelopes.
	Meta map[string]any `json:"meta,omitempty"`

	// UpdatedAt tracks the last committed change.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWorkspaceState creates a clean workspace in the default mode.
func NewWorkspaceState(workspaceID string) *WorkspaceState {
	return &WorkspaceState{
		WorkspaceID: workspaceID,
		Name:        workspaceID,
		Mode:        DefaultLayoutMode,
		Documents:   []DocumentLayoutInfo{},
		UpdatedAt:   time.Now().UTC(),
	}
}

// Document returns the document with the given ID, or nil if not open.
func (w *WorkspaceState) Document(id DocumentCaddyID) *DocumentLayoutInfo {
	for i := range w.Documents {
		if w.Documents[i].ID == id {
			return &w.Documents[i]
		}
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate store-owned state.
func (w *WorkspaceState) Clone() *WorkspaceState {
	if w == nil {
		return nil
	}
	out := *w
	out.Documents = make([]DocumentLayoutInfo, len(w.Documents))
	copy(out.Documents, w.Documents)
	if w.Meta != nil {
		out.Meta = copyMeta(w.Meta)
	}
	return &out
}

func copyMeta(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			out[k] = copyMeta(sub)
		} else {
			out[k] = v
		}
	}
	return out
}
