package domain

// WorkspaceDiff represents the changes between two workspace snapshots.
// It is designed to be serialized to JSON for partial updates on the client.
type WorkspaceDiff struct {
	// WorkspaceID is always present to identify the target.
	WorkspaceID string `json:"workspace_id"`

	// Mode is set when the committed layout mode changed.
	Mode *string `json:"mode,omitempty"`

	// Size is set when the workspace bounds changed.
	Size *Dimensions `json:"size,omitempty"`

	// Opened lists documents present in the new snapshot but not the old.
	Opened []DocumentLayoutInfo `json:"opened,omitempty"`

	// Closed lists document IDs removed since the old snapshot.
	Closed []DocumentCaddyID `json:"closed,omitempty"`

	// Updated lists documents whose position, size, z-order or activity changed.
	Updated []DocumentLayoutInfo `json:"updated,omitempty"`
}

// Diff calculates the difference between two snapshots.
// If old is nil, the diff represents the entire new snapshot (initial load).
// Returns nil if nothing changed, or if new is nil.
func Diff(old, new *WorkspaceState) *WorkspaceDiff {
	if new == nil {
		return nil
	}

	diff := &WorkspaceDiff{WorkspaceID: new.WorkspaceID}
	changed := false

	if old == nil || old.Mode != new.Mode {
		diff.Mode = &new.Mode
		changed = true
	}
	if old == nil || old.Size != new.Size {
		size := new.Size
		diff.Size = &size
		changed = true
	}

	oldDocs := map[DocumentCaddyID]DocumentLayoutInfo{}
	if old != nil {
		for _, d := range old.Documents {
			oldDocs[d.ID] = d
		}
	}

	seen := map[DocumentCaddyID]bool{}
	for _, d := range new.Documents {
		seen[d.ID] = true
		prev, ok := oldDocs[d.ID]
		switch {
		case !ok:
			diff.Opened = append(diff.Opened, d)
			changed = true
		case prev != d:
			diff.Updated = append(diff.Updated, d)
			changed = true
		}
	}

	if old != nil {
		for _, d := range old.Documents {
			if !seen[d.ID] {
				diff.Closed = append(diff.Closed, d.ID)
				changed = true
			}
		}
	}

	if !changed {
		return nil
	}
	return diff
}
