package workspace

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/layout"
)

// Gesture describes a manual drag or resize performed on one document.
type Gesture struct {
	Action     layout.UserAction      `json:"action"`
	DocumentID domain.DocumentCaddyID `json:"document_id"`

	// Position is the document's new top-left corner (drag and resize).
	Position *domain.Position `json:"position,omitempty"`

	// Dimensions is the document's new size (resize only).
	Dimensions *domain.Dimensions `json:"dimensions,omitempty"`
}

// update runs fn against the stored snapshot inside the workspace lock,
// persists the result and returns the new state plus the diff against the
// previous snapshot.
func (m *Manager) update(ctx context.Context, workspaceID string, fn func(*domain.WorkspaceState) error) (*domain.WorkspaceState, *domain.WorkspaceDiff, error) {
	var (
		next *domain.WorkspaceState
		diff *domain.WorkspaceDiff
	)

	err := m.WithLock(ctx, workspaceID, func(ctx context.Context) error {
		old, err := m.store.Load(ctx, workspaceID)
		if err != nil {
			return err
		}

		next = old.Clone()
		if err := fn(next); err != nil {
			return err
		}

		next.UpdatedAt = time.Now().UTC()
		if err := m.store.Save(ctx, workspaceID, next); err != nil {
			return fmt.Errorf("failed to persist workspace %s: %w", workspaceID, err)
		}

		diff = domain.Diff(old, next)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return next, diff, nil
}

// OpenDocument appends a document to the workspace.
// Opening an already-open document is a no-op.
func (m *Manager) OpenDocument(ctx context.Context, workspaceID string, doc domain.DocumentLayoutInfo) (*domain.WorkspaceState, *domain.WorkspaceDiff, error) {
	state, diff, err := m.update(ctx, workspaceID, func(ws *domain.WorkspaceState) error {
		if ws.Document(doc.ID) != nil {
			return nil
		}
		ws.Documents = append(ws.Documents, doc)
		return nil
	})
	if err == nil && diff != nil {
		m.emit(domain.DocumentEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now().UTC(), Type: domain.EventDocumentOpen, WorkspaceID: workspaceID},
			DocumentID: doc.ID,
		})
	}
	return state, diff, err
}

// CloseDocument removes a document from the workspace.
func (m *Manager) CloseDocument(ctx context.Context, workspaceID string, docID domain.DocumentCaddyID) (*domain.WorkspaceState, *domain.WorkspaceDiff, error) {
	state, diff, err := m.update(ctx, workspaceID, func(ws *domain.WorkspaceState) error {
		for i := range ws.Documents {
			if ws.Documents[i].ID == docID {
				ws.Documents = append(ws.Documents[:i], ws.Documents[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, docID)
	})
	if err == nil {
		m.emit(domain.DocumentEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now().UTC(), Type: domain.EventDocumentClose, WorkspaceID: workspaceID},
			DocumentID: docID,
		})
	}
	return state, diff, err
}

// SetMode commits an explicit layout mode transition.
// The token is validated via layout.ParseMode before anything is persisted.
func (m *Manager) SetMode(ctx context.Context, workspaceID string, token string) (*domain.WorkspaceState, *domain.WorkspaceDiff, error) {
	mode, err := layout.ParseMode(token)
	if err != nil {
		return nil, nil, err
	}

	var from string
	state, diff, err := m.update(ctx, workspaceID, func(ws *domain.WorkspaceState) error {
		from = ws.Mode
		ws.Mode = mode.String()
		return nil
	})
	if err == nil && diff != nil {
		m.emit(domain.ModeEvent{
			EventBase: domain.EventBase{Timestamp: time.Now().UTC(), Type: domain.EventModeSwitch, WorkspaceID: workspaceID},
			FromMode:  from,
			ToMode:    mode.String(),
		})
	}
	return state, diff, err
}

// Resize commits a new workspace size.
func (m *Manager) Resize(ctx context.Context, workspaceID string, size domain.Dimensions) (*domain.WorkspaceState, *domain.WorkspaceDiff, error) {
	return m.update(ctx, workspaceID, func(ws *domain.WorkspaceState) error {
		ws.Size = size
		return nil
	})
}

// ApplyGesture handles a manual drag/resize on a document. It consults the
// engine's auto-switch advisory and, when advised, commits the transition to
// freeform before applying the user's placement. The updated position and
// dimensions are stored as given; the next layout pass clamps them into the
// workspace.
func (m *Manager) ApplyGesture(ctx context.Context, workspaceID string, g Gesture) (*domain.WorkspaceState, *domain.WorkspaceDiff, error) {
	var (
		from     string
		switched bool
	)

	state, diff, err := m.update(ctx, workspaceID, func(ws *domain.WorkspaceState) error {
		mode, err := layout.ParseMode(ws.Mode)
		if err != nil {
			return fmt.Errorf("stored mode is corrupt: %w", err)
		}

		doc := ws.Document(g.DocumentID)
		if doc == nil {
			return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, g.DocumentID)
		}

		from = ws.Mode
		if mode.ShouldAutoSwitchToFreeform(g.Action) {
			ws.Mode = layout.Freeform().String()
			switched = true
		}

		if g.Position != nil {
			doc.CurrentPosition = *g.Position
		}
		if g.Dimensions != nil {
			doc.CurrentDimensions = *g.Dimensions
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	m.emit(domain.LayoutEvent{
		EventBase:     domain.EventBase{Timestamp: time.Now().UTC(), Type: domain.EventGesture, WorkspaceID: workspaceID},
		Mode:          state.Mode,
		DocumentCount: len(state.Documents),
	})
	if switched {
		m.logger.Info("Auto-switched to freeform on gesture",
			"workspace_id", workspaceID,
			"action", string(g.Action),
		)
		m.emit(domain.ModeEvent{
			EventBase:    domain.EventBase{Timestamp: time.Now().UTC(), Type: domain.EventModeSwitch, WorkspaceID: workspaceID},
			FromMode:     from,
			ToMode:       state.Mode,
			AutoSwitched: true,
		})
	}

	return state, diff, nil
}

// Layout computes the renderable geometry for the stored snapshot without
// mutating it. activeID optionally overrides the active document.
func (m *Manager) Layout(ctx context.Context, workspaceID string, activeID domain.DocumentCaddyID) ([]domain.DocumentLayoutResult, layout.Mode, error) {
	state, err := m.Load(ctx, workspaceID)
	if err != nil {
		return nil, layout.Mode{}, err
	}

	mode, err := layout.ParseMode(state.Mode)
	if err != nil {
		return nil, layout.Mode{}, fmt.Errorf("stored mode is corrupt: %w", err)
	}

	return mode.CalculateLayout(state.Documents, state.Size, activeID), mode, nil
}
