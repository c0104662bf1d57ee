package layout

import "github.com/aretw0/easel/pkg/domain"

// FreeformStrategy honors user-controlled absolute positioning. Each
// document's stored position is clamped into the workspace and its size is
// clamped into the box remaining between that position and the workspace
// edge. Z-order comes solely from the input's own ZIndex: freeform never
// reads activeID or IsActive, the user owns the arrangement entirely.
type FreeformStrategy struct{}

// Calculate implements Strategy.
func (FreeformStrategy) Calculate(docs []domain.DocumentLayoutInfo, workspace domain.Dimensions, _ domain.DocumentCaddyID) []domain.DocumentLayoutResult {
	results := make([]domain.DocumentLayoutResult, 0, len(docs))

	for _, doc := range docs {
		pos := doc.CurrentPosition.ConstrainToBounds(workspace)
		remaining := domain.Dimensions{
			Width:  workspace.Width - pos.X,
			Height: workspace.Height - pos.Y,
		}

		results = append(results, domain.DocumentLayoutResult{
			ID:         doc.ID,
			Position:   pos,
			Dimensions: doc.CurrentDimensions.ConstrainToMaximum(remaining),
			ZIndex:     doc.ZIndex,
			IsVisible:  true,
		})
	}

	return results
}

// SupportsResizing implements Strategy.
func (FreeformStrategy) SupportsResizing() bool { return true }

// SupportsDragging implements Strategy.
func (FreeformStrategy) SupportsDragging() bool { return true }

// CSSClassName implements Strategy.
func (FreeformStrategy) CSSClassName() string { return "freeform-layout" }
