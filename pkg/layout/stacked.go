package layout

import "github.com/aretw0/easel/pkg/domain"

// Stacked layout sizing caps. The active document fills 90% of the workspace
// up to a fixed ceiling, so it stays readable on very large screens.
const (
	stackedMaxWidth    = 1000
	stackedMaxHeight   = 700
	stackedScaleFactor = 0.9
	stackedActiveZ     = 10
)

// StackedStrategy shows one document at a time. The active document is
// centered at a capped size; every other document collapses to the minimum
// size at the origin so it stays addressable (e.g. for tab UIs) without
// occupying meaningful screen space.
type StackedStrategy struct{}

// Calculate implements Strategy.
func (StackedStrategy) Calculate(docs []domain.DocumentLayoutInfo, workspace domain.Dimensions, activeID domain.DocumentCaddyID) []domain.DocumentLayoutResult {
	results := make([]domain.DocumentLayoutResult, 0, len(docs))

	for _, doc := range docs {
		active := doc.IsActive
		if activeID != "" {
			active = doc.ID == activeID
		}

		if !active {
			results = append(results, domain.DocumentLayoutResult{
				ID:         doc.ID,
				Position:   domain.Origin(),
				Dimensions: domain.MinimumDimensions(),
				ZIndex:     0,
				IsVisible:  false,
			})
			continue
		}

		dims := domain.Dimensions{
			Width:  min(workspace.Width*stackedScaleFactor, stackedMaxWidth),
			Height: min(workspace.Height*stackedScaleFactor, stackedMaxHeight),
		}
		results = append(results, domain.DocumentLayoutResult{
			ID: doc.ID,
			Position: domain.Position{
				X: (workspace.Width - dims.Width) / 2,
				Y: (workspace.Height - dims.Height) / 2,
			},
			Dimensions: dims,
			ZIndex:     stackedActiveZ,
			IsVisible:  true,
		})
	}

	return results
}

// SupportsResizing implements Strategy. Stacked geometry is fully computed.
func (StackedStrategy) SupportsResizing() bool { return false }

// SupportsDragging implements Strategy.
func (StackedStrategy) SupportsDragging() bool { return false }

// CSSClassName implements Strategy.
func (StackedStrategy) CSSClassName() string { return "stacked-layout" }
