package layout

import (
	"math"

	"github.com/aretw0/easel/pkg/domain"
)

// Grid geometry is deliberately fixed rather than responsive to document
// count: cells never reshuffle size when documents come and go, only column
// wrapping changes. This keeps incremental re-layouts stable.
const (
	gridCellWidth  = 300
	gridCellHeight = 250
	gridPadding    = 20
	gridActiveZ    = 5
	gridInactiveZ  = 1
)

// GridStrategy arranges all documents simultaneously in a wrapping grid of
// fixed-size cells, row-major by input index.
//
// The activeID override is not consulted here: only the per-document IsActive
// flag affects z-order, and position depends solely on input index.
type GridStrategy struct{}

// Calculate implements Strategy.
func (GridStrategy) Calculate(docs []domain.DocumentLayoutInfo, workspace domain.Dimensions, _ domain.DocumentCaddyID) []domain.DocumentLayoutResult {
	cols := int(math.Floor((workspace.Width + gridPadding) / (gridCellWidth + gridPadding)))
	if cols < 1 {
		cols = 1
	}

	results := make([]domain.DocumentLayoutResult, 0, len(docs))
	for i, doc := range docs {
		row := i / cols
		col := i % cols

		z := gridInactiveZ
		if doc.IsActive {
			z = gridActiveZ
		}

		results = append(results, domain.DocumentLayoutResult{
			ID: doc.ID,
			Position: domain.Position{
				X: gridPadding + float64(col)*(gridCellWidth+gridPadding),
				Y: gridPadding + float64(row)*(gridCellHeight+gridPadding),
			},
			Dimensions: domain.Dimensions{Width: gridCellWidth, Height: gridCellHeight},
			ZIndex:     z,
			IsVisible:  true,
		})
	}

	return results
}

// SupportsResizing implements Strategy.
func (GridStrategy) SupportsResizing() bool { return false }

// SupportsDragging implements Strategy.
func (GridStrategy) SupportsDragging() bool { return false }

// CSSClassName implements Strategy.
func (GridStrategy) CSSClassName() string { return "grid-layout" }
