package layout

import (
	"testing"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_WrapsByWorkspaceWidth(t *testing.T) {
	g := GridStrategy{}

	// floor((660+20)/(300+20)) = 2 columns.
	results := g.Calculate(docs("a", "b", "c", "d", "e"), domain.NewDimensions(660, 900), "")
	require.Len(t, results, 5)

	// Index 4 lands at row 2, col 0.
	assert.Equal(t, domain.NewPosition(20, 20+2*270), results[4].Position)

	// Row 0 fills left to right.
	assert.Equal(t, domain.NewPosition(20, 20), results[0].Position)
	assert.Equal(t, domain.NewPosition(340, 20), results[1].Position)
	// Index 2 wraps.
	assert.Equal(t, domain.NewPosition(20, 290), results[2].Position)
}

func TestGrid_FixedCellSize(t *testing.T) {
	g := GridStrategy{}
	for _, r := range g.Calculate(docs("a", "b", "c"), domain.NewDimensions(2000, 2000), "") {
		assert.Equal(t, domain.NewDimensions(300, 250), r.Dimensions)
		assert.True(t, r.IsVisible)
	}
}

func TestGrid_ColumnCountFloorsAtOne(t *testing.T) {
	g := GridStrategy{}

	// Workspace narrower than one cell still yields a single column.
	results := g.Calculate(docs("a", "b"), domain.NewDimensions(100, 900), "")
	require.Len(t, results, 2)
	assert.Equal(t, domain.NewPosition(20, 20), results[0].Position)
	assert.Equal(t, domain.NewPosition(20, 290), results[1].Position)
}

func TestGrid_EmptyInput(t *testing.T) {
	g := GridStrategy{}
	assert.Empty(t, g.Calculate(nil, domain.NewDimensions(660, 900), ""))
}

func TestGrid_IgnoresActiveOverride(t *testing.T) {
	g := GridStrategy{}

	// One document always lands at (20,20) no matter which override is passed.
	for _, override := range []domain.DocumentCaddyID{"", "a", "someone-else"} {
		results := g.Calculate(docs("a"), domain.NewDimensions(660, 900), override)
		require.Len(t, results, 1)
		assert.Equal(t, domain.NewPosition(20, 20), results[0].Position)
		assert.Equal(t, 1, results[0].ZIndex)
	}
}

func TestGrid_ZIndexFromOwnFlagOnly(t *testing.T) {
	g := GridStrategy{}
	in := docs("a", "b")
	in[0].IsActive = true

	// The override names b, but only a's own flag raises its z-index.
	results := g.Calculate(in, domain.NewDimensions(660, 900), "b")
	assert.Equal(t, 5, results[0].ZIndex)
	assert.Equal(t, 1, results[1].ZIndex)
}

func TestGrid_Capabilities(t *testing.T) {
	g := GridStrategy{}
	assert.False(t, g.SupportsResizing())
	assert.False(t, g.SupportsDragging())
	assert.Equal(t, "grid-layout", g.CSSClassName())
}
