package layout

import (
	"testing"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeform_ClampsIntoWorkspace(t *testing.T) {
	f := FreeformStrategy{}
	ws := domain.NewDimensions(800, 600)

	in := []domain.DocumentLayoutInfo{{
		ID:                "a",
		CurrentPosition:   domain.NewPosition(5000, 5000),
		CurrentDimensions: domain.NewDimensions(400, 400),
	}}

	results := f.Calculate(in, ws, "")
	require.Len(t, results, 1)

	r := results[0]
	assert.LessOrEqual(t, r.Position.X, ws.Width)
	assert.LessOrEqual(t, r.Position.Y, ws.Height)
	assert.GreaterOrEqual(t, r.Position.X, 0.0)
	assert.GreaterOrEqual(t, r.Position.Y, 0.0)

	// Dimensions may not exceed the space left between the clamped position
	// and the workspace edge. Here the position clamps to the corner.
	assert.Equal(t, domain.NewPosition(800, 600), r.Position)
	assert.Equal(t, domain.Dimensions{}, r.Dimensions)
}

func TestFreeform_PreservesUserPlacement(t *testing.T) {
	f := FreeformStrategy{}

	in := []domain.DocumentLayoutInfo{{
		ID:                "a",
		CurrentPosition:   domain.NewPosition(100, 150),
		CurrentDimensions: domain.NewDimensions(300, 200),
		ZIndex:            7,
	}}

	results := f.Calculate(in, domain.NewDimensions(800, 600), "")
	require.Len(t, results, 1)
	assert.Equal(t, domain.NewPosition(100, 150), results[0].Position)
	assert.Equal(t, domain.NewDimensions(300, 200), results[0].Dimensions)
	assert.Equal(t, 7, results[0].ZIndex)
	assert.True(t, results[0].IsVisible)
}

func TestFreeform_ShrinksOversizedDocument(t *testing.T) {
	f := FreeformStrategy{}

	in := []domain.DocumentLayoutInfo{{
		ID:                "a",
		CurrentPosition:   domain.NewPosition(600, 500),
		CurrentDimensions: domain.NewDimensions(400, 400),
	}}

	results := f.Calculate(in, domain.NewDimensions(800, 600), "")
	assert.Equal(t, domain.NewDimensions(200, 100), results[0].Dimensions)
}

func TestFreeform_IgnoresActivity(t *testing.T) {
	f := FreeformStrategy{}

	in := []domain.DocumentLayoutInfo{
		{ID: "a", ZIndex: 3, IsActive: true},
		{ID: "b", ZIndex: 9},
	}

	// Neither the flag nor the override changes z-order or visibility.
	results := f.Calculate(in, domain.NewDimensions(800, 600), "b")
	assert.Equal(t, 3, results[0].ZIndex)
	assert.Equal(t, 9, results[1].ZIndex)
	assert.True(t, results[0].IsVisible)
	assert.True(t, results[1].IsVisible)
}

func TestFreeform_OutputAlignedWithInput(t *testing.T) {
	f := FreeformStrategy{}
	in := docs("x", "y", "z")

	results := f.Calculate(in, domain.NewDimensions(800, 600), "")
	require.Len(t, results, len(in))
	for i, r := range results {
		assert.Equal(t, in[i].ID, r.ID)
	}
}

func TestFreeform_Capabilities(t *testing.T) {
	f := FreeformStrategy{}
	assert.True(t, f.SupportsResizing())
	assert.True(t, f.SupportsDragging())
	assert.Equal(t, "freeform-layout", f.CSSClassName())
}
