package layout

import (
	"testing"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode_RoundTrip(t *testing.T) {
	for _, token := range []string{"stacked", "grid", "freeform"} {
		m, err := ParseMode(token)
		require.NoError(t, err)
		assert.Equal(t, token, m.String())
	}
}

func TestParseMode_Invalid(t *testing.T) {
	for _, token := range []string{"bogus", "", "Stacked", "GRID", " freeform"} {
		_, err := ParseMode(token)
		assert.ErrorIs(t, err, domain.ErrInvalidLayoutMode, "token %q", token)
	}
}

func TestMode_Equal(t *testing.T) {
	parsed, err := ParseMode("grid")
	require.NoError(t, err)

	assert.True(t, Grid().Equal(parsed))
	assert.True(t, Grid() == parsed)
	assert.False(t, Grid().Equal(Freeform()))
}

func TestMode_Delegation(t *testing.T) {
	assert.Equal(t, "stacked-layout", Stacked().CSSClassName())
	assert.Equal(t, "grid-layout", Grid().CSSClassName())
	assert.Equal(t, "freeform-layout", Freeform().CSSClassName())

	assert.False(t, Stacked().SupportsDragging())
	assert.False(t, Grid().SupportsResizing())
	assert.True(t, Freeform().SupportsDragging())
	assert.True(t, Freeform().SupportsResizing())
}

func TestMode_ShouldAutoSwitchToFreeform(t *testing.T) {
	for _, m := range []Mode{Stacked(), Grid()} {
		assert.True(t, m.ShouldAutoSwitchToFreeform(ActionDrag), "%s drag", m)
		assert.True(t, m.ShouldAutoSwitchToFreeform(ActionResize), "%s resize", m)
	}

	assert.False(t, Freeform().ShouldAutoSwitchToFreeform(ActionDrag))
	assert.False(t, Freeform().ShouldAutoSwitchToFreeform(ActionResize))

	// Unknown gestures never advise a switch.
	assert.False(t, Grid().ShouldAutoSwitchToFreeform(UserAction("hover")))
}

func TestMode_CalculateLayout_Idempotent(t *testing.T) {
	in := []domain.DocumentLayoutInfo{
		{ID: "a", CurrentPosition: domain.NewPosition(10, 20), CurrentDimensions: domain.NewDimensions(300, 200), ZIndex: 2},
		{ID: "b", IsActive: true},
		{ID: "c", CurrentPosition: domain.NewPosition(900, 900)},
	}
	ws := domain.NewDimensions(800, 600)

	for _, m := range Modes() {
		first := m.CalculateLayout(in, ws, "b")
		second := m.CalculateLayout(in, ws, "b")
		assert.Equal(t, first, second, "mode %s must have no hidden state", m)
	}
}

func TestMode_OutputMirrorsInputOrder(t *testing.T) {
	in := docs("d1", "d2", "d3", "d4")
	ws := domain.NewDimensions(1200, 900)

	for _, m := range Modes() {
		results := m.CalculateLayout(in, ws, "")
		require.Len(t, results, len(in), "mode %s", m)
		for i, r := range results {
			assert.Equal(t, in[i].ID, r.ID, "mode %s index %d", m, i)
		}
	}
}

func TestMode_StrategyRegisteredForEveryMode(t *testing.T) {
	for _, m := range Modes() {
		assert.NotPanics(t, func() { m.Strategy() })
	}
}

func TestMode_UnmappedStrategyPanics(t *testing.T) {
	bad := Mode{t: ModeType("cascade")}
	assert.Panics(t, func() { bad.Strategy() })
}
