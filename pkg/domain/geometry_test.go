package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_ConstrainToBounds(t *testing.T) {
	ws := NewDimensions(800, 600)

	tests := []struct {
		name string
		in   Position
		want Position
	}{
		{"inside", NewPosition(100, 100), NewPosition(100, 100)},
		{"negative", NewPosition(-50, -10), Origin()},
		{"beyond", NewPosition(5000, 5000), NewPosition(800, 600)},
		{"edge", NewPosition(800, 600), NewPosition(800, 600)},
		{"mixed", NewPosition(-1, 900), NewPosition(0, 600)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ConstrainToBounds(ws))
		})
	}
}

func TestPosition_ConstrainToBounds_ZeroWorkspace(t *testing.T) {
	got := NewPosition(10, 10).ConstrainToBounds(Dimensions{})
	assert.Equal(t, Origin(), got)
}

func TestDimensions_ConstrainToMaximum(t *testing.T) {
	max := NewDimensions(300, 200)

	assert.Equal(t, NewDimensions(300, 200), NewDimensions(400, 400).ConstrainToMaximum(max))
	assert.Equal(t, NewDimensions(100, 200), NewDimensions(100, 250).ConstrainToMaximum(max))
	assert.Equal(t, NewDimensions(100, 50), NewDimensions(100, 50).ConstrainToMaximum(max))

	// Clamping to a zero box collapses both axes without going negative.
	assert.Equal(t, Dimensions{}, NewDimensions(400, 400).ConstrainToMaximum(Dimensions{}))
}

func TestNewDimensions_RejectsNegative(t *testing.T) {
	assert.Panics(t, func() { NewDimensions(-1, 10) })
	assert.Panics(t, func() { NewDimensions(10, -1) })
	assert.NotPanics(t, func() { NewDimensions(0, 0) })
}

func TestMinimumDimensions(t *testing.T) {
	min := MinimumDimensions()
	assert.Equal(t, 1.0, min.Width)
	assert.Equal(t, 1.0, min.Height)
}
