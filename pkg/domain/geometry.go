package domain

import "fmt"

// Position is an immutable point in workspace coordinates.
// The zero value is the origin.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin returns the top-left corner of the workspace.
func Origin() Position {
	return Position{}
}

// NewPosition creates a position at explicit coordinates.
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// ConstrainToBounds clamps the position into [0, size.Width] x [0, size.Height].
// It never fails: out-of-range coordinates are pulled back to the nearest edge.
func (p Position) ConstrainToBounds(size Dimensions) Position {
	return Position{
		X: clamp(p.X, 0, size.Width),
		Y: clamp(p.Y, 0, size.Height),
	}
}

// Dimensions is an immutable width/height pair.
// Invariant: both axes are non-negative.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewDimensions creates a validated Dimensions value.
// Negative inputs are a programmer error: callers control both operands, so
// we fail fast instead of silently clamping.
func NewDimensions(width, height float64) Dimensions {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("domain: negative dimensions %gx%g", width, height))
	}
	return Dimensions{Width: width, Height: height}
}

// MinimumDimensions returns the smallest renderable size.
// It is used for documents that are present but not meaningfully visible
// (e.g. hidden documents that must stay addressable for tab UIs).
func MinimumDimensions() Dimensions {
	return Dimensions{Width: 1, Height: 1}
}

// ConstrainToMaximum clamps each axis independently to at most the
// corresponding axis of max. The result is never negative.
func (d Dimensions) ConstrainToMaximum(max Dimensions) Dimensions {
	return Dimensions{
		Width:  clamp(d.Width, 0, max.Width),
		Height: clamp(d.Height, 0, max.Height),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
