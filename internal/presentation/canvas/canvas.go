// Package canvas sketches document placements as a character grid, so a
// layout pass can be eyeballed in a terminal without a browser.
package canvas

import (
	"fmt"
	"strings"

	"github.com/aretw0/easel/pkg/domain"
)

const (
	defaultCols = 64
	defaultRows = 20
)

// Sketch renders the visible documents of a layout pass onto an ASCII grid.
// The workspace is scaled to fit cols x rows characters; each document is
// drawn as a box labeled with its index in the result slice. Documents are
// drawn in z-index order so overlapping boxes show the topmost one.
func Sketch(results []domain.DocumentLayoutResult, workspace domain.Dimensions, cols, rows int) string {
	if cols <= 2 {
		cols = defaultCols
	}
	if rows <= 2 {
		rows = defaultRows
	}
	if workspace.Width <= 0 || workspace.Height <= 0 {
		return "(empty workspace)\n"
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	scaleX := float64(cols) / workspace.Width
	scaleY := float64(rows) / workspace.Height

	for _, idx := range drawOrder(results) {
		res := results[idx]
		if !res.IsVisible {
			continue
		}
		drawBox(grid, res, idx, scaleX, scaleY)
	}

	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("-", cols) + "+\n")
	for _, row := range grid {
		sb.WriteString("|")
		sb.WriteString(string(row))
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", cols) + "+\n")

	for i, res := range results {
		marker := label(i)
		state := "hidden"
		if res.IsVisible {
			state = fmt.Sprintf("(%g, %g) %gx%g z=%d",
				res.Position.X, res.Position.Y,
				res.Dimensions.Width, res.Dimensions.Height, res.ZIndex)
		}
		fmt.Fprintf(&sb, " %s: %s %s\n", marker, res.ID, state)
	}

	return sb.String()
}

// drawOrder returns result indexes sorted by ascending z-index, stable on
// the original order, so higher documents overwrite lower ones.
func drawOrder(results []domain.DocumentLayoutResult) []int {
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	// Insertion sort keeps the slice's tie order without pulling in sort.Slice.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && results[order[j-1]].ZIndex > results[order[j]].ZIndex; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	return order
}

func drawBox(grid [][]rune, res domain.DocumentLayoutResult, idx int, scaleX, scaleY float64) {
	rows := len(grid)
	cols := len(grid[0])

	x0 := clampInt(int(res.Position.X*scaleX), 0, cols-1)
	y0 := clampInt(int(res.Position.Y*scaleY), 0, rows-1)
	x1 := clampInt(int((res.Position.X+res.Dimensions.Width)*scaleX), x0, cols-1)
	y1 := clampInt(int((res.Position.Y+res.Dimensions.Height)*scaleY), y0, rows-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			edge := y == y0 || y == y1 || x == x0 || x == x1
			if edge {
				grid[y][x] = '#'
			} else {
				grid[y][x] = '.'
			}
		}
	}

	// Label the top-left corner interior when there is room.
	if y0+1 <= y1-1 && x0+1 <= x1-1 {
		grid[y0+1][x0+1] = rune(label(idx)[0])
	}
}

func label(idx int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return string(letters[idx%len(letters)])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
