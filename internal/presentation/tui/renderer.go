package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders the markdown layout tables
// produced by the Runner as styled terminal output.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to passing the markdown through untouched.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
