package easel

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/layout"
)

// Runner formats layout passes for display using provided IO.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner. Set Output before calling Print methods.
func NewRunner() *Runner {
	return &Runner{}
}

// PrintLayout writes a markdown summary of one layout pass.
func (r *Runner) PrintLayout(mode layout.Mode, results []domain.DocumentLayoutResult) error {
	writer := r.Output
	if writer == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	var b strings.Builder
	if !r.Headless {
		fmt.Fprintf(&b, "# Layout (%s)\n\n", mode)
	}

	if len(results) == 0 {
		b.WriteString("_No open documents._\n")
	} else {
		b.WriteString("| Document | Position | Size | Z | Visible |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, res := range results {
			visible := "no"
			if res.IsVisible {
				visible = "yes"
			}
			fmt.Fprintf(&b, "| %s | (%g, %g) | %g x %g | %d | %s |\n",
				res.ID,
				res.Position.X, res.Position.Y,
				res.Dimensions.Width, res.Dimensions.Height,
				res.ZIndex, visible)
		}
	}

	output := b.String()
	if r.Renderer != nil {
		rendered, err := r.Renderer(output)
		if err == nil {
			output = rendered
		}
	}

	fmt.Fprintln(writer, strings.TrimSpace(output))
	return nil
}

// PrintModes writes the mode capability table.
func (r *Runner) PrintModes() error {
	writer := r.Output
	if writer == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	var b strings.Builder
	b.WriteString("| Mode | Drag | Resize | CSS Class |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, m := range layout.Modes() {
		fmt.Fprintf(&b, "| %s | %t | %t | %s |\n",
			m, m.SupportsDragging(), m.SupportsResizing(), m.CSSClassName())
	}

	output := b.String()
	if r.Renderer != nil {
		rendered, err := r.Renderer(output)
		if err == nil {
			output = rendered
		}
	}

	fmt.Fprintln(writer, strings.TrimSpace(output))
	return nil
}
