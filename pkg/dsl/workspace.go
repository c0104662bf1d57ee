package dsl

import "github.com/aretw0/easel/pkg/domain"

// WorkspaceBuilder provides a fluent API for configuring one workspace.
type WorkspaceBuilder struct {
	state   *domain.WorkspaceState
	builder *Builder
}

// Name sets the display name of the workspace.
func (w *WorkspaceBuilder) Name(name string) *WorkspaceBuilder {
	w.state.Name = name
	return w
}

// Size sets the workspace bounds.
func (w *WorkspaceBuilder) Size(width, height float64) *WorkspaceBuilder {
	w.state.Size = domain.NewDimensions(width, height)
	return w
}

// Mode sets the layout mode token. Unknown tokens surface at layout time,
// not here; use Stacked/Grid/Freeform for the known ones.
func (w *WorkspaceBuilder) Mode(mode string) *WorkspaceBuilder {
	w.state.Mode = mode
	return w
}

// Stacked switches the workspace to stacked layout.
func (w *WorkspaceBuilder) Stacked() *WorkspaceBuilder {
	return w.Mode("stacked")
}

// Grid switches the workspace to grid layout.
func (w *WorkspaceBuilder) Grid() *WorkspaceBuilder {
	return w.Mode("grid")
}

// Freeform switches the workspace to freeform layout.
func (w *WorkspaceBuilder) Freeform() *WorkspaceBuilder {
	return w.Mode("freeform")
}

// Meta attaches a host annotation to the workspace.
func (w *WorkspaceBuilder) Meta(key string, value any) *WorkspaceBuilder {
	if w.state.Meta == nil {
		w.state.Meta = make(map[string]any)
	}
	w.state.Meta[key] = value
	return w
}

// Open appends an open document and returns its builder.
func (w *WorkspaceBuilder) Open(id string) *DocumentBuilder {
	w.state.Documents = append(w.state.Documents, domain.DocumentLayoutInfo{
		ID: domain.DocumentCaddyID(id),
	})
	return &DocumentBuilder{
		workspace: w,
		index:     len(w.state.Documents) - 1,
	}
}

// Build returns the underlying workspace state.
// This is primarily used by the Builder, but exposed for advanced usage.
func (w *WorkspaceBuilder) Build() *domain.WorkspaceState {
	return w.state
}

// DocumentBuilder configures one open document within a workspace.
type DocumentBuilder struct {
	workspace *WorkspaceBuilder
	index     int
}

func (d *DocumentBuilder) doc() *domain.DocumentLayoutInfo {
	return &d.workspace.state.Documents[d.index]
}

// At sets the stored position of the document.
func (d *DocumentBuilder) At(x, y float64) *DocumentBuilder {
	d.doc().CurrentPosition = domain.NewPosition(x, y)
	return d
}

// Sized sets the stored dimensions of the document.
func (d *DocumentBuilder) Sized(width, height float64) *DocumentBuilder {
	d.doc().CurrentDimensions = domain.NewDimensions(width, height)
	return d
}

// Active marks the document as the active one.
func (d *DocumentBuilder) Active() *DocumentBuilder {
	d.doc().IsActive = true
	return d
}

// Z sets the stacking order of the document.
func (d *DocumentBuilder) Z(z int) *DocumentBuilder {
	d.doc().ZIndex = z
	return d
}

// Open appends a sibling document, ending this document's configuration.
func (d *DocumentBuilder) Open(id string) *DocumentBuilder {
	return d.workspace.Open(id)
}

// Done returns to the workspace builder.
func (d *DocumentBuilder) Done() *WorkspaceBuilder {
	return d.workspace
}
