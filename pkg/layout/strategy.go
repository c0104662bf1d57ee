package layout

import "github.com/aretw0/easel/pkg/domain"

// Strategy is the stateless algorithm bound to a layout mode. It converts
// per-document and workspace state into renderable geometry.
//
// Implementations must be pure: they read only their arguments, hold no
// per-call state, and are safe for concurrent use. The returned slice is
// index-aligned with the input (one result per document, same order,
// matching IDs).
type Strategy interface {
	// Calculate computes the renderable state for every document.
	// activeID optionally overrides which document is considered active;
	// the zero value means "no override" and strategies fall back to each
	// document's own IsActive flag.
	Calculate(docs []domain.DocumentLayoutInfo, workspace domain.Dimensions, activeID domain.DocumentCaddyID) []domain.DocumentLayoutResult

	// SupportsResizing reports whether the user may resize documents in this mode.
	SupportsResizing() bool

	// SupportsDragging reports whether the user may drag documents in this mode.
	SupportsDragging() bool

	// CSSClassName returns the style tag consumed by the rendering layer.
	CSSClassName() string
}

// UserAction is a manual gesture performed on a document.
type UserAction string

const (
	ActionDrag   UserAction = "drag"
	ActionResize UserAction = "resize"
)
