package domain

// DocumentCaddyID uniquely identifies an open document in the workspace.
// Equality is identity-based; ordering carries no meaning.
type DocumentCaddyID string

// String returns the raw identifier.
func (id DocumentCaddyID) String() string { return string(id) }

// DocumentLayoutInfo is a document's state as given to a layout pass.
// It describes the document *before* the pass; the engine never mutates it.
type DocumentLayoutInfo struct {
	ID                DocumentCaddyID `json:"id" mapstructure:"id"`
	CurrentPosition   Position        `json:"current_position" mapstructure:"current_position"`
	CurrentDimensions Dimensions      `json:"current_dimensions" mapstructure:"current_dimensions"`
	IsActive          bool            `json:"is_active" mapstructure:"is_active"`
	ZIndex            int             `json:"z_index" mapstructure:"z_index"`
}

// DocumentLayoutResult is the computed renderable state for one document.
// Result sequences are index-aligned with their input: one result per input
// document, in the same order, with a matching ID.
type DocumentLayoutResult struct {
	ID         DocumentCaddyID `json:"id"`
	Position   Position        `json:"position"`
	Dimensions Dimensions      `json:"dimensions"`
	ZIndex     int             `json:"z_index"`
	IsVisible  bool            `json:"is_visible"`
}
