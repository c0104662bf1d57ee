package loam

// WorkspaceMetadata represents the frontmatter of an Easel workspace document.
// It uses "mapstructure" tags to match standard frontmatter/YAML keys.
type WorkspaceMetadata struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`

	// Mode is the layout mode token ("stacked", "grid", "freeform").
	Mode string `json:"mode" mapstructure:"mode"`

	// Workspace bounds.
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`

	// Documents is the ordered list of open documents.
	Documents []DocumentMetadata `json:"documents" mapstructure:"documents"`
}

// DocumentMetadata describes one open document in the workspace frontmatter.
type DocumentMetadata struct {
	ID     string  `json:"id" mapstructure:"id"`
	X      float64 `json:"x" mapstructure:"x"`
	Y      float64 `json:"y" mapstructure:"y"`
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
	Active bool    `json:"active" mapstructure:"active"`
	ZIndex int     `json:"z_index" mapstructure:"z_index"`
}
