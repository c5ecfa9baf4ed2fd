package entities

// RenderOptions holds runtime options passed to renderers.
type RenderOptions struct {
	// ShowSizes adds the per-artifact size column where the format has one.
	ShowSizes bool
	// Indent overrides the JSON indentation; empty means two spaces.
	Indent string
	// RankDir overrides the DOT layout direction; empty means left-to-right.
	RankDir string
}
