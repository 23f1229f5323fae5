// Package theme resolves partial theme overrides into a complete, render-ready theme.
package theme

// Option is a labelled choice offered by theme pickers
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// PresetColors are the swatches offered next to the custom color picker
var PresetColors = []Option{
	{Label: "Red", Value: "#be123c"},
	{Label: "Crimson", Value: "#dc2626"},
	{Label: "Navy", Value: "#1e3a5f"},
	{Label: "Ocean", Value: "#0369a1"},
	{Label: "Forest", Value: "#166534"},
	{Label: "Slate", Value: "#334155"},
	{Label: "Purple", Value: "#7c3aed"},
	{Label: "Teal", Value: "#0d9488"},
	{Label: "Amber", Value: "#b45309"},
	{Label: "Indigo", Value: "#4338ca"},
}

// FontOptions are the font stacks offered by the picker
var FontOptions = []Option{
	{Label: "Inter", Value: "Inter, system-ui, sans-serif"},
	{Label: "Georgia", Value: "Georgia, Times New Roman, serif"},
	{Label: "Roboto", Value: "Roboto, Arial, sans-serif"},
	{Label: "Playfair", Value: `"Playfair Display", Georgia, serif`},
	{Label: "Merriweather", Value: "Merriweather, Georgia, serif"},
}

// LayoutOptions describe each layout for the picker
var LayoutOptions = []Option{
	{Label: "Classic", Value: string(LayoutClassic), Icon: "▬"},
	{Label: "Modern", Value: string(LayoutModern), Icon: "⊡"},
	{Label: "Minimal", Value: string(LayoutMinimal), Icon: "▭"},
}
