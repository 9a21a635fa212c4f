package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TourTheme wraps the default Fyne theme with a fixed light or dark
// variant and slightly compact sizing for the control sidebar.
type TourTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewTourTheme creates a theme from a config name: "light", "dark" or
// "system". Unknown names select dark.
func NewTourTheme(name string) *TourTheme {
	t := &TourTheme{base: theme.DefaultTheme()}
	t.SetVariantName(name)
	return t
}

// SetVariantName updates the variant from a config name.
func (t *TourTheme) SetVariantName(name string) {
	t.system = false
	switch name {
	case "light":
		t.variant = theme.VariantLight
	case "system":
		t.system = true
	default:
		t.variant = theme.VariantDark
	}
}

// Color delegates to the base theme, forcing the stored variant unless
// the system variant is requested.
func (t *TourTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.system {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *TourTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *TourTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *TourTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
