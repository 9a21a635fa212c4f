package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestTourThemeVariants(t *testing.T) {
	test.NewTempApp(t)

	dark := NewTourTheme("dark")
	light := NewTourTheme("light")

	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))

	system := NewTourTheme("system")
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		system.Color(theme.ColorNameBackground, theme.VariantLight))

	assert.Equal(t, float32(13), NewTourTheme("").Size(theme.SizeNameText))
}
