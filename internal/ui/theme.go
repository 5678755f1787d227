package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Paper palette. The export package carries the same fills for its
// capture backgrounds.
var (
	lightPaper = color.NRGBA{R: 0xFD, G: 0xFD, B: 0xF8, A: 0xFF}
	lightInk   = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 0xFF}
	lightRule  = color.NRGBA{R: 0xC9, G: 0xDA, B: 0xE8, A: 0xFF}
	darkPaper  = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x2E, A: 0xFF}
	darkInk    = color.NRGBA{R: 0xEA, G: 0xEA, B: 0xEA, A: 0xFF}
	darkRule   = color.NRGBA{R: 0x3A, G: 0x3A, B: 0x52, A: 0xFF}
)

// notebookTheme pins the Fyne theme to one variant so the widget
// palette follows the persisted preference instead of the OS setting.
type notebookTheme struct {
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*notebookTheme)(nil)

func (t *notebookTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *notebookTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *notebookTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *notebookTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

func applyTheme(a fyne.App, dark bool) {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	a.Settings().SetTheme(&notebookTheme{variant: variant})
}
