package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ToolbarActions wires the toolbar buttons to the page.
type ToolbarActions struct {
	Clear          func()
	ToggleTheme    func()
	InsertTemplate func(Template)
	ExportPNG      func()
	ExportSVG      func()
	ExportPDF      func()
}

// NewToolbar assembles the control strip shown above the page. The
// whole strip is hidden while a capture is in flight so the exported
// image shows only the page itself.
func NewToolbar(a ToolbarActions) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), a.Clear),          // clear ink
		widget.NewToolbarAction(theme.ColorPaletteIcon(), a.ToggleTheme), // light/dark
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.ExportPNG), // PNG capture
	)

	templates := Templates()
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	templateSelect := widget.NewSelect(names, func(name string) {
		for _, t := range templates {
			if t.Name == name {
				a.InsertTemplate(t)
				return
			}
		}
	})
	templateSelect.PlaceHolder = "Template"

	return container.NewHBox(
		widget.NewLabel("Page:"),
		tb,
		widget.NewSeparator(),
		templateSelect,
		layout.NewSpacer(),
		widget.NewButton("SVG", a.ExportSVG),
		widget.NewButton("PDF", a.ExportPDF),
	)
}
