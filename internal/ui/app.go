package ui

import (
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"NotesBuddy/internal/export"
	"NotesBuddy/internal/state"
	"NotesBuddy/internal/storage"
)

const autosaveDelay = 600 * time.Millisecond

// Deps carries the collaborators main constructed.
type Deps struct {
	Settings storage.Store
	Strokes  *state.Store
	Exporter *export.Exporter
}

// RunApp assembles the notebook window and blocks until it closes.
func RunApp(deps Deps) {
	myApp := app.New()
	window := myApp.NewWindow("NotesBuddy")
	window.Resize(fyne.NewSize(1100, 760))

	dark := false
	if v, ok := deps.Settings.Get(storage.KeyTheme); ok && v == storage.ThemeDark {
		dark = true
	}
	applyTheme(myApp, dark)

	book := NewNotebookWidget(deps.Strokes)
	book.SetDark(dark)

	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder("Write your notes here…")
	entry.Wrapping = fyne.TextWrapWord
	if content, ok := deps.Settings.Get(storage.KeyNoteContent); ok {
		entry.SetText(storage.ClampContent(content))
	}

	status := widget.NewLabel("Ready")
	saver := storage.NewAutosaver(deps.Settings, storage.KeyNoteContent, autosaveDelay)
	saver.OnSaved = func() {
		fyne.Do(func() {
			status.SetText("Saved " + time.Now().Format("15:04:05"))
		})
	}

	entry.OnChanged = func(text string) {
		if clamped := storage.ClampContent(text); clamped != text {
			// Re-entrant SetText fires OnChanged again with the
			// clamped value, which then schedules the save.
			entry.SetText(clamped)
			return
		}
		saver.Update(text)
	}

	var toolbar fyne.CanvasObject
	toolbar = NewToolbar(ToolbarActions{
		Clear: func() {
			book.Clear()
			status.SetText("Page cleared")
		},
		ToggleTheme: func() {
			dark = !dark
			applyTheme(myApp, dark)
			book.SetDark(dark)
			value := storage.ThemeLight
			if dark {
				value = storage.ThemeDark
			}
			if err := deps.Settings.Set(storage.KeyTheme, value); err != nil {
				logrus.WithError(err).Warn("theme preference not saved")
			}
		},
		InsertTemplate: func(t Template) {
			entry.SetText(storage.ClampContent(t.Body))
		},
		ExportPNG: func() {
			deps.Exporter.PNG(book.Snapshot(entry.Text), func(path string, err error) {
				fyne.Do(func() {
					switch {
					case err != nil:
						status.SetText("Export failed")
					case path != "":
						status.SetText("Exported " + filepath.Base(path))
					}
				})
			})
		},
		ExportSVG: func() {
			path, err := deps.Exporter.SVG(book.Snapshot(entry.Text))
			reportExport(status, path, err)
		},
		ExportPDF: func() {
			path, err := deps.Exporter.PDF(book.Snapshot(entry.Text))
			reportExport(status, path, err)
		},
	})

	deps.Exporter.HideControls = func() {
		toolbar.Hide()
	}
	deps.Exporter.RestoreControls = func() {
		fyne.Do(toolbar.Show)
	}

	split := container.NewHSplit(book, entry)
	split.SetOffset(0.55)

	window.SetContent(container.NewBorder(toolbar, status, nil, nil, split))
	window.SetOnClosed(func() {
		// Don't lose an edit still sitting in the debounce window.
		saver.Flush()
	})
	window.ShowAndRun()
}

func reportExport(status *widget.Label, path string, err error) {
	if err != nil {
		logrus.WithError(err).Error("export failed")
		status.SetText("Export failed")
		return
	}
	status.SetText("Exported " + filepath.Base(path))
}
