package render

import (
	"fmt"
	"io"

	"NotesBuddy/internal/state"
)

// Page describes the ink layer for the SVG writer.
type Page struct {
	Width       float32
	Height      float32
	Background  string // CSS color for the paper fill
	Ink         string // CSS color for stroke outlines
	StrokeWidth float32
	Paths       []state.Path
}

// WriteSVG emits the ink layer as a standalone SVG document, one
// <path> element per committed stroke, in commit order.
func WriteSVG(w io.Writer, page Page) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		page.Width, page.Height, page.Width, page.Height)
	if err != nil {
		return fmt.Errorf("write svg header: %w", err)
	}
	if _, err = fmt.Fprintf(w, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", page.Background); err != nil {
		return fmt.Errorf("write svg background: %w", err)
	}
	for _, p := range page.Paths {
		_, err = fmt.Fprintf(w,
			`  <path id="%s" d="%s" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			p.ID, PathData(p.Points), page.Ink, page.StrokeWidth)
		if err != nil {
			return fmt.Errorf("write svg path %s: %w", p.ID, err)
		}
	}
	if _, err = io.WriteString(w, "</svg>\n"); err != nil {
		return fmt.Errorf("write svg footer: %w", err)
	}
	return nil
}
