package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"NotesBuddy/internal/render"
)

// A4 landscape printable area in millimetres, minus a small margin.
const (
	pdfPageWidth  = 297.0
	pdfPageHeight = 210.0
	pdfMargin     = 10.0
)

// PDF writes the ink layer of snap as a single-page A4 landscape PDF
// named NotesBuddy<year>.pdf, scaled to fit the printable area.
func (e *Exporter) PDF(snap Snapshot) (string, error) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return "", fmt.Errorf("surface has no size")
	}
	fit := pdfScale(snap.Width, snap.Height)

	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()
	if snap.Dark {
		p.SetFillColor(30, 30, 46)
		p.Rect(0, 0, pdfPageWidth, pdfPageHeight, "F")
		p.SetDrawColor(234, 234, 234)
	} else {
		p.SetDrawColor(26, 26, 46)
	}
	p.SetLineWidth(0.5)
	p.SetLineCapStyle("round")

	for _, st := range snap.Paths {
		for i := 1; i < len(st.Points); i++ {
			p.Line(
				pdfMargin+float64(st.Points[i-1].X)*fit, pdfMargin+float64(st.Points[i-1].Y)*fit,
				pdfMargin+float64(st.Points[i].X)*fit, pdfMargin+float64(st.Points[i].Y)*fit,
			)
		}
	}

	out := filepath.Join(e.OutDir, fmt.Sprintf("%s%d.pdf", filePrefix, e.Now().Year()))
	if err := p.OutputFileAndClose(out); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return out, nil
}

func pdfScale(w, h float32) float64 {
	sx := (pdfPageWidth - 2*pdfMargin) / float64(w)
	sy := (pdfPageHeight - 2*pdfMargin) / float64(h)
	if sx < sy {
		return sx
	}
	return sy
}

// SVG writes the ink layer of snap as NotesBuddy<year>.svg at native
// surface coordinates. Single-point strokes stay in the document as
// bare move commands, matching their invisible raster rendering.
func (e *Exporter) SVG(snap Snapshot) (string, error) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return "", fmt.Errorf("surface has no size")
	}
	background, ink := "#fdfdf8", "#1a1a2e"
	if snap.Dark {
		background, ink = "#1e1e2e", "#eaeaea"
	}

	out := filepath.Join(e.OutDir, fmt.Sprintf("%s%d.svg", filePrefix, e.Now().Year()))
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create svg: %w", err)
	}
	defer f.Close()

	err = render.WriteSVG(f, render.Page{
		Width:       snap.Width,
		Height:      snap.Height,
		Background:  background,
		Ink:         ink,
		StrokeWidth: inkStrokeWidth,
		Paths:       snap.Paths,
	})
	if err != nil {
		return "", err
	}
	return out, nil
}
