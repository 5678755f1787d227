// Package export captures the composed notebook page (paper, ink
// layer, text layer) as files on disk.
package export

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"

	"NotesBuddy/internal/state"
)

const (
	// Output never exceeds these bounds; aspect ratio is preserved.
	// The scale is deliberately not clamped to 1, so small surfaces
	// are upscaled rather than captured at native resolution.
	maxOutputWidth  = 1920
	maxOutputHeight = 1080

	// settleDelay lets prior UI updates (hidden controls) flush
	// before the surface is rasterized.
	settleDelay = 100 * time.Millisecond

	filePrefix = "NotesBuddy"

	inkStrokeWidth = 2.5
	textFontSize   = 16.0
	textMargin     = 24.0
)

// Fixed capture fills per theme; the capture is never transparent.
var (
	lightPaper = gg.RGBA{R: 0.992, G: 0.992, B: 0.973, A: 1}
	lightInk   = gg.RGBA{R: 0.102, G: 0.102, B: 0.180, A: 1}
	darkPaper  = gg.RGBA{R: 0.118, G: 0.118, B: 0.180, A: 1}
	darkInk    = gg.RGBA{R: 0.918, G: 0.918, B: 0.918, A: 1}
)

// Snapshot is the composed page state as of export invocation time.
// Drawing that continues while a capture is in flight is not reflected.
type Snapshot struct {
	Width  float32
	Height float32
	Paths  []state.Path
	Text   string
	Dark   bool
}

// Exporter writes PNG captures of the notebook page. At most one
// capture runs at a time; requests made while one is in flight are
// silently dropped.
type Exporter struct {
	guard flightGuard

	// HideControls/RestoreControls bracket the capture so transient
	// toolbar chrome stays out of the output. Restore runs
	// unconditionally, on success and failure alike. Both may be nil.
	HideControls    func()
	RestoreControls func()

	// OutDir receives the exported files.
	OutDir string

	// Sleep implements the pre-capture settle delay; tests replace it.
	Sleep func(time.Duration)
	// Now supplies the calendar year for the output filename.
	Now func() time.Time
}

// New creates an Exporter writing into outDir.
func New(outDir string) *Exporter {
	return &Exporter{
		OutDir: outDir,
		Sleep:  time.Sleep,
		Now:    time.Now,
	}
}

// PNG captures snap to <OutDir>/NotesBuddy<year>.png on its own
// goroutine. done, if non-nil, receives the written path ("" when the
// capture aborted) after the attempt finishes. Capture failures are
// logged and swallowed; no partial file is ever produced.
func (e *Exporter) PNG(snap Snapshot, done func(path string, err error)) {
	if !e.guard.TryLock() {
		logrus.Debug("page capture already in flight, ignoring request")
		return
	}
	if e.HideControls != nil {
		e.HideControls()
	}
	go func() {
		var path string
		var err error
		defer func() {
			if e.RestoreControls != nil {
				e.RestoreControls()
			}
			e.guard.Unlock()
			if done != nil {
				done(path, err)
			}
		}()

		e.Sleep(settleDelay)
		path, err = e.writePNG(snap)
		if err != nil {
			logrus.WithError(err).Error("page capture failed")
			path = ""
		}
	}()
}

func (e *Exporter) writePNG(snap Snapshot) (string, error) {
	if snap.Width <= 0 || snap.Height <= 0 {
		// Surface not mounted yet: abort quietly, not an error.
		logrus.Warn("page capture skipped: surface has no size")
		return "", nil
	}

	scale := math.Min(
		maxOutputWidth/float64(snap.Width),
		maxOutputHeight/float64(snap.Height),
	)
	outW := int(math.Round(float64(snap.Width) * scale))
	outH := int(math.Round(float64(snap.Height) * scale))

	dc := gg.NewContext(outW, outH)
	paper, ink := palette(snap.Dark)
	dc.ClearWithColor(paper)
	dc.Scale(scale, scale)

	if err := drawInk(dc, snap.Paths, ink); err != nil {
		return "", err
	}
	// Text rendering bypasses the context transform, so it is laid
	// out in output coordinates with a pre-scaled face.
	dc.Identity()
	if err := drawText(dc, snap.Text, ink, scale); err != nil {
		return "", err
	}

	// Encode fully before touching the filesystem so a capture
	// failure never leaves a partial file behind.
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	name := fmt.Sprintf("%s%d.png", filePrefix, e.Now().Year())
	out := filepath.Join(e.OutDir, name)
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write capture: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file":  out,
		"size":  fmt.Sprintf("%dx%d", outW, outH),
		"scale": scale,
	}).Info("page captured")
	return out, nil
}

func palette(dark bool) (paper, ink gg.RGBA) {
	if dark {
		return darkPaper, darkInk
	}
	return lightPaper, lightInk
}

func drawInk(dc *gg.Context, paths []state.Path, ink gg.RGBA) error {
	dc.SetRGBA(ink.R, ink.G, ink.B, ink.A)
	dc.SetLineWidth(inkStrokeWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, p := range paths {
		if len(p.Points) < 2 {
			// Single-point strokes are degenerate and invisible.
			continue
		}
		dc.MoveTo(float64(p.Points[0].X), float64(p.Points[0].Y))
		for _, pt := range p.Points[1:] {
			dc.LineTo(float64(pt.X), float64(pt.Y))
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke path %s: %w", p.ID, err)
		}
	}
	return nil
}

// drawText renders the text layer as static lines. Every newline in
// the content produces a distinct visual line; blank lines still
// advance the baseline.
func drawText(dc *gg.Context, content string, ink gg.RGBA, scale float64) error {
	if content == "" {
		return nil
	}
	face, err := captureFace(textFontSize * scale)
	if err != nil {
		return fmt.Errorf("load capture font: %w", err)
	}
	dc.SetFont(face)
	dc.SetRGBA(ink.R, ink.G, ink.B, ink.A)

	m := face.Metrics()
	lineHeight := m.Ascent + m.Descent + m.LineGap
	margin := textMargin * scale
	y := margin + m.Ascent
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			dc.DrawString(line, margin, y)
		}
		y += lineHeight
	}
	return nil
}

var (
	fontOnce   sync.Once
	fontSource *ggtext.FontSource
	fontErr    error
)

func captureFace(size float64) (ggtext.Face, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = ggtext.NewFontSource(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return fontSource.Face(size), nil
}
