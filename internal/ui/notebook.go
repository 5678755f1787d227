package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"NotesBuddy/internal/export"
	"NotesBuddy/internal/state"
)

const (
	inkStrokeWidth = 2.5
	ruleSpacing    = 28.0
)

// NotebookWidget is the drawing surface: a lined-paper background with
// a freehand ink layer on top. It owns the live-stroke sampler and
// commits finished gestures into the stroke store. One pointer at a
// time; there is no multi-touch support.
type NotebookWidget struct {
	widget.BaseWidget
	sampler *state.Sampler
	strokes *state.Store
	dark    bool

	// OnStroke, if set, observes each committed stroke.
	OnStroke func(state.Path)
}

var _ fyne.Widget = (*NotebookWidget)(nil)
var _ fyne.Draggable = (*NotebookWidget)(nil)
var _ desktop.Mouseable = (*NotebookWidget)(nil)
var _ desktop.Hoverable = (*NotebookWidget)(nil)

// NewNotebookWidget creates the surface drawing into strokes.
func NewNotebookWidget(strokes *state.Store) *NotebookWidget {
	n := &NotebookWidget{
		sampler: &state.Sampler{},
		strokes: strokes,
	}
	n.ExtendBaseWidget(n)
	return n
}

// SetDark switches the paper palette.
func (n *NotebookWidget) SetDark(dark bool) {
	n.dark = dark
	n.Refresh()
}

// Clear discards all committed ink. The text layer is unaffected.
func (n *NotebookWidget) Clear() {
	n.strokes.Reset()
	n.Refresh()
}

// Snapshot assembles the current composed page for export.
func (n *NotebookWidget) Snapshot(text string) export.Snapshot {
	size := n.Size()
	return export.Snapshot{
		Width:  size.Width,
		Height: size.Height,
		Paths:  n.strokes.All(),
		Text:   text,
		Dark:   n.dark,
	}
}

func (n *NotebookWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		n.sampler.Begin(state.Point{X: e.Position.X, Y: e.Position.Y})
		n.Refresh()
	}
}

func (n *NotebookWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		n.finish()
	}
}

func (n *NotebookWidget) Dragged(e *fyne.DragEvent) {
	if n.sampler.Active() {
		n.sampler.Extend(state.Point{X: e.Position.X, Y: e.Position.Y})
		n.Refresh()
	}
}

func (n *NotebookWidget) DragEnd() {
	n.finish()
}

// MouseOut ends the gesture exactly as pointer-up would; a stroke must
// not keep growing once the pointer leaves the surface.
func (n *NotebookWidget) MouseOut() {
	n.finish()
}

func (n *NotebookWidget) MouseIn(*desktop.MouseEvent)    {}
func (n *NotebookWidget) MouseMoved(*desktop.MouseEvent) {}

func (n *NotebookWidget) finish() {
	points, ok := n.sampler.End()
	if ok {
		p := n.strokes.Commit(points)
		if n.OnStroke != nil {
			n.OnStroke(p)
		}
	}
	n.Refresh()
}

func (n *NotebookWidget) palette() (paper, ink, rule color.Color) {
	if n.dark {
		return darkPaper, darkInk, darkRule
	}
	return lightPaper, lightInk, lightRule
}

func (n *NotebookWidget) CreateRenderer() fyne.WidgetRenderer {
	return &notebookRenderer{
		book:       n,
		background: canvas.NewRectangle(lightPaper),
	}
}

type notebookRenderer struct {
	book       *NotebookWidget
	background *canvas.Rectangle
}

func (r *notebookRenderer) Objects() []fyne.CanvasObject {
	paper, ink, rule := r.book.palette()
	r.background.FillColor = paper

	objects := []fyne.CanvasObject{r.background}

	size := r.book.Size()
	for y := float32(ruleSpacing); y < size.Height; y += ruleSpacing {
		line := canvas.NewLine(rule)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		objects = append(objects, line)
	}

	for _, p := range r.book.strokes.All() {
		objects = appendSegments(objects, p.Points, ink)
	}
	// The in-progress stroke renders every frame too.
	objects = appendSegments(objects, r.book.sampler.Live(), ink)

	return objects
}

func appendSegments(objects []fyne.CanvasObject, points []state.Point, ink color.Color) []fyne.CanvasObject {
	for i := 1; i < len(points); i++ {
		segment := canvas.NewLine(ink)
		segment.StrokeWidth = inkStrokeWidth
		segment.Position1 = fyne.NewPos(points[i-1].X, points[i-1].Y)
		segment.Position2 = fyne.NewPos(points[i].X, points[i].Y)
		objects = append(objects, segment)
	}
	return objects
}

func (r *notebookRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *notebookRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 320)
}

func (r *notebookRenderer) Refresh() {
	canvas.Refresh(r.book)
}

func (r *notebookRenderer) Destroy() {}
