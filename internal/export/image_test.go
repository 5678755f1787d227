package export_test

import (
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"NotesBuddy/internal/export"
	"NotesBuddy/internal/state"
)

func fixedYear(t *testing.T) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
}

func testExporter(t *testing.T) *export.Exporter {
	t.Helper()
	e := export.New(t.TempDir())
	e.Sleep = func(time.Duration) {}
	e.Now = fixedYear(t)
	return e
}

func waitDone(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("capture did not finish")
	}
}

func samplePaths() []state.Path {
	return []state.Path{
		{ID: "a", Points: []state.Point{{X: 10, Y: 10}, {X: 80, Y: 40}, {X: 120, Y: 90}}},
		{ID: "b", Points: []state.Point{{X: 5, Y: 5}}},
	}
}

// ─────────────────────────────────────────────────────────────
// PNG capture
// ─────────────────────────────────────────────────────────────

func TestPNG_WritesBoundedFile(t *testing.T) {
	e := testExporter(t)
	done := make(chan struct{})
	var got string
	e.PNG(export.Snapshot{
		Width: 640, Height: 480,
		Paths: samplePaths(),
		Text:  "first line\n\nthird line",
	}, func(path string, err error) {
		if err != nil {
			t.Errorf("capture failed: %v", err)
		}
		got = path
		close(done)
	})
	waitDone(t, done)

	if filepath.Base(got) != "NotesBuddy2026.png" {
		t.Fatalf("unexpected filename %q", got)
	}
	f, err := os.Open(got)
	if err != nil {
		t.Fatalf("open capture: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode capture: %v", err)
	}
	// 640x480 scaled by min(1920/640, 1080/480) = 2.25 → 1440x1080.
	if cfg.Width != 1440 || cfg.Height != 1080 {
		t.Errorf("expected 1440x1080, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPNG_UpscalesSmallSurfaces(t *testing.T) {
	// Scale is not clamped to 1: a 100x100 surface is upscaled by
	// min(19.2, 10.8) = 10.8 → 1080x1080.
	e := testExporter(t)
	done := make(chan struct{})
	var got string
	e.PNG(export.Snapshot{Width: 100, Height: 100}, func(path string, err error) {
		got = path
		close(done)
	})
	waitDone(t, done)

	f, err := os.Open(got)
	if err != nil {
		t.Fatalf("open capture: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode capture: %v", err)
	}
	if cfg.Width != 1080 || cfg.Height != 1080 {
		t.Errorf("expected 1080x1080, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPNG_SingleFlight(t *testing.T) {
	e := testExporter(t)
	release := make(chan struct{})
	e.Sleep = func(time.Duration) { <-release }

	var attempts atomic.Int32
	done := make(chan struct{})
	e.PNG(export.Snapshot{Width: 200, Height: 100}, func(string, error) {
		attempts.Add(1)
		close(done)
	})
	// Second request while the first is still settling: silent no-op.
	e.PNG(export.Snapshot{Width: 200, Height: 100}, func(string, error) {
		attempts.Add(1)
	})
	close(release)
	waitDone(t, done)

	if got := attempts.Load(); got != 1 {
		t.Errorf("expected exactly one capture, got %d", got)
	}
	entries, err := os.ReadDir(e.OutDir)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}
}

func TestPNG_GuardClearsAfterCompletion(t *testing.T) {
	e := testExporter(t)

	first := make(chan struct{})
	e.PNG(export.Snapshot{Width: 200, Height: 100}, func(string, error) { close(first) })
	waitDone(t, first)

	second := make(chan struct{})
	e.PNG(export.Snapshot{Width: 200, Height: 100}, func(string, error) { close(second) })
	waitDone(t, second)
}

func TestPNG_ControlsRestoredOnAbort(t *testing.T) {
	e := testExporter(t)
	hidden, restored := false, false
	e.HideControls = func() { hidden = true }
	e.RestoreControls = func() { restored = true }

	done := make(chan struct{})
	// Zero-size surface: capture aborts quietly.
	e.PNG(export.Snapshot{}, func(path string, err error) {
		if err != nil {
			t.Errorf("abort should not surface an error, got %v", err)
		}
		if path != "" {
			t.Errorf("abort should not produce a file, got %q", path)
		}
		close(done)
	})
	waitDone(t, done)

	if !hidden || !restored {
		t.Errorf("controls not bracketed: hidden=%v restored=%v", hidden, restored)
	}
	entries, _ := os.ReadDir(e.OutDir)
	if len(entries) != 0 {
		t.Errorf("aborted capture must not write files, found %d", len(entries))
	}
}

func TestPNG_WriteFailureLeavesNoPartialFile(t *testing.T) {
	e := testExporter(t)
	e.OutDir = filepath.Join(e.OutDir, "does", "not", "exist")

	done := make(chan struct{})
	e.PNG(export.Snapshot{Width: 200, Height: 100}, func(path string, err error) {
		if err == nil {
			t.Error("expected an error writing into a missing directory")
		}
		if path != "" {
			t.Errorf("failed capture must not report a file, got %q", path)
		}
		close(done)
	})
	waitDone(t, done)

	// Guard must be clear again after the failure.
	again := make(chan struct{})
	e.OutDir = t.TempDir()
	e.PNG(export.Snapshot{Width: 200, Height: 100}, func(path string, err error) {
		if err != nil {
			t.Errorf("capture after failure: %v", err)
		}
		close(again)
	})
	waitDone(t, again)
}

// ─────────────────────────────────────────────────────────────
// SVG / PDF renditions
// ─────────────────────────────────────────────────────────────

func TestSVG_WritesDocument(t *testing.T) {
	e := testExporter(t)
	out, err := e.SVG(export.Snapshot{Width: 300, Height: 200, Paths: samplePaths()})
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if filepath.Base(out) != "NotesBuddy2026.svg" {
		t.Errorf("unexpected filename %q", out)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty svg document")
	}
}

func TestPDF_WritesDocument(t *testing.T) {
	e := testExporter(t)
	out, err := e.PDF(export.Snapshot{Width: 800, Height: 600, Paths: samplePaths(), Dark: true})
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if filepath.Base(out) != "NotesBuddy2026.pdf" {
		t.Errorf("unexpected filename %q", out)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat pdf: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty pdf document")
	}
}

func TestPDF_RejectsUnmountedSurface(t *testing.T) {
	e := testExporter(t)
	if _, err := e.PDF(export.Snapshot{}); err == nil {
		t.Error("expected error for zero-size surface")
	}
	if _, err := e.SVG(export.Snapshot{}); err == nil {
		t.Error("expected error for zero-size surface")
	}
}
