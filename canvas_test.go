package outboard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImageCanvasClear(t *testing.T) {
	canvas := NewImageCanvas()
	if err := canvas.Init(16, 16, "clear"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer canvas.Close()

	canvas.Clear(NewColor(255, 0, 0, 255))

	img := canvas.Image()
	if img == nil {
		t.Fatal("Image() returned nil after Init")
	}
	r, g, b, a := img.At(8, 8).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel after red clear = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestImageCanvasDrawTextWithoutFont(t *testing.T) {
	canvas := NewImageCanvas()
	if err := canvas.Init(32, 32, "text"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer canvas.Close()

	canvas.Clear(NewColor(255, 255, 255, 255))
	canvas.DrawText("3.14159", 2, 16, 12, NewColor(0, 0, 0, 255))

	// No font configured, so DrawText is a no-op and the surface stays
	// white.
	r, g, b, _ := canvas.Image().At(4, 14).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("surface changed by DrawText without a font: (%#x, %#x, %#x)", r, g, b)
	}
}

func TestImageCanvasLifecycle(t *testing.T) {
	canvas := NewImageCanvas()

	// Drawing before Init must be harmless.
	canvas.Clear(NewColor(0, 0, 0, 255))
	if canvas.Image() != nil {
		t.Error("Image() before Init should be nil")
	}

	if err := canvas.Init(8, 8, "demo"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := canvas.Init(8, 8, "demo"); err == nil {
		t.Error("second Init should fail")
	}

	if canvas.ShouldClose() {
		t.Error("ShouldClose true before Close")
	}
	if err := canvas.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !canvas.ShouldClose() {
		t.Error("ShouldClose false after Close")
	}
	if err := canvas.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	// Drawing after Close must be harmless.
	canvas.Clear(NewColor(0, 0, 0, 255))
	canvas.DrawText("x", 0, 0, 10, NewColor(0, 0, 0, 255))
}

func TestImageCanvasInitValidation(t *testing.T) {
	canvas := NewImageCanvas()
	if err := canvas.Init(0, 8, "bad"); err == nil {
		t.Error("Init with zero width should fail")
	}
	if err := canvas.Init(8, -1, "bad"); err == nil {
		t.Error("Init with negative height should fail")
	}
}

func TestImageCanvasMissingFont(t *testing.T) {
	canvas := NewImageCanvas(WithFontFile(filepath.Join(t.TempDir(), "missing.ttf")))
	if err := canvas.Init(8, 8, "font"); err == nil {
		t.Error("Init with a missing font file should fail")
	}
}

func TestImageCanvasSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.png")
	canvas := NewImageCanvas(WithSnapshot(path))
	if err := canvas.Init(16, 16, "snap"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	canvas.Clear(NewColor(0, 128, 255, 255))
	if err := canvas.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("snapshot file is empty")
	}
}
