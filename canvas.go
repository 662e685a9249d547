package outboard

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface demo programs render to. It mirrors the
// operation set of the native drawing library the original demos wrapped:
// initialize, clear, draw, close. Implementations own the underlying
// surface; callers hold only this capability and never touch the library
// behind it.
//
// Canvas implementations are not required to be safe for concurrent use.
type Canvas interface {
	// Init allocates the drawing surface. It must be called exactly once
	// before any drawing operation.
	Init(width, height int, title string) error

	// Clear fills the whole surface with the given color.
	Clear(c Color)

	// DrawText draws s with its baseline at (x, y) in the given point
	// size. Implementations without a configured font treat this as a
	// no-op.
	DrawText(s string, x, y, size int, c Color)

	// ShouldClose reports whether the surface has been asked to close.
	ShouldClose() bool

	// Close releases the surface. Drawing after Close is a no-op.
	// Close is idempotent.
	Close() error
}

// ImageCanvas implements Canvas on an offscreen pixmap rendered by the gg
// 2D library. There is no window-system integration: the surface lives in
// memory, and an optional PNG snapshot is written when the canvas closes.
type ImageCanvas struct {
	ctx      *gg.Context
	font     *text.FontSource
	fontPath string
	snapshot string
	title    string
	closed   bool
}

// ImageCanvasOption configures an ImageCanvas before Init.
type ImageCanvasOption func(*ImageCanvas)

// WithFontFile sets the TrueType/OpenType font file used by DrawText.
// Without a font, DrawText is a no-op.
func WithFontFile(path string) ImageCanvasOption {
	return func(ic *ImageCanvas) { ic.fontPath = path }
}

// WithSnapshot writes the surface to the given PNG path when the canvas
// is closed.
func WithSnapshot(path string) ImageCanvasOption {
	return func(ic *ImageCanvas) { ic.snapshot = path }
}

// NewImageCanvas creates an uninitialized offscreen canvas. Call Init to
// allocate the surface.
func NewImageCanvas(opts ...ImageCanvasOption) *ImageCanvas {
	ic := &ImageCanvas{}
	for _, opt := range opts {
		opt(ic)
	}
	return ic
}

// Init allocates the pixmap and loads the configured font, if any.
func (ic *ImageCanvas) Init(width, height int, title string) error {
	if ic.ctx != nil || ic.closed {
		return fmt.Errorf("canvas %q: already initialized", ic.title)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas %q: invalid size %dx%d", title, width, height)
	}

	if ic.fontPath != "" {
		source, err := text.NewFontSourceFromFile(ic.fontPath)
		if err != nil {
			return fmt.Errorf("canvas %q: loading font: %w", title, err)
		}
		ic.font = source
	}

	ic.ctx = gg.NewContext(width, height)
	ic.title = title
	return nil
}

// Clear fills the surface with c. Before Init or after Close it does
// nothing.
func (ic *ImageCanvas) Clear(c Color) {
	if ic.ctx == nil || ic.closed {
		return
	}
	ic.ctx.ClearWithColor(c.rgba())
}

// DrawText draws s at baseline (x, y). Without a configured font it does
// nothing, matching the underlying library's contract.
func (ic *ImageCanvas) DrawText(s string, x, y, size int, c Color) {
	if ic.ctx == nil || ic.closed || ic.font == nil {
		return
	}
	ic.ctx.SetFont(ic.font.Face(float64(size)))
	ic.ctx.SetColor(c.Std())
	ic.ctx.DrawString(s, float64(x), float64(y))
}

// ShouldClose reports whether Close has been called. An offscreen surface
// never requests closing on its own.
func (ic *ImageCanvas) ShouldClose() bool {
	return ic.closed
}

// Image returns the current surface contents. It returns nil before Init.
func (ic *ImageCanvas) Image() image.Image {
	if ic.ctx == nil {
		return nil
	}
	return ic.ctx.Image()
}

// Close writes the snapshot (if configured) and releases the surface.
func (ic *ImageCanvas) Close() error {
	if ic.closed || ic.ctx == nil {
		ic.closed = true
		return nil
	}
	ic.closed = true

	var snapErr error
	if ic.snapshot != "" {
		snapErr = ic.ctx.SavePNG(ic.snapshot)
	}
	if err := ic.ctx.Close(); err != nil {
		return err
	}
	return snapErr
}
