// Package canvas is a raster Surface for the falling-glyph background, used
// to render still frames to PNG.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	// Background is the page color the fade overlay converges to.
	Background = color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	// Foreground is the glyph color.
	Foreground = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
)

// Surface draws glyphs onto an in-memory image.
type Surface struct {
	dc   *gg.Context
	face font.Face
}

// New loads the monospace face at glyphSize pixels.
func New(glyphSize int) (*Surface, error) {
	if glyphSize <= 0 {
		return nil, fmt.Errorf("glyph size must be positive, got %d", glyphSize)
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(glyphSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Surface{face: face}, nil
}

// Resize replaces the image with a blank one of the new size. A
// non-positive size leaves no image and drawing becomes a no-op.
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		s.dc = nil
		return
	}
	s.dc = gg.NewContext(width, height)
	s.dc.SetFontFace(s.face)
	s.dc.SetColor(Background)
	s.dc.Clear()
}

// Fade paints a translucent background rectangle over the whole image.
func (s *Surface) Fade(alpha float64) {
	if s.dc == nil {
		return
	}
	s.dc.SetRGBA(float64(Background.R)/255, float64(Background.G)/255, float64(Background.B)/255, alpha)
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.dc.Fill()
}

// DrawGlyph draws glyph with its baseline at y.
func (s *Surface) DrawGlyph(x, y int, glyph rune) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(Foreground)
	s.dc.DrawString(string(glyph), float64(x), float64(y))
}

// Size reports the image size, zero before the first Resize.
func (s *Surface) Size() (width, height int) {
	if s.dc == nil {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

// Image returns the current frame, or nil before the first Resize.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// EncodePNG writes the current frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.dc == nil {
		return fmt.Errorf("canvas has no frame")
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the current frame to path.
func (s *Surface) SavePNG(path string) error {
	if s.dc == nil {
		return fmt.Errorf("canvas has no frame")
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
