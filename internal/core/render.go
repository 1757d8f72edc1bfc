package core

import "image"

// Texture is an image uploaded to a renderer backend.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() Vec2i
}

// Renderer is the drawing surface handed to screens once per frame.
// World-space draws (FillRect, FillTexture, FillTextureRegion) are projected through
// the current view offset and zoom; DrawText takes screen coordinates.
type Renderer interface {
	Clear() error
	Present()
	FillRect(c Color, dst Recti) error
	FillTexture(t Texture, dst Recti) error
	FillTextureRegion(t Texture, src Recti, dst Rectd, angleDeg float64) error
	DrawText(pos Vec2i, text string, c Color) error
	SetView(offset Vec2d)
	SetZoom(zoom float64)
	Viewport() Recti
	CreateTexture(img image.Image) (Texture, error)
}

// ImageTexture is a Texture backed by an in-memory image. Backends that sample
// pixels on the CPU use it directly.
type ImageTexture struct {
	Image image.Image
}

// Size returns the image bounds size.
func (t *ImageTexture) Size() Vec2i {
	b := t.Image.Bounds()
	return Vec2i{X: b.Dx(), Y: b.Dy()}
}

// At samples the texture at local pixel p, clamped to the image bounds.
func (t *ImageTexture) At(p Vec2i) Color {
	b := t.Image.Bounds()
	x := Clamp(b.Min.X+p.X, b.Min.X, b.Max.X-1)
	y := Clamp(b.Min.Y+p.Y, b.Min.Y, b.Max.Y-1)
	return FromColor(t.Image.At(x, y))
}
