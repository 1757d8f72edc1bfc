package gui

import (
	"errors"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrNoTarget is returned when drawing before a frame image was bound.
var ErrNoTarget = errors.New("gui: no target image bound")

// ErrUnsupportedTexture is returned for textures created by another renderer.
var ErrUnsupportedTexture = errors.New("gui: texture was not created by the window renderer")

// Texture is an image uploaded to the GPU.
type Texture struct {
	img *ebiten.Image
}

// Size implements core.Texture.
func (t *Texture) Size() core.Vec2i {
	b := t.img.Bounds()
	return core.V(b.Dx(), b.Dy())
}

// Renderer draws onto the ebiten frame image bound for the current Draw call.
type Renderer struct {
	target *ebiten.Image
	camera core.Camera
}

// NewRenderer creates a renderer with the identity view.
func NewRenderer() *Renderer {
	return &Renderer{camera: core.NewCamera()}
}

// Bind sets the image the next frame is drawn onto.
func (r *Renderer) Bind(target *ebiten.Image) {
	r.target = target
}

// Clear implements core.Renderer.
func (r *Renderer) Clear() error {
	if r.target == nil {
		return ErrNoTarget
	}
	r.target.Fill(core.ColorBlack.NRGBA())
	return nil
}

// Present implements core.Renderer. Ebiten shows the frame once Draw returns.
func (r *Renderer) Present() {}

// SetView implements core.Renderer.
func (r *Renderer) SetView(offset core.Vec2d) {
	r.camera.Offset = offset
}

// SetZoom implements core.Renderer.
func (r *Renderer) SetZoom(zoom float64) {
	r.camera.Zoom = zoom
}

// Viewport implements core.Renderer.
func (r *Renderer) Viewport() core.Recti {
	if r.target == nil {
		return core.Recti{}
	}
	b := r.target.Bounds()
	return core.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

// CreateTexture implements core.Renderer.
func (r *Renderer) CreateTexture(img image.Image) (core.Texture, error) {
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

// FillRect implements core.Renderer.
func (r *Renderer) FillRect(c core.Color, dst core.Recti) error {
	if r.target == nil {
		return ErrNoTarget
	}
	s := r.camera.ProjectRect(core.CastRect[float64](dst))
	vector.FillRect(r.target, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Size.X), float32(s.Size.Y), c.NRGBA(), false)
	return nil
}

// FillTexture implements core.Renderer.
func (r *Renderer) FillTexture(t core.Texture, dst core.Recti) error {
	return r.FillTextureRegion(t, core.Recti{Size: t.Size()}, core.CastRect[float64](dst), 0)
}

// FillTextureRegion implements core.Renderer.
func (r *Renderer) FillTextureRegion(t core.Texture, src core.Recti, dst core.Rectd, angleDeg float64) error {
	if r.target == nil {
		return ErrNoTarget
	}
	tex, ok := t.(*Texture)
	if !ok {
		return ErrUnsupportedTexture
	}
	if src.Empty() {
		return nil
	}

	sub := tex.img.SubImage(image.Rect(src.Pos.X, src.Pos.Y, src.Right(), src.Bottom())).(*ebiten.Image)
	opts := &ebiten.DrawImageOptions{GeoM: textureGeoM(src.Size, r.camera.ProjectRect(dst), angleDeg)}
	opts.Filter = ebiten.FilterNearest
	r.target.DrawImage(sub, opts)
	return nil
}

// textureGeoM maps a src-sized image onto the screen rect dst, rotated about its centre.
func textureGeoM(src core.Vec2i, dst core.Rectd, angleDeg float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(dst.Size.X/float64(src.X), dst.Size.Y/float64(src.Y))
	g.Translate(-dst.Size.X/2, -dst.Size.Y/2)
	g.Rotate(angleDeg * math.Pi / 180)
	g.Translate(dst.Pos.X+dst.Size.X/2, dst.Pos.Y+dst.Size.Y/2)
	return g
}

// DrawText implements core.Renderer. The debug font is always white.
func (r *Renderer) DrawText(pos core.Vec2i, text string, _ core.Color) error {
	if r.target == nil {
		return ErrNoTarget
	}
	ebitenutil.DebugPrintAt(r.target, text, pos.X, pos.Y)
	return nil
}

var _ core.Renderer = (*Renderer)(nil)
