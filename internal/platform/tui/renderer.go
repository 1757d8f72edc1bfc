package tui

import (
	"errors"
	"image"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrUnsupportedTexture is returned when a texture was not created by this renderer.
var ErrUnsupportedTexture = errors.New("tui: texture was not created by the terminal renderer")

// Renderer draws into a core.Screen. Every cell covers cell.X by cell.Y virtual
// pixels; a cell is painted when its centre falls inside the projected shape.
type Renderer struct {
	screen *core.Screen
	cell   core.Vec2i
	camera core.Camera
	frames int
}

// NewRenderer creates a renderer for a cols x rows terminal.
func NewRenderer(cols, rows int, cell core.Vec2i) *Renderer {
	return &Renderer{
		screen: core.NewScreen(cols, rows),
		cell:   cell,
		camera: core.NewCamera(),
	}
}

// Screen returns the underlying cell buffer.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Frames returns the number of presented frames.
func (r *Renderer) Frames() int {
	return r.frames
}

// Resize changes the terminal dimensions in cells.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
}

// Clear implements core.Renderer.
func (r *Renderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Present implements core.Renderer. The buffer is shown by the model's View.
func (r *Renderer) Present() {
	r.frames++
}

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
	return core.Recti{Size: core.V(r.screen.Width()*r.cell.X, r.screen.Height()*r.cell.Y)}
}

// CreateTexture implements core.Renderer.
func (r *Renderer) CreateTexture(img image.Image) (core.Texture, error) {
	return &core.ImageTexture{Image: img}, nil
}

// cellsIn returns the range of cells whose centres lie in the screen-space rect.
func (r *Renderer) cellsIn(dst core.Rectd) core.Recti {
	cw, ch := float64(r.cell.X), float64(r.cell.Y)
	x0 := int(math.Ceil((dst.Pos.X - cw/2) / cw))
	x1 := int(math.Ceil((dst.Right() - cw/2) / cw))
	y0 := int(math.Ceil((dst.Pos.Y - ch/2) / ch))
	y1 := int(math.Ceil((dst.Bottom() - ch/2) / ch))
	area := core.NewRect(x0, y0, max(x1-x0, 0), max(y1-y0, 0))
	return area.Intersection(r.screen.Bounds())
}

func (r *Renderer) centre(x, y int) core.Vec2d {
	return core.V(float64(x*r.cell.X+r.cell.X/2), float64(y*r.cell.Y+r.cell.Y/2))
}

// FillRect implements core.Renderer.
func (r *Renderer) FillRect(c core.Color, dst core.Recti) error {
	area := r.cellsIn(r.camera.ProjectRect(core.CastRect[float64](dst)))
	for y := area.Pos.Y; y < area.Bottom(); y++ {
		for x := area.Pos.X; x < area.Right(); x++ {
			r.screen.Paint(x, y, c)
		}
	}
	return nil
}

// FillTexture implements core.Renderer.
func (r *Renderer) FillTexture(t core.Texture, dst core.Recti) error {
	return r.FillTextureRegion(t, core.Recti{Size: t.Size()}, core.CastRect[float64](dst), 0)
}

// FillTextureRegion implements core.Renderer. Each covered cell takes the texel
// under its centre; rotation is about the centre of dst.
func (r *Renderer) FillTextureRegion(t core.Texture, src core.Recti, dst core.Rectd, angleDeg float64) error {
	tex, ok := t.(*core.ImageTexture)
	if !ok {
		return ErrUnsupportedTexture
	}

	screen := r.camera.ProjectRect(dst)
	if screen.Size.X <= 0 || screen.Size.Y <= 0 {
		return nil
	}
	mid := screen.Pos.Add(screen.Size.DivScalar(2))
	sin, cos := math.Sincos(-angleDeg * math.Pi / 180)

	// The rotated shape fits in the circle around mid; scan that bounding square.
	half := math.Hypot(screen.Size.X, screen.Size.Y) / 2
	bounds := screen
	if angleDeg != 0 {
		bounds = core.Rectd{Pos: mid.SubScalar(half), Size: core.V(2*half, 2*half)}
	}

	area := r.cellsIn(bounds)
	srcSize := core.Cast[float64](src.Size)
	for y := area.Pos.Y; y < area.Bottom(); y++ {
		for x := area.Pos.X; x < area.Right(); x++ {
			p := r.centre(x, y).Sub(mid)
			p = core.V(p.X*cos-p.Y*sin, p.X*sin+p.Y*cos).Add(mid)
			if !screen.Contains(p) {
				continue
			}
			uv := p.Sub(screen.Pos).Div(screen.Size).Mul(srcSize)
			texel := src.Pos.Add(core.V(int(math.Floor(uv.X)), int(math.Floor(uv.Y))))
			r.screen.Paint(x, y, tex.At(texel))
		}
	}
	return nil
}

// DrawText implements core.Renderer. pos is a screen point; text starts in the
// cell nearest to it.
func (r *Renderer) DrawText(pos core.Vec2i, text string, c core.Color) error {
	col := (pos.X + r.cell.X/2) / r.cell.X
	row := (pos.Y + r.cell.Y/2) / r.cell.Y
	r.screen.DrawText(col, row, text, c)
	return nil
}

var _ core.Renderer = (*Renderer)(nil)
