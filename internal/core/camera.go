package core

// Camera maps world coordinates to screen coordinates: screen = world*Zoom - Offset.
// Each screen owns its own camera; a fresh one starts at offset (0,0) and zoom 1.
type Camera struct {
	Offset Vec2d
	Zoom   float64
}

// NewCamera returns the identity camera.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// Project converts a world point to screen space.
func (c Camera) Project(world Vec2d) Vec2d {
	return world.MulScalar(c.Zoom).Sub(c.Offset)
}

// Unproject converts a screen point back to world space.
func (c Camera) Unproject(screen Vec2d) Vec2d {
	return screen.Add(c.Offset).DivScalar(c.Zoom)
}

// ProjectRect converts a world rect to screen space.
func (c Camera) ProjectRect(world Rectd) Rectd {
	return Rectd{Pos: c.Project(world.Pos), Size: world.Size.MulScalar(c.Zoom)}
}

// ApplyZoom multiplies the zoom by delta while keeping the world point under pivot
// (a screen point) fixed on screen.
func (c *Camera) ApplyZoom(delta float64, pivot Vec2d) {
	center := c.Unproject(pivot)
	c.Zoom *= delta
	c.Offset = center.MulScalar(c.Zoom).Sub(pivot)
}

// Pan shifts the view offset by delta screen units.
func (c *Camera) Pan(delta Vec2d) {
	c.Offset = c.Offset.Add(delta)
}

// Apply pushes the camera state into a renderer.
func (c Camera) Apply(r Renderer) {
	r.SetView(c.Offset)
	r.SetZoom(c.Zoom)
}
