package controller

import (
	"errors"
	"image"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

type fillCall struct {
	color core.Color
	rect  core.Recti
}

type textCall struct {
	pos  core.Vec2i
	text string
}

// fakeRenderer records draw calls instead of drawing.
type fakeRenderer struct {
	viewport core.Recti
	view     core.Vec2d
	zoom     float64

	clears   int
	presents int
	fills    []fillCall
	textures []core.Recti
	texts    []textCall

	clearErr error
}

func newFakeRenderer(w, h int) *fakeRenderer {
	return &fakeRenderer{viewport: core.NewRect(0, 0, w, h), zoom: 1}
}

func (r *fakeRenderer) Clear() error {
	r.clears++
	r.fills = nil
	r.textures = nil
	r.texts = nil
	return r.clearErr
}

func (r *fakeRenderer) Present() { r.presents++ }

func (r *fakeRenderer) FillRect(c core.Color, dst core.Recti) error {
	r.fills = append(r.fills, fillCall{color: c, rect: dst})
	return nil
}

func (r *fakeRenderer) FillTexture(_ core.Texture, dst core.Recti) error {
	r.textures = append(r.textures, dst)
	return nil
}

func (r *fakeRenderer) FillTextureRegion(_ core.Texture, _ core.Recti, dst core.Rectd, _ float64) error {
	r.textures = append(r.textures, core.CastRect[int](dst))
	return nil
}

func (r *fakeRenderer) DrawText(pos core.Vec2i, text string, _ core.Color) error {
	r.texts = append(r.texts, textCall{pos: pos, text: text})
	return nil
}

func (r *fakeRenderer) SetView(offset core.Vec2d) { r.view = offset }
func (r *fakeRenderer) SetZoom(zoom float64)      { r.zoom = zoom }
func (r *fakeRenderer) Viewport() core.Recti      { return r.viewport }

func (r *fakeRenderer) CreateTexture(img image.Image) (core.Texture, error) {
	return &core.ImageTexture{Image: img}, nil
}

// stubController returns scripted statuses and counts ticks.
type stubController struct {
	name      string
	statuses  []Status
	handled   []core.Event
	ticks     int
	renderErr error
}

func (s *stubController) HandleEvent(ev core.Event) Status {
	s.handled = append(s.handled, ev)
	if len(s.statuses) == 0 {
		return Continue{}
	}
	st := s.statuses[0]
	s.statuses = s.statuses[1:]
	return st
}

func (s *stubController) Tick() { s.ticks++ }

func (s *stubController) Render(core.Renderer) error { return s.renderErr }

// stubScreens builds named stub controllers and remembers them in creation order.
type stubScreens struct {
	menu    *stubController
	created []*stubController
	levels  []*level.Level
}

func newStubScreens() *stubScreens {
	return &stubScreens{menu: &stubController{name: "menu"}}
}

func (s *stubScreens) Menu() Controller { return s.menu }

func (s *stubScreens) InGame(l *level.Level) Controller {
	c := &stubController{name: "game"}
	s.created = append(s.created, c)
	s.levels = append(s.levels, l)
	return c
}

func (s *stubScreens) LevelEditor() Controller {
	c := &stubController{name: "editor"}
	s.created = append(s.created, c)
	return c
}

var errRender = errors.New("render failed")

func key(k core.KeyCode) core.KeyboardEvent {
	return core.KeyboardEvent{Action: core.Press, Key: k}
}

func keyUp(k core.KeyCode) core.KeyboardEvent {
	return core.KeyboardEvent{Action: core.Release, Key: k}
}
