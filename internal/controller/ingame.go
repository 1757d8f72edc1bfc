package controller

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

type gameAction int

const (
	gameExit gameAction = iota
	gameMoveUp
	gameMoveDown
	gameMoveLeft
	gameMoveRight
	gameJump
)

// InGame runs the platformer simulation over a fixed level.
type InGame struct {
	keys   *core.KeyMapping[gameAction]
	level  *physics.LevelController
	player *physics.PlayerController
	camera core.Camera
	border int

	blockTexture core.Texture
}

// NewInGame creates a game with the player at the level's spawn point.
// border is the minimum distance kept between the player and a viewport edge.
func NewInGame(l level.Level, params physics.Params, border int) *InGame {
	return &InGame{
		keys: core.NewKeyMapping[gameAction]().
			Add(gameExit, core.KeyEscape, core.KeyQ).
			Add(gameMoveUp, core.KeyUp, core.KeyW).
			Add(gameMoveLeft, core.KeyLeft, core.KeyA).
			Add(gameMoveDown, core.KeyDown, core.KeyS).
			Add(gameMoveRight, core.KeyRight, core.KeyD).
			Add(gameJump, core.KeySpace),
		level:  physics.NewLevelController(l.Blocks),
		player: physics.NewPlayerController(core.Cast[float64](l.PlayerInitialPos), params),
		camera: core.NewCamera(),
		border: border,
	}
}

// Player exposes the simulated body.
func (g *InGame) Player() *physics.PlayerController {
	return g.player
}

// Camera returns the current view.
func (g *InGame) Camera() core.Camera {
	return g.camera
}

// HandleEvent implements Controller.
func (g *InGame) HandleEvent(ev core.Event) Status {
	switch ev := ev.(type) {
	case core.QuitEvent:
		return Exit{}
	case core.KeyboardEvent:
		if ev.Repeat {
			return Continue{}
		}
		action, ok := g.keys.Action(ev.Key)
		if !ok {
			return Continue{}
		}
		pressed := ev.Action == core.Press

		switch action {
		case gameExit:
			if pressed {
				return Back{}
			}
		case gameMoveLeft:
			g.player.SetMovingLeft(pressed)
		case gameMoveRight:
			g.player.SetMovingRight(pressed)
		case gameJump:
			g.player.SetJumping(pressed)
		case gameMoveUp, gameMoveDown:
		}
	}
	return Continue{}
}

// Tick implements Controller.
func (g *InGame) Tick() {
	g.player.Tick(g.level)
}

// follow scrolls the camera so the player stays at least border units inside the viewport.
func (g *InGame) follow(player core.Recti, viewport core.Vec2i) {
	pos := core.Cast[float64](player.Pos)
	size := core.Cast[float64](viewport)
	border := float64(g.border)

	for _, axis := range []core.Axis{core.AxisX, core.AxisY} {
		p := pos.Get(axis)
		off := g.camera.Offset.Get(axis)
		if p-off >= size.Get(axis)-border {
			off = p - (size.Get(axis) - border)
		}
		if p-off <= border {
			off = p - border
		}
		g.camera.Offset.Set(axis, off)
	}
	g.camera.Zoom = 1
}

// Render implements Controller.
func (g *InGame) Render(r core.Renderer) error {
	if g.blockTexture == nil {
		tex, err := r.CreateTexture(SquaresImage())
		if err != nil {
			return fmt.Errorf("create block texture: %w", err)
		}
		g.blockTexture = tex
	}

	playerRect := g.player.Rect()
	g.follow(playerRect, r.Viewport().Size)
	g.camera.Apply(r)

	for _, b := range g.level.Blocks() {
		if err := r.FillTexture(g.blockTexture, b); err != nil {
			return err
		}
	}
	return r.FillRect(core.ColorWhite, playerRect)
}
