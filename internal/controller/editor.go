package controller

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

type editorAction int

const (
	editExit editorAction = iota
	editZoomIn
	editZoomOut

	editPanUp
	editPanLeft
	editPanDown
	editPanRight

	editCursorUp
	editCursorLeft
	editCursorDown
	editCursorRight

	editToggleBlock
	editAddBlock
	editRemoveBlock
	editStartSelection
	editPlacePlayer

	editPlay
)

// Messages shown on the editor status line.
const (
	MsgPlayerNotSet = "player not set"
	MsgSaved        = "level saved"
	MsgSaveFailed   = "failed to save level"
)

// EditorOptions configures a LevelEditor.
type EditorOptions struct {
	Editor     config.EditorConfig
	PlayerSize core.Vec2i
	Store      level.Store
	Logger     *log.Logger
}

// LevelEditor edits a grid of blocks and the player spawn.
type LevelEditor struct {
	opts EditorOptions
	keys *core.KeyMapping[editorAction]

	camera   core.Camera
	viewport core.Recti

	blocks    *level.BlockSet
	cursor    core.Vec2i
	selection *core.Vec2i
	player    *core.Vec2i
	mouse     *core.Vec2i

	zoomingIn, zoomingOut            bool
	panUp, panLeft, panDown, panRight bool

	message      string
	blockTexture core.Texture
}

// NewLevelEditor creates an editor. A non-nil l seeds the block set and the spawn.
func NewLevelEditor(l *level.Level, opts EditorOptions) *LevelEditor {
	if opts.Store == nil {
		opts.Store = &level.MemoryStore{}
	}
	if opts.Editor.BlockSize <= 0 {
		opts.Editor = config.DefaultConfig().Editor
	}

	e := &LevelEditor{
		opts: opts,
		keys: core.NewKeyMapping[editorAction]().
			Add(editExit, core.KeyEscape, core.KeyQ).
			Add(editZoomIn, core.KeyEqual).
			Add(editZoomOut, core.KeyMinus).
			Add(editPanUp, core.KeyW).
			Add(editPanLeft, core.KeyA).
			Add(editPanDown, core.KeyS).
			Add(editPanRight, core.KeyD).
			Add(editCursorUp, core.KeyUp, core.KeyK).
			Add(editCursorLeft, core.KeyLeft, core.KeyH).
			Add(editCursorDown, core.KeyDown, core.KeyJ).
			Add(editCursorRight, core.KeyRight, core.KeyL).
			Add(editToggleBlock, core.KeyG).
			Add(editAddBlock, core.KeyC).
			Add(editRemoveBlock, core.KeyX).
			Add(editStartSelection, core.KeyV).
			Add(editPlacePlayer, core.KeyP).
			Add(editPlay, core.KeyT),
		camera: core.NewCamera(),
		blocks: level.NewBlockSet(),
	}

	if l != nil {
		spawn := l.PlayerInitialPos
		e.player = &spawn
		e.blocks = level.BlockSetOf(*l, opts.Editor.BlockSize)
	}
	return e
}

func (e *LevelEditor) logger() *log.Logger {
	if e.opts.Logger == nil {
		return log.Default()
	}
	return e.opts.Logger
}

// Cursor returns the cell under the cursor.
func (e *LevelEditor) Cursor() core.Vec2i {
	return e.cursor
}

// Blocks returns the edited block set.
func (e *LevelEditor) Blocks() *level.BlockSet {
	return e.blocks
}

// Camera returns the current view.
func (e *LevelEditor) Camera() core.Camera {
	return e.camera
}

// Message returns the last status line message.
func (e *LevelEditor) Message() string {
	return e.message
}

// Spawn returns the player spawn point, if set.
func (e *LevelEditor) Spawn() (core.Vec2i, bool) {
	if e.player == nil {
		return core.Vec2i{}, false
	}
	return *e.player, true
}

// MoveCursor shifts the cursor by d cells and detaches it from the mouse.
func (e *LevelEditor) MoveCursor(d core.Vec2i) {
	e.cursor = e.cursor.Add(d)
	e.mouse = nil
}

// StartSelection anchors a selection corner at the cursor.
func (e *LevelEditor) StartSelection() {
	c := e.cursor
	e.selection = &c
}

// forEachSelected visits the selected cells, or just the cursor cell when no
// selection is anchored, and clears the anchor.
func (e *LevelEditor) forEachSelected(fn func(core.Vec2i)) {
	anchor := e.cursor
	if e.selection != nil {
		anchor = *e.selection
	}
	level.ForEachIn(anchor, e.cursor, fn)
	e.selection = nil
}

// ToggleBlock flips every selected cell.
func (e *LevelEditor) ToggleBlock() {
	e.forEachSelected(e.blocks.Toggle)
}

// AddBlock fills every selected cell.
func (e *LevelEditor) AddBlock() {
	e.forEachSelected(e.blocks.Add)
}

// RemoveBlock clears every selected cell.
func (e *LevelEditor) RemoveBlock() {
	e.forEachSelected(e.blocks.Remove)
}

// PlacePlayer puts the spawn at the cursor cell's top-left corner.
func (e *LevelEditor) PlacePlayer() {
	p := e.cursor.MulScalar(e.opts.Editor.BlockSize)
	e.player = &p
}

// Export snapshots the edited level. It fails when no spawn is set.
func (e *LevelEditor) Export() (level.Level, bool) {
	if e.player == nil {
		return level.Level{}, false
	}
	return e.blocks.Export(e.opts.Editor.BlockSize, *e.player), true
}

// Save persists the level if a spawn is set. Failures are logged and reported on
// the status line only.
func (e *LevelEditor) Save() {
	l, ok := e.Export()
	if !ok {
		return
	}
	if err := e.opts.Store.Save(l); err != nil {
		e.logger().Warn("failed to save level", "error", err)
		e.message = fmt.Sprintf("%s: %v", MsgSaveFailed, err)
		return
	}
	e.message = MsgSaved
}

// Play saves and requests a game over the edited level.
func (e *LevelEditor) Play() Status {
	e.Save()
	l, ok := e.Export()
	if !ok {
		e.logger().Warn("cannot play level", "reason", MsgPlayerNotSet)
		e.message = MsgPlayerNotSet
		return Continue{}
	}
	return StartGame{Level: &l}
}

// HandleEvent implements Controller.
func (e *LevelEditor) HandleEvent(ev core.Event) Status {
	switch ev := ev.(type) {
	case core.QuitEvent:
		e.Save()
		return Exit{}
	case core.KeyboardEvent:
		return e.handleKey(ev)
	case core.MouseButtonEvent:
		e.handleMouseButton(ev)
	case core.MouseMotionEvent:
		p := ev.Pos()
		e.mouse = &p
		e.updateCursorFromMouse()
	case core.MouseScrollEvent:
		if e.mouse == nil {
			break
		}
		pivot := core.Cast[float64](*e.mouse)
		if ev.Y > 0 {
			e.camera.ApplyZoom(e.opts.Editor.ScrollZoomSpeed, pivot)
		} else if ev.Y < 0 {
			e.camera.ApplyZoom(1/e.opts.Editor.ScrollZoomSpeed, pivot)
		}
		e.updateCursorFromMouse()
	}
	return Continue{}
}

func (e *LevelEditor) handleMouseButton(ev core.MouseButtonEvent) {
	if e.mouse == nil {
		return
	}
	switch ev.Button {
	case core.MouseLeft:
		if ev.Action == core.Press {
			e.StartSelection()
		} else {
			e.AddBlock()
		}
	case core.MouseRight:
		if ev.Action == core.Press {
			e.StartSelection()
		} else {
			e.RemoveBlock()
		}
	}
}

func (e *LevelEditor) handleKey(ev core.KeyboardEvent) Status {
	action, ok := e.keys.Action(ev.Key)
	if !ok {
		return Continue{}
	}
	pressed := ev.Action == core.Press

	switch action {
	case editExit:
		if pressed {
			e.Save()
			return Back{}
		}
	case editZoomIn:
		e.zoomingIn = pressed
	case editZoomOut:
		e.zoomingOut = pressed
	case editPanUp:
		e.panUp = pressed
	case editPanLeft:
		e.panLeft = pressed
	case editPanDown:
		e.panDown = pressed
	case editPanRight:
		e.panRight = pressed
	case editCursorUp:
		if pressed {
			e.MoveCursor(core.V(0, -1))
		}
	case editCursorLeft:
		if pressed {
			e.MoveCursor(core.V(-1, 0))
		}
	case editCursorDown:
		if pressed {
			e.MoveCursor(core.V(0, 1))
		}
	case editCursorRight:
		if pressed {
			e.MoveCursor(core.V(1, 0))
		}
	case editToggleBlock:
		if pressed {
			e.ToggleBlock()
		}
	case editAddBlock:
		if pressed {
			e.AddBlock()
		}
	case editRemoveBlock:
		if pressed {
			e.RemoveBlock()
		}
	case editStartSelection:
		if pressed {
			e.StartSelection()
		}
	case editPlacePlayer:
		if pressed {
			e.PlacePlayer()
		}
	case editPlay:
		if pressed {
			return e.Play()
		}
	}
	return Continue{}
}

func (e *LevelEditor) updateCursorFromMouse() {
	if e.mouse == nil {
		return
	}
	world := e.camera.Unproject(core.Cast[float64](*e.mouse))
	cell := world.DivScalar(float64(e.opts.Editor.BlockSize))
	e.cursor = core.V(int(math.Floor(cell.X)), int(math.Floor(cell.Y)))
}

// Tick implements Controller: held zoom and pan keys move the camera.
func (e *LevelEditor) Tick() {
	zoom := 1.0
	if e.zoomingIn {
		zoom *= e.opts.Editor.ZoomSpeed
	}
	if e.zoomingOut {
		zoom /= e.opts.Editor.ZoomSpeed
	}
	if zoom != 1 {
		e.camera.ApplyZoom(zoom, core.Cast[float64](e.viewport.Size).DivScalar(2))
	}

	var move core.Vec2d
	if e.panDown {
		move.Y++
	}
	if e.panUp {
		move.Y--
	}
	if e.panRight {
		move.X++
	}
	if e.panLeft {
		move.X--
	}
	e.camera.Pan(move.MulScalar(e.opts.Editor.PanSpeed))

	e.updateCursorFromMouse()
}

// Render implements Controller.
func (e *LevelEditor) Render(r core.Renderer) error {
	if e.blockTexture == nil {
		tex, err := r.CreateTexture(SquaresImage())
		if err != nil {
			return fmt.Errorf("create block texture: %w", err)
		}
		e.blockTexture = tex
	}

	e.viewport = r.Viewport()
	e.camera.Apply(r)

	size := e.opts.Editor.BlockSize
	for _, c := range e.blocks.Cells() {
		if err := r.FillTexture(e.blockTexture, level.CellRect(c, size)); err != nil {
			return err
		}
	}

	if e.player != nil {
		if err := r.FillRect(core.ColorWhite, core.Recti{Pos: *e.player, Size: e.opts.PlayerSize}); err != nil {
			return err
		}
	}

	if e.selection != nil {
		box := level.SelectionBox(e.cursor, *e.selection).Scale(size)
		if err := r.FillRect(core.ColorSelection, box); err != nil {
			return err
		}
	} else {
		if err := r.FillRect(core.ColorCursor, level.CellRect(e.cursor, size)); err != nil {
			return err
		}
	}

	return e.renderStatusLine(r)
}

func (e *LevelEditor) renderStatusLine(r core.Renderer) error {
	line := fmt.Sprintf("cursor %d,%d  blocks %d  zoom %.2f", e.cursor.X, e.cursor.Y, e.blocks.Len(), e.camera.Zoom)
	if e.message != "" {
		line += "  | " + e.message
	}
	vp := r.Viewport()
	pos := core.V(vp.Pos.X+menuMargin, vp.Bottom()-menuTextHeight)
	return r.DrawText(pos, line, core.ColorGray)
}
