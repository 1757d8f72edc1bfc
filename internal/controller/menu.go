package controller

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Menu layout in screen units.
const (
	menuWidth      = 400
	menuTextHeight = 32
	menuMargin     = 4
	menuItemHeight = menuTextHeight + menuMargin*2
)

type menuChoice int

const (
	choiceStart menuChoice = iota
	choiceLevelEditor
	choiceExit
)

type menuAction int

const (
	menuUp menuAction = iota
	menuDown
	menuSelect
	menuExit
)

type menuItem struct {
	label  string
	choice menuChoice
	rect   core.Recti
}

// Menu is the main menu: Start, Level Editor, Exit.
type Menu struct {
	items    []menuItem
	selected int
	keys     *core.KeyMapping[menuAction]
}

// NewMenu creates the menu with the first item selected.
func NewMenu() *Menu {
	m := &Menu{
		items: []menuItem{
			{label: "Start", choice: choiceStart},
			{label: "Level Editor", choice: choiceLevelEditor},
			{label: "Exit", choice: choiceExit},
		},
		keys: core.NewKeyMapping[menuAction]().
			Add(menuUp, core.KeyUp, core.KeyW, core.KeyK).
			Add(menuDown, core.KeyDown, core.KeyS, core.KeyJ).
			Add(menuSelect, core.KeyEnter, core.KeyO).
			Add(menuExit, core.KeyEscape, core.KeyQ),
	}
	return m
}

// Selected returns the index of the highlighted item.
func (m *Menu) Selected() int {
	return m.selected
}

// Labels returns the item labels in display order.
func (m *Menu) Labels() []string {
	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.label
	}
	return labels
}

// HandleEvent implements Controller.
func (m *Menu) HandleEvent(ev core.Event) Status {
	switch ev := ev.(type) {
	case core.QuitEvent:
		return Exit{}
	case core.KeyboardEvent:
		return m.handleKey(ev)
	case core.MouseButtonEvent:
		if ev.Action != core.Press {
			return Continue{}
		}
		for _, it := range m.items {
			if it.rect.Contains(ev.Pos()) {
				return it.choice.status()
			}
		}
	case core.MouseMotionEvent:
		for i, it := range m.items {
			if it.rect.Contains(ev.Pos()) {
				m.selected = i
				break
			}
		}
	}
	return Continue{}
}

func (m *Menu) handleKey(ev core.KeyboardEvent) Status {
	if ev.Repeat || ev.Action != core.Press {
		return Continue{}
	}
	action, ok := m.keys.Action(ev.Key)
	if !ok {
		return Continue{}
	}

	switch action {
	case menuExit:
		return Exit{}
	case menuUp:
		m.moveCursor(-1)
	case menuDown:
		m.moveCursor(1)
	case menuSelect:
		return m.items[m.selected].choice.status()
	}
	return Continue{}
}

func (m *Menu) moveCursor(dir int) {
	m.selected = core.Clamp(m.selected+dir, 0, len(m.items)-1)
}

func (c menuChoice) status() Status {
	switch c {
	case choiceStart:
		return StartGame{}
	case choiceLevelEditor:
		return StartLevelEditor{}
	case choiceExit:
		return Exit{}
	default:
		return Continue{}
	}
}

// Tick implements Controller. The menu has no simulation.
func (m *Menu) Tick() {}

// reflow centres the item column in the viewport.
func (m *Menu) reflow(viewport core.Recti) {
	size := core.V(menuWidth, len(m.items)*menuItemHeight)
	loc := viewport.Pos.Add(viewport.Size.Sub(size).DivScalar(2))
	for i := range m.items {
		m.items[i].rect = core.Recti{Pos: loc, Size: core.V(menuWidth, menuItemHeight)}
		loc.Y += menuItemHeight
	}
}

// Render implements Controller.
func (m *Menu) Render(r core.Renderer) error {
	r.SetView(core.V(0.0, 0.0))
	r.SetZoom(1)

	m.reflow(r.Viewport())

	for i, it := range m.items {
		if i == m.selected {
			if err := r.FillRect(core.ColorDarkGray, it.rect); err != nil {
				return err
			}
		}
		if err := r.DrawText(it.rect.Pos.AddScalar(menuMargin), it.label, core.ColorWhite); err != nil {
			return err
		}
	}
	return nil
}
