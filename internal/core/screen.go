package core

import (
	"strings"
)

// Cell is one character position of a Screen: a glyph with foreground and background colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D cell buffer for character-based backends.
// It decouples drawing from the terminal: renderers write cells, the platform turns
// the buffer into styled output.
type Screen struct {
	width  int
	height int
	bg     Color
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions, cleared to black.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		bg:     ColorBlack,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area in cells.
func (s *Screen) Bounds() Recti {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// SetBackground changes the color Clear fills with.
func (s *Screen) SetBackground(c Color) {
	s.bg = c
}

// Clear resets every cell to a blank space on the background color.
func (s *Screen) Clear() {
	blank := Cell{Rune: ' ', FG: ColorWhite, BG: s.bg}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: ColorWhite, BG: s.bg}
	}
	return s.cells[y][x]
}

// Paint composites c over the background of one cell and erases its glyph.
func (s *Screen) Paint(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	cell := &s.cells[y][x]
	cell.BG = c.Over(cell.BG)
	cell.Rune = ' '
}

// FillRect paints every cell of r.
func (s *Screen) FillRect(r Recti, c Color) {
	area := r.Intersection(s.Bounds())
	for y := area.Pos.Y; y < area.Bottom(); y++ {
		for x := area.Pos.X; x < area.Right(); x++ {
			s.Paint(x, y, c)
		}
	}
}

// DrawText writes a string horizontally starting at (x, y), keeping cell backgrounds.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if cx < 0 || cx >= s.width || y < 0 || y >= s.height {
			continue
		}
		cell := &s.cells[y][cx]
		cell.Rune = r
		cell.FG = fg
	}
}

// String converts the glyphs of the screen buffer to plain text.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Cells returns the cells of row y. The slice aliases the buffer.
func (s *Screen) Cells(y int) []Cell {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.cells[y]
}
