package level

import (
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// BlockSet is a set of occupied grid cells. Iteration is always in sorted (x, then y)
// order so exported levels are deterministic.
type BlockSet struct {
	cells map[core.Vec2i]struct{}
}

// NewBlockSet creates an empty set.
func NewBlockSet() *BlockSet {
	return &BlockSet{cells: make(map[core.Vec2i]struct{})}
}

// Add marks cell as occupied.
func (s *BlockSet) Add(cell core.Vec2i) {
	s.cells[cell] = struct{}{}
}

// Remove clears cell.
func (s *BlockSet) Remove(cell core.Vec2i) {
	delete(s.cells, cell)
}

// Toggle flips the membership of cell.
func (s *BlockSet) Toggle(cell core.Vec2i) {
	if s.Contains(cell) {
		s.Remove(cell)
		return
	}
	s.Add(cell)
}

// Contains reports whether cell is occupied.
func (s *BlockSet) Contains(cell core.Vec2i) bool {
	_, ok := s.cells[cell]
	return ok
}

// Len returns the number of occupied cells.
func (s *BlockSet) Len() int {
	return len(s.cells)
}

// Cells returns the occupied cells in sorted order.
func (s *BlockSet) Cells() []core.Vec2i {
	out := make([]core.Vec2i, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, core.Vec2i.Compare)
	return out
}

// ForEachIn calls fn for every cell of the inclusive cell rectangle spanned by a and b.
func ForEachIn(a, b core.Vec2i, fn func(core.Vec2i)) {
	lo, hi := a.Min(b), a.Max(b)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			fn(core.V(x, y))
		}
	}
}

// SelectionBox returns the inclusive cell rectangle spanned by two corner cells.
func SelectionBox(a, b core.Vec2i) core.Recti {
	lo, hi := a.Min(b), a.Max(b)
	return core.Recti{Pos: lo, Size: hi.Sub(lo).AddScalar(1)}
}

// CellRect returns the world rect covered by cell.
func CellRect(cell core.Vec2i, blockSize int) core.Recti {
	return core.Recti{Pos: cell.MulScalar(blockSize), Size: core.V(blockSize, blockSize)}
}

// Export builds a level from the set: each cell becomes one blockSize square.
func (s *BlockSet) Export(blockSize int, spawn core.Vec2i) Level {
	cells := s.Cells()
	blocks := make([]core.Recti, 0, len(cells))
	for _, c := range cells {
		blocks = append(blocks, CellRect(c, blockSize))
	}
	return Level{PlayerInitialPos: spawn, Blocks: blocks}
}

// BlockSetOf maps every block of l to the cell containing its top-left corner.
func BlockSetOf(l Level, blockSize int) *BlockSet {
	s := NewBlockSet()
	for _, b := range l.Blocks {
		s.Add(CellOf(b.Pos, blockSize))
	}
	return s
}

// CellOf returns the cell containing world point p, rounding toward negative infinity.
func CellOf(p core.Vec2i, blockSize int) core.Vec2i {
	return core.V(floorDiv(p.X, blockSize), floorDiv(p.Y, blockSize))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
