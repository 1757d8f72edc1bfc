// Package level defines the static level data shared by the game and the editor,
// plus the file-based persistence for it.
package level

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level is a player spawn point and a list of static rectangular obstacles in
// world units. It is a plain value passed by copy between screens.
type Level struct {
	PlayerInitialPos core.Vec2i
	Blocks           []core.Recti
}

// Clone returns a deep copy of the level.
func (l Level) Clone() Level {
	blocks := make([]core.Recti, len(l.Blocks))
	copy(blocks, l.Blocks)
	return Level{PlayerInitialPos: l.PlayerInitialPos, Blocks: blocks}
}

// Bounds returns the smallest rect enclosing every block and the spawn point.
func (l Level) Bounds() core.Recti {
	lo, hi := l.PlayerInitialPos, l.PlayerInitialPos
	for _, b := range l.Blocks {
		lo = lo.Min(b.MinCorner())
		hi = hi.Max(b.MaxCorner())
	}
	return core.RectOfCorners(lo, hi)
}

// Store persists a single level.
type Store interface {
	// Load returns the persisted level, or (nil, nil) when nothing has been saved yet.
	Load() (*Level, error)

	// Save replaces the persisted level.
	Save(l Level) error
}

// MemoryStore keeps the level in memory. The zero value is empty.
type MemoryStore struct {
	level *Level

	// Err, when set, is returned by both Load and Save.
	Err error
}

// Load returns a copy of the stored level.
func (m *MemoryStore) Load() (*Level, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.level == nil {
		return nil, nil
	}
	l := m.level.Clone()
	return &l, nil
}

// Save stores a copy of l.
func (m *MemoryStore) Save(l Level) error {
	if m.Err != nil {
		return m.Err
	}
	c := l.Clone()
	m.level = &c
	return nil
}
