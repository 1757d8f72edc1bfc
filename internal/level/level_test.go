package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestBlockSetExport(t *testing.T) {
	s := NewBlockSet()
	s.Add(core.V(3, 4))

	l := s.Export(64, core.V(0, 0))
	if len(l.Blocks) != 1 {
		t.Fatalf("Export() produced %d blocks, expected 1", len(l.Blocks))
	}
	if l.Blocks[0] != core.NewRect(192, 256, 64, 64) {
		t.Errorf("Export() block = %v, expected {(192,256),(64,64)}", l.Blocks[0])
	}
}

func TestBlockSetSortedOrder(t *testing.T) {
	s := NewBlockSet()
	for _, c := range []core.Vec2i{core.V(2, 0), core.V(0, 5), core.V(0, 1), core.V(-1, 9)} {
		s.Add(c)
	}
	s.Add(core.V(0, 1)) // duplicate

	cells := s.Cells()
	expected := []core.Vec2i{core.V(-1, 9), core.V(0, 1), core.V(0, 5), core.V(2, 0)}
	if len(cells) != len(expected) {
		t.Fatalf("Cells() = %v, expected %v", cells, expected)
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("Cells()[%d] = %v, expected %v", i, cells[i], expected[i])
		}
	}
}

func TestBlockSetToggle(t *testing.T) {
	s := NewBlockSet()
	c := core.V(1, 1)

	s.Toggle(c)
	if !s.Contains(c) {
		t.Error("Toggle() on empty cell should add it")
	}
	s.Toggle(c)
	if s.Contains(c) {
		t.Error("Toggle() on occupied cell should remove it")
	}
	s.Remove(c) // removing an absent cell is a no-op
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestSelectionBoxInclusive(t *testing.T) {
	box := SelectionBox(core.V(3, 1), core.V(1, 2))
	if box != core.NewRect(1, 1, 3, 2) {
		t.Errorf("SelectionBox() = %v, expected {(1,1),(3,2)}", box)
	}

	count := 0
	ForEachIn(core.V(3, 1), core.V(1, 2), func(core.Vec2i) { count++ })
	if count != 6 {
		t.Errorf("ForEachIn() visited %d cells, expected 6", count)
	}
}

func TestCellOf(t *testing.T) {
	tests := []struct {
		p        core.Vec2i
		expected core.Vec2i
	}{
		{core.V(0, 0), core.V(0, 0)},
		{core.V(63, 64), core.V(0, 1)},
		{core.V(-1, -64), core.V(-1, -1)},
		{core.V(-65, 128), core.V(-2, 2)},
	}

	for _, tc := range tests {
		if got := CellOf(tc.p, 64); got != tc.expected {
			t.Errorf("CellOf(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestBlockSetOfRoundTrip(t *testing.T) {
	s := NewBlockSet()
	s.Add(core.V(0, 0))
	s.Add(core.V(-2, 3))

	back := BlockSetOf(s.Export(64, core.V(64, 0)), 64)
	if back.Len() != 2 || !back.Contains(core.V(-2, 3)) {
		t.Errorf("BlockSetOf(Export()) = %v, expected the original cells", back.Cells())
	}
}

func TestLevelClone(t *testing.T) {
	l := Level{Blocks: []core.Recti{core.NewRect(0, 0, 1, 1)}}
	c := l.Clone()
	c.Blocks[0] = core.NewRect(5, 5, 5, 5)
	if l.Blocks[0] != core.NewRect(0, 0, 1, 1) {
		t.Error("Clone() should not share block storage")
	}
}

func TestFileStoreMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "level.yaml"))

	l, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l != nil {
		t.Errorf("Load() on missing file = %v, expected nil", l)
	}
}

func TestFileStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "level.yaml")
	store := NewFileStore(path)

	saved := Level{
		PlayerInitialPos: core.V(128, 64),
		Blocks: []core.Recti{
			core.NewRect(0, 800, 1600, 1600),
			core.NewRect(-64, 0, 64, 64),
		},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() returned nil after Save()")
	}
	if loaded.PlayerInitialPos != saved.PlayerInitialPos {
		t.Errorf("spawn = %v, expected %v", loaded.PlayerInitialPos, saved.PlayerInitialPos)
	}
	if len(loaded.Blocks) != 2 || loaded.Blocks[1] != saved.Blocks[1] {
		t.Errorf("blocks = %v, expected %v", loaded.Blocks, saved.Blocks)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte("player: [not, a, point"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Load() on corrupt file should return an error")
	}
}

func TestParseYAMLRejectsNegativeSize(t *testing.T) {
	doc := []byte("player: {x: 0, y: 0}\nblocks:\n  - {x: 0, y: 0, w: -1, h: 5}\n")
	if _, err := ParseYAML(doc); err == nil {
		t.Error("ParseYAML() should reject negative block sizes")
	}
}

func TestMemoryStore(t *testing.T) {
	var m MemoryStore
	if l, err := m.Load(); l != nil || err != nil {
		t.Errorf("empty Load() = (%v, %v), expected (nil, nil)", l, err)
	}

	if err := m.Save(Level{PlayerInitialPos: core.V(1, 2)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	l, _ := m.Load()
	if l == nil || l.PlayerInitialPos != core.V(1, 2) {
		t.Errorf("Load() = %v, expected spawn (1, 2)", l)
	}
}

func TestParseNamedYAML(t *testing.T) {
	doc := []byte("name: castle\nplayer: {x: 4, y: 8}\nblocks:\n  - {x: 0, y: 64, w: 64, h: 64}\n")
	l, name, err := ParseNamedYAML(doc)
	if err != nil {
		t.Fatalf("ParseNamedYAML() error = %v", err)
	}
	if name != "castle" {
		t.Errorf("name = %q, expected %q", name, "castle")
	}
	if l.PlayerInitialPos != core.V(4, 8) || len(l.Blocks) != 1 {
		t.Errorf("level = %+v, expected spawn (4,8) and one block", l)
	}
}
