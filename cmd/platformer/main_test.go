package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func TestImportName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		docName  string
		args     []string
		expected string
	}{
		{"explicit", "a/castle.yaml", "doc", []string{"a/castle.yaml", "keep"}, "keep"},
		{"document", "a/castle.yaml", "doc", []string{"a/castle.yaml"}, "doc"},
		{"file name", "a/castle.yaml", "", []string{"a/castle.yaml"}, "castle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := importName(tt.path, tt.docName, tt.args); got != tt.expected {
				t.Errorf("importName() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestOpenLevelStore(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	saved := level.Level{PlayerInitialPos: core.V(0, 64), Blocks: []core.Recti{core.NewRect(0, 128, 64, 64)}}

	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.LevelFile = filepath.Join(dir, "level.yaml")
	store, closeStore, err := openLevelStore(cfg)
	if err != nil {
		t.Fatalf("openLevelStore(file) error = %v", err)
	}
	if _, ok := store.(*level.FileStore); !ok {
		t.Errorf("openLevelStore(file) = %T, expected *level.FileStore", store)
	}
	closeStore()

	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.DBPath = filepath.Join(dir, "levels.db")
	cfg.Storage.Slot = "castle"
	store, closeStore, err = openLevelStore(cfg)
	if err != nil {
		t.Fatalf("openLevelStore(sqlite) error = %v", err)
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	closeStore()

	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()
	got, err := db.LoadLevel("castle")
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if got.PlayerInitialPos != saved.PlayerInitialPos || len(got.Blocks) != 1 {
		t.Errorf("LoadLevel() = %+v, expected %+v", got, saved)
	}

	cfg.Storage.Backend = "cloud"
	if _, _, err := openLevelStore(cfg); err == nil {
		t.Error("openLevelStore(cloud) succeeded, expected error")
	}
}
