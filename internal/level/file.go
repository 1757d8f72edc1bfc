package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists a level as a YAML file at Path.
type FileStore struct {
	Path string
}

// NewFileStore creates a store for the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the level file. A missing file is not an error: it yields (nil, nil).
func (f *FileStore) Load() (*Level, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("level: reading file %s: %w", f.Path, err)
	}

	l, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("level: parsing file %s: %w", f.Path, err)
	}
	return &l, nil
}

// Save writes the level, creating parent directories as needed.
// The file is replaced atomically through a temporary sibling.
func (f *FileStore) Save(l Level) error {
	data, err := MarshalYAML(l, "")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("level: cannot create directory %s: %w", dir, err)
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("level: writing file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		os.Remove(tmp) //nolint:errcheck // Best-effort cleanup
		return fmt.Errorf("level: replacing file %s: %w", f.Path, err)
	}
	return nil
}

// LoadFile reads one level document from disk.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("level: reading file %s: %w", path, err)
	}
	return ParseYAML(data)
}
