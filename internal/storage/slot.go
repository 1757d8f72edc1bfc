package storage

import (
	"errors"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Slot binds one named level of a Store to the level.Store interface.
type Slot struct {
	Store *Store
	Name  string
}

// Load implements level.Store. An empty slot yields (nil, nil).
func (s Slot) Load() (*level.Level, error) {
	l, err := s.Store.LoadLevel(s.Name)
	if errors.Is(err, ErrLevelNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Save implements level.Store.
func (s Slot) Save(l level.Level) error {
	return s.Store.SaveLevel(s.Name, l)
}

var _ level.Store = Slot{}
