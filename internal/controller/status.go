package controller

import (
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Status is a screen-transition request returned by every HandleEvent call.
// The set of implementations is closed: Continue, Exit, StartGame, Back and
// StartLevelEditor.
type Status interface {
	isStatus()
}

// Continue keeps the current screen active.
type Continue struct{}

// Exit stops the whole application loop.
type Exit struct{}

// StartGame suspends the current screen and starts a game.
// A nil Level starts the configured built-in layout.
type StartGame struct {
	Level *level.Level
}

// Back discards the current screen and resumes the most recently suspended one.
type Back struct{}

// StartLevelEditor suspends the current screen and opens the level editor.
type StartLevelEditor struct{}

func (Continue) isStatus()         {}
func (Exit) isStatus()             {}
func (StartGame) isStatus()        {}
func (Back) isStatus()             {}
func (StartLevelEditor) isStatus() {}
