package session

import (
	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/verses"
)

// Screen names a controller state.
type Screen string

const (
	ScreenWelcome     Screen = "welcome"
	ScreenLevelSelect Screen = "level-select"
	ScreenModeSelect  Screen = "mode-select"
	ScreenPlaying     Screen = "playing"
	ScreenGameOver    Screen = "game-over"
)

// State is one of Welcome, LevelSelect, ModeSelect, Playing or GameOver.
type State interface {
	Screen() Screen
	isState()
}

// Welcome is the title screen.
type Welcome struct{}

// LevelSelect lists the sections.
type LevelSelect struct{}

// ModeSelect offers the modes for a chosen section.
type ModeSelect struct {
	Section verses.Section
}

// Playing runs one engine. SessionID changes on every fresh engine.
type Playing struct {
	Section   verses.Section
	Mode      game.Mode
	SessionID string
	Engine    game.Engine
}

// GameOver shows the final score of the last session.
type GameOver struct {
	Section     verses.Section
	Mode        game.Mode
	SessionID   string
	Score       int
	IsLastLevel bool
}

func (Welcome) Screen() Screen     { return ScreenWelcome }
func (LevelSelect) Screen() Screen { return ScreenLevelSelect }
func (ModeSelect) Screen() Screen  { return ScreenModeSelect }
func (Playing) Screen() Screen     { return ScreenPlaying }
func (GameOver) Screen() Screen    { return ScreenGameOver }

func (Welcome) isState()     {}
func (LevelSelect) isState() {}
func (ModeSelect) isState()  {}
func (Playing) isState()     {}
func (GameOver) isState()    {}
