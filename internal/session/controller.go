// internal/session/controller.go
//
// Screen state machine driving one player through sections and modes.
// Responsibilities:
//   - Hold the current State and apply navigation actions to it.
//   - Build a fresh engine (and session ID) for every play, wiring its
//     game-over and quit callbacks back to the controller.
//   - Record finished games in the results history.
//
// Notes:
//   - Not safe for concurrent use; all calls, including engine timer
//     callbacks, run on the event loop.
//   - Callbacks carry the session ID they were created for; a stale one is ignored.
//   - Actions not offered on the current screen return ErrNotAvailable and
//     leave the state untouched. Unknown selections fall back to LevelSelect.

package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/store"
	"github.com/robalobadob/versequest/internal/verses"
)

var (
	ErrNotAvailable   = errors.New("action not available on this screen")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownMode    = errors.New("unknown game mode")
)

// Controller owns the navigation state.
type Controller struct {
	lib     *verses.Library
	results store.Results
	deps    game.Deps
	state   State
}

// New returns a controller on the Welcome screen. results may be nil.
func New(lib *verses.Library, results store.Results, deps game.Deps) *Controller {
	return &Controller{lib: lib, results: results, deps: deps, state: Welcome{}}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Library exposes the section list.
func (c *Controller) Library() *verses.Library { return c.lib }

func (c *Controller) set(s State) {
	log.Debug().
		Str("from", string(c.state.Screen())).
		Str("to", string(s.Screen())).
		Msg("screen")
	c.state = s
}

// Start leaves the Welcome screen.
func (c *Controller) Start() error {
	if _, ok := c.state.(Welcome); !ok {
		return ErrNotAvailable
	}
	c.set(LevelSelect{})
	return nil
}

// SelectLevel chooses a section by label.
func (c *Controller) SelectLevel(label string) error {
	if _, ok := c.state.(LevelSelect); !ok {
		return ErrNotAvailable
	}
	s, ok := c.lib.Find(label)
	if !ok {
		return ErrUnknownSection
	}
	c.set(ModeSelect{Section: s})
	return nil
}

// SelectMode starts a game of m on the chosen section.
func (c *Controller) SelectMode(m game.Mode) error {
	ms, ok := c.state.(ModeSelect)
	if !ok {
		return ErrNotAvailable
	}
	if !m.Valid() {
		c.set(LevelSelect{})
		return ErrUnknownMode
	}
	return c.play(ms.Section, m)
}

// play builds and starts a fresh engine. A section that is no longer in the
// library degrades to LevelSelect.
func (c *Controller) play(section verses.Section, m game.Mode) error {
	if _, ok := c.lib.Find(section.Label); !ok {
		c.set(LevelSelect{})
		return ErrUnknownSection
	}
	id := uuid.NewString()
	e := game.New(m, section, c.deps, game.Hooks{
		OnGameOver: func(score int) { c.gameOver(id, score) },
		OnQuit:     func() { c.quit(id) },
	})
	c.set(Playing{Section: section, Mode: m, SessionID: id, Engine: e})
	log.Info().
		Str("session", id).
		Str("section", section.Label).
		Str("mode", m.String()).
		Msg("game started")
	e.Start()
	return nil
}

func (c *Controller) gameOver(id string, score int) {
	p, ok := c.state.(Playing)
	if !ok || p.SessionID != id {
		return
	}
	log.Info().
		Str("session", id).
		Str("section", p.Section.Label).
		Str("mode", p.Mode.String()).
		Int("score", score).
		Msg("game over")
	if c.results != nil {
		err := c.results.Save(context.Background(), store.Result{
			SessionID: id,
			Section:   p.Section.Label,
			Mode:      p.Mode,
			Score:     score,
			At:        time.Now().UTC(),
		})
		if err != nil {
			log.Warn().Err(err).Str("session", id).Msg("record result")
		}
	}
	c.set(GameOver{
		Section:     p.Section,
		Mode:        p.Mode,
		SessionID:   id,
		Score:       score,
		IsLastLevel: c.lib.IsLast(p.Section.Label),
	})
}

func (c *Controller) quit(id string) {
	p, ok := c.state.(Playing)
	if !ok || p.SessionID != id {
		return
	}
	log.Info().Str("session", id).Int("score", p.Engine.Score()).Msg("game quit")
	c.set(ModeSelect{Section: p.Section})
}

// Quit abandons the running game and returns to mode selection.
func (c *Controller) Quit() error {
	p, ok := c.state.(Playing)
	if !ok {
		return ErrNotAvailable
	}
	p.Engine.Quit()
	// An engine that already finished does not report the quit.
	if _, still := c.state.(Playing); still {
		c.quit(p.SessionID)
	}
	return nil
}

// PlayAgain replays the finished section and mode with a new engine.
func (c *Controller) PlayAgain() error {
	g, ok := c.state.(GameOver)
	if !ok {
		return ErrNotAvailable
	}
	return c.play(g.Section, g.Mode)
}

// NextLevel moves to mode selection for the following section, or back to
// LevelSelect after the last one.
func (c *Controller) NextLevel() error {
	g, ok := c.state.(GameOver)
	if !ok {
		return ErrNotAvailable
	}
	next, ok := c.lib.Next(g.Section.Label)
	if !ok {
		c.set(LevelSelect{})
		return nil
	}
	c.set(ModeSelect{Section: next})
	return nil
}

// GoToMenu returns from the game-over screen to the section list.
func (c *Controller) GoToMenu() error {
	if _, ok := c.state.(GameOver); !ok {
		return ErrNotAvailable
	}
	c.set(LevelSelect{})
	return nil
}

// Back steps one screen back from the selection screens.
func (c *Controller) Back() error {
	switch c.state.(type) {
	case LevelSelect:
		c.set(Welcome{})
	case ModeSelect:
		c.set(LevelSelect{})
	default:
		return ErrNotAvailable
	}
	return nil
}

// GoHome returns to Welcome from anywhere, discarding a running game.
func (c *Controller) GoHome() {
	p, playing := c.state.(Playing)
	c.set(Welcome{})
	if playing {
		p.Engine.Quit()
	}
}

// Engine returns the running engine, or nil.
func (c *Controller) Engine() game.Engine {
	if p, ok := c.state.(Playing); ok {
		return p.Engine
	}
	return nil
}

// Blanks returns the running FillInTheBlanks engine.
func (c *Controller) Blanks() (*game.FillInTheBlanks, error) {
	return engineAs[*game.FillInTheBlanks](c)
}

// Ascent returns the running VerseAscent engine.
func (c *Controller) Ascent() (*game.VerseAscent, error) {
	return engineAs[*game.VerseAscent](c)
}

// Weaver returns the running WordWeaver engine.
func (c *Controller) Weaver() (*game.WordWeaver, error) {
	return engineAs[*game.WordWeaver](c)
}

func engineAs[T game.Engine](c *Controller) (T, error) {
	e, ok := c.Engine().(T)
	if !ok {
		var zero T
		return zero, ErrNotAvailable
	}
	return e, nil
}
