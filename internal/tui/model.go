// internal/tui/model.go
//
// Bubble Tea front end for the session controller.
// Responsibilities:
//   - Translate key presses into controller and engine calls, run on the event loop.
//   - Keep the latest session.View and re-read it whenever the loop signals a
//     change, so timer-driven feedback clears on screen.
//
// Keys:
//   welcome       enter start | esc exit
//   sections      up/down move | enter choose | d section of the day | esc back
//   modes         1-3 or up/down + enter | esc back
//   blanks        type + enter answer | tab multiple choice | 1-4 pick | enter continue
//   ascent        r roll | 1-4 answer
//   weaver        tab bank/answer | left/right move | enter place/return | c clue | s submit
//   playing       esc quit the game
//   game over     p play again | n next level | m menu | h home
//   anywhere      ctrl+c exit

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/versequest/internal/daily"
	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/loop"
	"github.com/robalobadob/versequest/internal/session"
)

// refreshMsg signals that the loop processed a change.
type refreshMsg struct{}

// Options configure the model.
type Options struct {
	DailySalt string
}

// Model is the Bubble Tea model.
type Model struct {
	ctx     context.Context
	loop    *loop.Loop
	ctrl    *session.Controller
	opts    Options
	updates <-chan struct{}
	cancel  func()

	view    session.View
	input   textinput.Model
	cursor  int  // menu row, or token index in WordWeaver
	inBank  bool // WordWeaver focus
	message string
	err     error
}

// New builds a model. ctrl must only be touched through l.
func New(ctx context.Context, l *loop.Loop, ctrl *session.Controller, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type the missing word and press Enter..."
	ti.CharLimit = 40
	ti.Width = 40
	ti.Prompt = "> "

	updates, cancel := l.Subscribe()
	m := &Model{
		ctx:     ctx,
		loop:    l,
		ctrl:    ctrl,
		opts:    opts,
		updates: updates,
		cancel:  cancel,
		input:   ti,
		inBank:  true,
	}
	m.refresh()
	return m
}

// Close drops the loop subscription.
func (m *Model) Close() { m.cancel() }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForUpdate())
}

// waitForUpdate turns the next loop signal into a refreshMsg.
func (m *Model) waitForUpdate() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

func (m *Model) refresh() {
	var v session.View
	if err := m.loop.Query(m.ctx, func() { v = m.ctrl.View() }); err != nil {
		m.err = err
		return
	}
	m.setView(v)
}

func (m *Model) setView(v session.View) {
	prev := m.view.Screen
	m.view = v
	if v.Screen != prev {
		m.cursor = 0
		m.inBank = true
		m.message = ""
	}
	if v.Screen == session.ScreenPlaying && v.Game != nil && v.Game.Blanks != nil && !v.Game.Blanks.MultipleChoice {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.clampCursor()
}

// act runs fn on the loop and adopts the resulting view.
func (m *Model) act(fn func(c *session.Controller) error) {
	var (
		actErr error
		v      session.View
	)
	if err := m.loop.Do(m.ctx, func() {
		actErr = fn(m.ctrl)
		v = m.ctrl.View()
	}); err != nil {
		m.err = err
		return
	}
	m.setView(v)
	m.err = nil
	if actErr != nil && !errors.Is(actErr, session.ErrNotAvailable) {
		m.err = actErr
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.refresh()
		return m, m.waitForUpdate()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view.Screen {
		case session.ScreenWelcome:
			return m.updateWelcome(msg)
		case session.ScreenLevelSelect:
			m.updateLevels(msg)
		case session.ScreenModeSelect:
			m.updateModes(msg)
		case session.ScreenPlaying:
			return m.updatePlaying(msg)
		case session.ScreenGameOver:
			m.updateGameOver(msg)
		}
	}
	return m, nil
}

func (m *Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		m.act(func(c *session.Controller) error { return c.Start() })
	case "esc", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateLevels(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "d":
		if p, ok := daily.For(time.Now(), m.opts.DailySalt, m.ctrl.Library()); ok {
			m.cursor = p.Index
		}
	case "enter":
		if m.cursor < len(m.view.Sections) {
			label := m.view.Sections[m.cursor].Label
			m.act(func(c *session.Controller) error { return c.SelectLevel(label) })
		}
	case "esc", "backspace":
		m.act(func(c *session.Controller) error { return c.Back() })
	}
	m.clampCursor()
}

func (m *Model) updateModes(msg tea.KeyMsg) {
	modes := game.Modes()
	switch k := msg.String(); k {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "1", "2", "3":
		m.selectMode(modes[int(k[0]-'1')])
		return
	case "enter":
		if m.cursor < len(modes) {
			m.selectMode(modes[m.cursor])
			return
		}
	case "esc", "backspace":
		m.act(func(c *session.Controller) error { return c.Back() })
	}
	m.clampCursor()
}

func (m *Model) selectMode(mode game.Mode) {
	m.act(func(c *session.Controller) error { return c.SelectMode(mode) })
	m.input.Reset()
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.act(func(c *session.Controller) error { return c.Quit() })
		return m, nil
	}
	g := m.view.Game
	if g == nil {
		return m, nil
	}
	switch {
	case g.Blanks != nil:
		return m.updateBlanks(msg, g.Blanks)
	case g.Ascent != nil:
		m.updateAscent(msg, g.Ascent)
	case g.Weaver != nil:
		m.updateWeaver(msg, g.Weaver)
	}
	return m, nil
}

func (m *Model) updateBlanks(msg tea.KeyMsg, b *game.BlanksView) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "tab":
		m.act(func(c *session.Controller) error {
			g, err := c.Blanks()
			if err == nil {
				g.ToggleMultipleChoice()
			}
			return err
		})
		return m, nil
	case key == "enter" && b.CanContinue:
		m.act(func(c *session.Controller) error {
			g, err := c.Blanks()
			if err == nil {
				g.Continue()
			}
			return err
		})
		return m, nil
	case b.MultipleChoice:
		if i, ok := optionKey(key, len(b.Options)); ok {
			opt := b.Options[i]
			m.answer(func(c *session.Controller) (game.Outcome, error) {
				g, err := c.Blanks()
				if err != nil {
					return game.OutcomeIgnored, err
				}
				return g.ChooseOption(opt), nil
			})
		}
		return m, nil
	case key == "enter":
		text := m.input.Value()
		m.answer(func(c *session.Controller) (game.Outcome, error) {
			g, err := c.Blanks()
			if err != nil {
				return game.OutcomeIgnored, err
			}
			return g.SubmitText(text), nil
		})
		if m.message == string(game.OutcomeCorrect) {
			m.input.Reset()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateAscent(msg tea.KeyMsg, a *game.AscentView) {
	key := msg.String()
	if key == "r" {
		var roll int
		m.act(func(c *session.Controller) error {
			g, err := c.Ascent()
			if err == nil {
				roll = g.Roll()
			}
			return err
		})
		if roll > 0 {
			m.message = fmt.Sprintf("rolled %d", roll)
		}
		return
	}
	if a.Question == nil {
		return
	}
	if i, ok := optionKey(key, len(a.Question.Options)); ok {
		opt := a.Question.Options[i]
		m.answer(func(c *session.Controller) (game.Outcome, error) {
			g, err := c.Ascent()
			if err != nil {
				return game.OutcomeIgnored, err
			}
			return g.Answer(opt), nil
		})
	}
}

func (m *Model) updateWeaver(msg tea.KeyMsg, w *game.WeaverView) {
	switch msg.String() {
	case "tab":
		m.inBank = !m.inBank
		m.cursor = 0
	case "left", "h":
		m.cursor--
	case "right", "l":
		m.cursor++
	case "enter", " ":
		i, bank := m.cursor, m.inBank
		m.act(func(c *session.Controller) error {
			g, err := c.Weaver()
			if err != nil {
				return err
			}
			if bank {
				g.PickFromBank(i)
			} else {
				g.ReturnToBank(i)
			}
			return nil
		})
	case "c":
		var clue string
		m.act(func(c *session.Controller) error {
			g, err := c.Weaver()
			if err == nil {
				clue = g.UseClue()
			}
			return err
		})
		m.message = clue
	case "s":
		m.answer(func(c *session.Controller) (game.Outcome, error) {
			g, err := c.Weaver()
			if err != nil {
				return game.OutcomeIgnored, err
			}
			return g.Submit(), nil
		})
	}
	m.clampCursor()
}

// answer runs an answering action and records its outcome as the message.
func (m *Model) answer(fn func(c *session.Controller) (game.Outcome, error)) {
	out := game.OutcomeIgnored
	m.act(func(c *session.Controller) error {
		var err error
		out, err = fn(c)
		return err
	})
	if out != game.OutcomeIgnored {
		m.message = string(out)
	}
}

func (m *Model) updateGameOver(msg tea.KeyMsg) {
	switch msg.String() {
	case "p":
		m.act(func(c *session.Controller) error { return c.PlayAgain() })
	case "n":
		if !m.view.IsLastLevel {
			m.act(func(c *session.Controller) error { return c.NextLevel() })
		}
	case "m":
		m.act(func(c *session.Controller) error { return c.GoToMenu() })
	case "h", "esc":
		m.act(func(c *session.Controller) error {
			c.GoHome()
			return nil
		})
	}
}

// optionKey maps "1".."4" to an option index.
func optionKey(key string, n int) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	i := int(key[0] - '1')
	return i, i < n
}

func (m *Model) clampCursor() {
	n := 0
	switch m.view.Screen {
	case session.ScreenLevelSelect:
		n = len(m.view.Sections)
	case session.ScreenModeSelect:
		n = len(m.view.Modes)
	case session.ScreenPlaying:
		if g := m.view.Game; g != nil && g.Weaver != nil {
			if m.inBank {
				n = len(g.Weaver.Bank)
			} else {
				n = len(g.Weaver.Answer)
			}
		}
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
