// internal/game/engine.go
//
// Shared engine plumbing for the three mini-games.
// Responsibilities:
//   - Engine: the capability the session controller drives uniformly.
//   - Deps / Hooks: injected randomness, timers and the game-over / quit callbacks.
//   - base: score, feedback and the epoch guard for delayed transitions.
//
// Notes:
//   - Engines are not safe for concurrent use; callers serialize every call,
//     including Scheduler callbacks, on one goroutine (see internal/loop).
//   - At most one delayed transition is live per engine. Scheduling another,
//     quitting or finishing bumps the epoch, and stale callbacks become no-ops.
package game

import (
	"time"

	"github.com/robalobadob/versequest/internal/verses"
)

// Engine is one running mini-game.
type Engine interface {
	Mode() Mode
	// Start begins play. A section without verses ends immediately.
	Start()
	Score() int
	// Done reports whether the engine reached game over.
	Done() bool
	// Quit abandons the game, cancelling pending transitions, and fires OnQuit.
	Quit()
	Snapshot() Snapshot
}

// Scheduler runs fn once after d on the caller's event loop.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Delays are the feedback durations of each mode.
type Delays struct {
	Blanks        time.Duration // FillInTheBlanks feedback, both verdicts
	Ascent        time.Duration // VerseAscent answer reveal before commit
	WeaverAdvance time.Duration // WordWeaver success before next verse
	WeaverClear   time.Duration // WordWeaver failure feedback
}

// DefaultDelays are the standard feedback durations.
var DefaultDelays = Delays{
	Blanks:        800 * time.Millisecond,
	Ascent:        1000 * time.Millisecond,
	WeaverAdvance: 1200 * time.Millisecond,
	WeaverClear:   1000 * time.Millisecond,
}

// Scale multiplies every delay by f.
func (d Delays) Scale(f float64) Delays {
	mul := func(x time.Duration) time.Duration { return time.Duration(float64(x) * f) }
	return Delays{
		Blanks:        mul(d.Blanks),
		Ascent:        mul(d.Ascent),
		WeaverAdvance: mul(d.WeaverAdvance),
		WeaverClear:   mul(d.WeaverClear),
	}
}

// Deps are the collaborators an engine needs.
type Deps struct {
	Rand      Rand
	Scheduler Scheduler
	Delays    Delays // zero value means DefaultDelays
}

// Hooks are the callbacks an engine reports through.
type Hooks struct {
	OnGameOver func(score int)
	OnQuit     func()
}

// New constructs the engine for mode.
func New(mode Mode, section verses.Section, deps Deps, hooks Hooks) Engine {
	switch mode {
	case ModeVerseAscent:
		return NewVerseAscent(section, deps, hooks)
	case ModeWordWeaver:
		return NewWordWeaver(section, deps, hooks)
	default:
		return NewFillInTheBlanks(section, deps, hooks)
	}
}

// base carries what every engine shares.
type base struct {
	mode     Mode
	section  verses.Section
	rng      Rand
	sched    Scheduler
	delays   Delays
	hooks    Hooks
	score    int
	feedback Feedback
	epoch    uint64
	started  bool
	done     bool
	quit     bool
}

func newBase(mode Mode, section verses.Section, deps Deps, hooks Hooks) base {
	d := deps.Delays
	if d == (Delays{}) {
		d = DefaultDelays
	}
	r := deps.Rand
	if r == nil {
		r = NewRand(0)
	}
	return base{mode: mode, section: section, rng: r, sched: deps.Scheduler, delays: d, hooks: hooks}
}

func (b *base) Mode() Mode { return b.mode }
func (b *base) Score() int { return b.score }
func (b *base) Done() bool { return b.done }

// active reports whether the engine accepts player actions.
func (b *base) active() bool { return b.started && !b.done && !b.quit }

// Quit tears the engine down; later timers and actions are ignored.
func (b *base) Quit() {
	if b.done || b.quit {
		return
	}
	b.quit = true
	b.epoch++
	b.feedback = FeedbackNone
	if b.hooks.OnQuit != nil {
		b.hooks.OnQuit()
	}
}

// finish ends the game and reports score.
func (b *base) finish() {
	if b.done || b.quit {
		return
	}
	b.done = true
	b.epoch++
	b.feedback = FeedbackNone
	if b.hooks.OnGameOver != nil {
		b.hooks.OnGameOver(b.score)
	}
}

// later schedules fn after d, superseding any earlier pending callback.
// Without a scheduler fn runs immediately.
func (b *base) later(d time.Duration, fn func()) {
	b.epoch++
	e := b.epoch
	run := func() {
		if b.epoch != e || b.done || b.quit {
			return
		}
		fn()
	}
	if b.sched == nil {
		run()
		return
	}
	b.sched.After(d, run)
}

func (b *base) snapshot() Snapshot {
	return Snapshot{
		Mode:     b.mode,
		Section:  b.section.Label,
		Score:    b.score,
		Done:     b.done,
		Feedback: b.feedback,
	}
}
