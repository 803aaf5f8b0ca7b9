// internal/game/blanks.go
//
// FillInTheBlanks: recall the hidden words of each verse in order.
//
// Flow:
//   - Verses are prepared one at a time as they are entered; each has 0-2 blanks.
//   - The player answers the current blank by free text or, after
//     ToggleMultipleChoice, by picking one of up to four options.
//   - Correct -> +10, "correct" feedback, and after the delay the next blank,
//     the next verse, or game over.
//   - Incorrect -> -2 (floored at 0), "incorrect" feedback that clears after
//     the delay; the blank stays put.
//   - A verse without blanks is passed with Continue.

package game

import (
	"strings"

	"github.com/robalobadob/versequest/internal/verses"
)

// FillInTheBlanks is the fill-in-the-blanks engine.
type FillInTheBlanks struct {
	base
	prep     Preparer
	pool     []string
	verseIdx int
	blankIdx int
	current  PreparedVerse
	blanks   []string
	choice   bool
	options  []string
}

// NewFillInTheBlanks builds the engine; call Start to begin.
func NewFillInTheBlanks(section verses.Section, deps Deps, hooks Hooks) *FillInTheBlanks {
	return &FillInTheBlanks{
		base: newBase(ModeFillInTheBlanks, section, deps, hooks),
		prep: DefaultPreparer,
		pool: SectionWords(section),
	}
}

// Start enters the first verse.
func (g *FillInTheBlanks) Start() {
	if g.started {
		return
	}
	g.started = true
	if len(g.section.Verses) == 0 {
		g.finish()
		return
	}
	g.enterVerse(0)
}

func (g *FillInTheBlanks) enterVerse(i int) {
	g.verseIdx = i
	g.blankIdx = 0
	g.current = g.prep.Prepare(g.section.Verses[i], g.rng)
	g.blanks = g.current.Blanks()
	g.refreshOptions()
}

// Target returns the answer for the current blank, or "" on a blank-less verse.
func (g *FillInTheBlanks) Target() string {
	if g.blankIdx < len(g.blanks) {
		return g.blanks[g.blankIdx]
	}
	return ""
}

// Current exposes the prepared verse being played.
func (g *FillInTheBlanks) Current() PreparedVerse { return g.current }

// MultipleChoice reports the input mode.
func (g *FillInTheBlanks) MultipleChoice() bool { return g.choice }

// ToggleMultipleChoice switches between free text and options.
func (g *FillInTheBlanks) ToggleMultipleChoice() {
	if !g.active() {
		return
	}
	g.choice = !g.choice
	g.refreshOptions()
}

// Options returns the current option set (empty in free-text mode).
func (g *FillInTheBlanks) Options() []string { return g.options }

func (g *FillInTheBlanks) refreshOptions() {
	g.options = nil
	if !g.choice || len(g.blanks) == 0 {
		return
	}
	g.options = Options(g.Target(), g.pool, g.prep.MinLen, g.rng)
}

// SubmitText answers the current blank with typed input.
func (g *FillInTheBlanks) SubmitText(input string) Outcome {
	if strings.TrimSpace(input) == "" {
		return OutcomeIgnored
	}
	return g.answer(input)
}

// ChooseOption answers the current blank with one of Options.
func (g *FillInTheBlanks) ChooseOption(option string) Outcome {
	if !g.choice {
		return OutcomeIgnored
	}
	return g.SubmitText(option)
}

func (g *FillInTheBlanks) answer(input string) Outcome {
	if !g.active() || g.feedback != FeedbackNone || len(g.blanks) == 0 {
		return OutcomeIgnored
	}

	if !answerMatches(input, g.Target()) {
		g.score = Penalize(g.score, BlanksIncorrect)
		g.feedback = FeedbackIncorrect
		g.later(g.delays.Blanks, func() { g.feedback = FeedbackNone })
		return OutcomeIncorrect
	}

	g.score = Reward(g.score, BlanksCorrect)
	g.feedback = FeedbackCorrect
	g.later(g.delays.Blanks, func() {
		g.feedback = FeedbackNone
		if g.blankIdx < len(g.blanks)-1 {
			g.blankIdx++
			g.refreshOptions()
			return
		}
		g.advance()
	})
	return OutcomeCorrect
}

// Continue skips a verse that has no blanks.
func (g *FillInTheBlanks) Continue() bool {
	if !g.active() || len(g.blanks) != 0 {
		return false
	}
	g.advance()
	return true
}

func (g *FillInTheBlanks) advance() {
	if g.verseIdx < len(g.section.Verses)-1 {
		g.enterVerse(g.verseIdx + 1)
		return
	}
	g.finish()
}

// Snapshot renders the verse with solved blanks revealed and the rest masked.
func (g *FillInTheBlanks) Snapshot() Snapshot {
	s := g.snapshot()
	if !g.started || g.done {
		return s
	}
	words := make([]WordView, len(g.current.Tokens))
	n := 0
	for i, t := range g.current.Tokens {
		if !t.Blank {
			words[i] = WordView{Text: t.Display}
			continue
		}
		w := WordView{Blank: true, Text: maskText}
		switch {
		case n < g.blankIdx, n == g.blankIdx && g.feedback == FeedbackCorrect:
			w.Text, w.Solved = t.Display, true
		case n == g.blankIdx:
			w.Current = true
		}
		words[i] = w
		n++
	}
	s.Blanks = &BlanksView{
		VerseNumber:    g.current.Source.Number,
		VerseIndex:     g.verseIdx,
		VerseCount:     len(g.section.Verses),
		BlankIndex:     g.blankIdx,
		BlankCount:     len(g.blanks),
		Words:          words,
		MultipleChoice: g.choice,
		Options:        g.options,
		CanContinue:    len(g.blanks) == 0,
	}
	return s
}
