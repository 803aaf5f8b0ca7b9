// internal/game/weaver.go
//
// WordWeaver: rebuild each verse from its shuffled words.
//
// Flow:
//   - Each verse's tokens are shuffled into a bank; the answer starts empty.
//   - PickFromBank appends a bank token to the answer; ReturnToBank sends an
//     answer token to the end of the bank. Bank plus answer always equals the
//     verse's tokens as a multiset.
//   - UseClue reveals the first three words once per verse for -10.
//   - Submit is allowed once the bank is empty. An exact ordered match scores
//     +25 and advances after a delay; otherwise -5 and the split is kept.

package game

import (
	"slices"
	"strings"

	"github.com/robalobadob/versequest/internal/verses"
)

const clueWords = 3

// WordWeaver is the sentence-reordering engine.
type WordWeaver struct {
	base
	verseIdx  int
	correct   []string
	bank      []string
	answer    []string
	clueUsed  bool
	advancing bool // a correct submission is waiting to move on
}

// NewWordWeaver builds the engine; call Start to begin.
func NewWordWeaver(section verses.Section, deps Deps, hooks Hooks) *WordWeaver {
	return &WordWeaver{base: newBase(ModeWordWeaver, section, deps, hooks)}
}

// Start shuffles the first verse.
func (g *WordWeaver) Start() {
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

func (g *WordWeaver) enterVerse(i int) {
	g.verseIdx = i
	g.correct = Tokenize(g.section.Verses[i].Text)
	g.bank = append([]string(nil), g.correct...)
	shuffle(g.rng, g.bank)
	g.answer = nil
	g.clueUsed = false
	g.advancing = false
	g.feedback = FeedbackNone
}

// Bank returns the unplaced tokens.
func (g *WordWeaver) Bank() []string { return g.bank }

// Answer returns the tokens placed so far.
func (g *WordWeaver) Answer() []string { return g.answer }

func (g *WordWeaver) editable() bool { return g.active() && !g.advancing }

// PickFromBank moves bank[i] to the end of the answer.
func (g *WordWeaver) PickFromBank(i int) bool {
	if !g.editable() || i < 0 || i >= len(g.bank) {
		return false
	}
	g.answer = append(g.answer, g.bank[i])
	g.bank = remove(g.bank, i)
	g.feedback = FeedbackNone
	return true
}

// ReturnToBank moves answer[i] to the end of the bank.
func (g *WordWeaver) ReturnToBank(i int) bool {
	if !g.editable() || i < 0 || i >= len(g.answer) {
		return false
	}
	g.bank = append(g.bank, g.answer[i])
	g.answer = remove(g.answer, i)
	g.feedback = FeedbackNone
	return true
}

func remove(s []string, i int) []string {
	out := make([]string, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// UseClue reveals the opening words; the cost applies once per verse.
// It is ignored while a solved verse waits to advance.
func (g *WordWeaver) UseClue() string {
	if !g.editable() {
		return ""
	}
	if !g.clueUsed {
		g.clueUsed = true
		g.score = Penalize(g.score, WeaverClueCost)
	}
	return g.clue()
}

func (g *WordWeaver) clue() string {
	n := min(clueWords, len(g.correct))
	return strings.Join(g.correct[:n], " ") + "..."
}

// CanSubmit reports whether every token has been placed.
func (g *WordWeaver) CanSubmit() bool {
	return g.editable() && len(g.bank) == 0
}

// Submit checks the placed order against the verse.
func (g *WordWeaver) Submit() Outcome {
	if !g.CanSubmit() {
		return OutcomeIgnored
	}
	if !slices.Equal(g.answer, g.correct) {
		g.score = Penalize(g.score, WeaverIncorrect)
		g.feedback = FeedbackIncorrect
		g.later(g.delays.WeaverClear, func() { g.feedback = FeedbackNone })
		return OutcomeIncorrect
	}

	g.score = Reward(g.score, WeaverCorrect)
	g.feedback = FeedbackCorrect
	g.advancing = true
	g.later(g.delays.WeaverAdvance, func() {
		if g.verseIdx < len(g.section.Verses)-1 {
			g.enterVerse(g.verseIdx + 1)
			return
		}
		g.finish()
	})
	return OutcomeCorrect
}

// Snapshot renders the workspace.
func (g *WordWeaver) Snapshot() Snapshot {
	s := g.snapshot()
	if !g.started || g.done {
		return s
	}
	w := &WeaverView{
		VerseNumber: g.section.Verses[g.verseIdx].Number,
		VerseIndex:  g.verseIdx,
		VerseCount:  len(g.section.Verses),
		Bank:        append([]string{}, g.bank...),
		Answer:      append([]string{}, g.answer...),
		ClueUsed:    g.clueUsed,
		CanSubmit:   g.CanSubmit(),
	}
	if g.clueUsed {
		w.Clue = g.clue()
	}
	s.Weaver = w
	return s
}
