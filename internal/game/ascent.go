// internal/game/ascent.go
//
// VerseAscent: a 25-cell board race driven by dice and verse questions.
//
// Rules:
//   - The board gets 4 ladders and 4 stumbles among cells 1..23, fixed per game.
//   - Roll moves 1-4 cells (from the unstarted position -1 a roll of r lands
//     on r-1), clamped to the last cell. The dice move always stands.
//   - Each roll asks one question about a random verse of the section. With no
//     eligible word the move stands unconditionally.
//   - Answers are revealed for a delay, then committed:
//       correct   -> +20; if the cell left by the roll was a ladder, +5 cells.
//       incorrect -> -5;  if the cell left by the roll was a stumble, -5 cells.
//   - Reaching the last cell ends the game with a +50 bonus.

package game

import (
	"github.com/robalobadob/versequest/internal/verses"
)

const (
	BoardSize    = 25
	LadderCount  = 4
	StumbleCount = 4
	DieSides     = 4
	JumpLength   = 5
)

// Cell is the type of a board square.
type Cell string

const (
	CellNormal  Cell = "normal"
	CellLadder  Cell = "ladder"
	CellStumble Cell = "stumble"
)

// Board is the fixed layout of one VerseAscent game.
type Board [BoardSize]Cell

// NewBoard draws ladders and stumbles from the interior cells 1..BoardSize-2.
func NewBoard(rng Rand) Board {
	var b Board
	for i := range b {
		b[i] = CellNormal
	}
	interior := make([]int, 0, BoardSize-2)
	for i := 1; i < BoardSize-1; i++ {
		interior = append(interior, i)
	}
	picks := sample(rng, interior, LadderCount+StumbleCount)
	for i, cell := range picks {
		if i < LadderCount {
			b[cell] = CellLadder
		} else {
			b[cell] = CellStumble
		}
	}
	return b
}

// Question is a single multiple-choice prompt.
type Question struct {
	VerseNumber int      `json:"verseNumber"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	answer      string
}

// VerseAscent is the board game engine.
type VerseAscent struct {
	base
	prep     Preparer
	pool     []string
	board    Board
	position int
	lastRoll int
	from     Cell // type of the cell left by the pending roll
	question *Question
	pending  bool // an answer is being revealed
}

// NewVerseAscent builds the engine and its board; call Start to begin.
func NewVerseAscent(section verses.Section, deps Deps, hooks Hooks) *VerseAscent {
	g := &VerseAscent{
		base:     newBase(ModeVerseAscent, section, deps, hooks),
		prep:     Preparer{MinLen: DefaultMinLen, MaxBlanks: 1},
		pool:     SectionWords(section),
		position: -1,
	}
	g.board = NewBoard(g.rng)
	return g
}

// Start begins play.
func (g *VerseAscent) Start() {
	if g.started {
		return
	}
	g.started = true
	if len(g.section.Verses) == 0 {
		g.finish()
	}
}

// Board returns the layout.
func (g *VerseAscent) Board() Board { return g.board }

// Position is the player's cell, -1 before the first roll.
func (g *VerseAscent) Position() int { return g.position }

// Question returns the pending question, if any.
func (g *VerseAscent) Question() *Question { return g.question }

// CanRoll reports whether Roll would do anything.
func (g *VerseAscent) CanRoll() bool {
	return g.active() && g.question == nil && !g.pending && g.position < BoardSize-1
}

// Roll throws the die and moves the player. It returns the roll, or 0 when
// rolling is not allowed.
func (g *VerseAscent) Roll() int {
	if !g.CanRoll() {
		return 0
	}
	roll := g.rng.IntN(DieSides) + 1
	g.lastRoll = roll

	g.from = CellNormal
	landing := g.position + roll
	if g.position < 0 {
		landing = roll - 1
	} else {
		g.from = g.board[g.position]
	}
	if landing > BoardSize-1 {
		landing = BoardSize - 1
	}
	g.position = landing

	q := g.nextQuestion()
	if q == nil {
		if g.position == BoardSize-1 {
			g.score = Reward(g.score, AscentFinishBonus)
			g.finish()
		}
		return roll
	}
	g.question = q
	return roll
}

// nextQuestion blanks one word of a random section verse.
func (g *VerseAscent) nextQuestion() *Question {
	v := g.section.Verses[g.rng.IntN(len(g.section.Verses))]
	pv := g.prep.Prepare(v, g.rng)
	blanks := pv.Blanks()
	if len(blanks) == 0 {
		return nil
	}
	return &Question{
		VerseNumber: v.Number,
		Text:        pv.Masked(),
		Options:     Options(blanks[0], g.pool, g.prep.MinLen, g.rng),
		answer:      blanks[0],
	}
}

// Answer responds to the pending question. The verdict shows immediately;
// score and position commit after the reveal delay.
func (g *VerseAscent) Answer(option string) Outcome {
	if !g.active() || g.question == nil || g.pending {
		return OutcomeIgnored
	}
	correct := answerMatches(option, g.question.answer)
	g.pending = true
	if correct {
		g.feedback = FeedbackCorrect
	} else {
		g.feedback = FeedbackIncorrect
	}
	g.later(g.delays.Ascent, func() { g.commit(correct) })
	if correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

func (g *VerseAscent) commit(correct bool) {
	pos := g.position
	if correct {
		g.score = Reward(g.score, AscentCorrect)
		if g.from == CellLadder {
			pos = min(pos+JumpLength, BoardSize-1)
		}
	} else {
		g.score = Penalize(g.score, AscentIncorrect)
		if g.from == CellStumble {
			pos = max(pos-JumpLength, 0)
		}
	}
	g.position = pos
	g.question = nil
	g.pending = false
	g.feedback = FeedbackNone
	g.lastRoll = 0
	g.from = CellNormal

	if g.position >= BoardSize-1 {
		g.score = Reward(g.score, AscentFinishBonus)
		g.finish()
	}
}

// Snapshot renders the board.
func (g *VerseAscent) Snapshot() Snapshot {
	s := g.snapshot()
	s.Ascent = &AscentView{
		Board:    append([]Cell(nil), g.board[:]...),
		Position: g.position,
		LastRoll: g.lastRoll,
		CanRoll:  g.CanRoll(),
		Question: g.question,
	}
	return s
}
