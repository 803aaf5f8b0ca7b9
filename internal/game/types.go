// internal/game/types.go
//
// Core type definitions for the game engines.
// Defines:
//   - Mode: which mini-game an engine plays.
//   - Feedback / Outcome: transient answer feedback and the result of a submission.
//   - Snapshot: the view model every engine exposes to front ends.

package game

import (
	"fmt"
	"strings"
)

// Mode identifies one of the three mini-games.
type Mode int

const (
	ModeFillInTheBlanks Mode = iota
	ModeVerseAscent
	ModeWordWeaver
)

var modeNames = map[Mode]string{
	ModeFillInTheBlanks: "fill-in-the-blanks",
	ModeVerseAscent:     "verse-ascent",
	ModeWordWeaver:      "word-weaver",
}

// Modes lists every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeFillInTheBlanks, ModeVerseAscent, ModeWordWeaver}
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Valid reports whether m is one of Modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Title is the human-readable name shown in menus.
func (m Mode) Title() string {
	switch m {
	case ModeFillInTheBlanks:
		return "Fill in the Blanks"
	case ModeVerseAscent:
		return "Verse Ascent"
	case ModeWordWeaver:
		return "Word Weaver"
	}
	return m.String()
}

// ParseMode accepts the String form of a mode (case-insensitive).
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, true
		}
	}
	return 0, false
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	v, ok := ParseMode(string(b))
	if !ok {
		return fmt.Errorf("unknown mode %q", b)
	}
	*m = v
	return nil
}

// Feedback is the transient verdict shown after an answer.
type Feedback string

const (
	FeedbackNone      Feedback = ""
	FeedbackCorrect   Feedback = "correct"
	FeedbackIncorrect Feedback = "incorrect"
)

// Outcome reports what a submission did.
type Outcome string

const (
	OutcomeIgnored   Outcome = "ignored" // no effect (empty input, busy, wrong phase)
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Snapshot is a JSON-friendly view of an engine; exactly one of the
// mode-specific views is set.
type Snapshot struct {
	Mode     Mode        `json:"mode"`
	Section  string      `json:"section"`
	Score    int         `json:"score"`
	Done     bool        `json:"done"`
	Feedback Feedback    `json:"feedback,omitempty"`
	Blanks   *BlanksView `json:"blanks,omitempty"`
	Ascent   *AscentView `json:"ascent,omitempty"`
	Weaver   *WeaverView `json:"weaver,omitempty"`
}

// BlanksView is the FillInTheBlanks screen.
type BlanksView struct {
	VerseNumber    int        `json:"verseNumber"`
	VerseIndex     int        `json:"verseIndex"`
	VerseCount     int        `json:"verseCount"`
	BlankIndex     int        `json:"blankIndex"`
	BlankCount     int        `json:"blankCount"`
	Words          []WordView `json:"words"`
	MultipleChoice bool       `json:"multipleChoice"`
	Options        []string   `json:"options,omitempty"`
	CanContinue    bool       `json:"canContinue"`
}

// WordView is one token as displayed: plain text, a revealed blank, the
// active blank or a masked later blank.
type WordView struct {
	Text    string `json:"text"`
	Blank   bool   `json:"blank"`
	Current bool   `json:"current,omitempty"`
	Solved  bool   `json:"solved,omitempty"`
}

// AscentView is the VerseAscent board.
type AscentView struct {
	Board    []Cell    `json:"board"`
	Position int       `json:"position"`
	LastRoll int       `json:"lastRoll"`
	CanRoll  bool      `json:"canRoll"`
	Question *Question `json:"question,omitempty"`
}

// WeaverView is the WordWeaver workspace.
type WeaverView struct {
	VerseNumber int      `json:"verseNumber"`
	VerseIndex  int      `json:"verseIndex"`
	VerseCount  int      `json:"verseCount"`
	Bank        []string `json:"bank"`
	Answer      []string `json:"answer"`
	ClueUsed    bool     `json:"clueUsed"`
	Clue        string   `json:"clue,omitempty"`
	CanSubmit   bool     `json:"canSubmit"`
}
