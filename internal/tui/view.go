package tui

import (
	"fmt"
	"strings"

	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/session"
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("VerseQuest · Psalm 119"))
	b.WriteString("\n\n")

	switch m.view.Screen {
	case session.ScreenLevelSelect:
		m.viewLevels(&b)
	case session.ScreenModeSelect:
		m.viewModes(&b)
	case session.ScreenPlaying:
		m.viewPlaying(&b)
	case session.ScreenGameOver:
		m.viewGameOver(&b)
	default:
		b.WriteString("Learn the eight-verse sections of Psalm 119 through three games.\n\n")
		b.WriteString(styleSubtle.Render("enter start · esc exit"))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleError.Render(m.err.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewLevels(b *strings.Builder) {
	b.WriteString(styleHeader.Render("Choose a section"))
	b.WriteString("\n")
	for i, s := range m.view.Sections {
		line := fmt.Sprintf("%-8s verses %d–%d", s.Label, s.StartVerse, s.EndVerse)
		if i == m.cursor {
			b.WriteString(styleCursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleSubtle.Render("↑/↓ move · enter choose · d section of the day · esc back"))
}

func (m *Model) viewModes(b *strings.Builder) {
	b.WriteString(styleHeader.Render(m.view.Section + ": choose a game"))
	b.WriteString("\n")
	for i, md := range m.view.Modes {
		line := fmt.Sprintf("%d. %s", i+1, md.Title)
		if i == m.cursor {
			b.WriteString(styleCursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleSubtle.Render("1–3 or enter choose · esc back"))
}

func (m *Model) viewPlaying(b *strings.Builder) {
	g := m.view.Game
	if g == nil {
		return
	}
	mode, _ := game.ParseMode(m.view.Mode)
	b.WriteString(styleHeader.Render(fmt.Sprintf("%s · %s · score %d", m.view.Section, mode.Title(), g.Score)))
	b.WriteString("\n\n")

	switch {
	case g.Blanks != nil:
		m.viewBlanks(b, g.Blanks)
	case g.Ascent != nil:
		m.viewAscent(b, g.Ascent)
	case g.Weaver != nil:
		m.viewWeaver(b, g.Weaver)
	}

	b.WriteString("\n")
	b.WriteString(renderFeedback(g.Feedback, m.message))
}

func (m *Model) viewBlanks(b *strings.Builder, v *game.BlanksView) {
	b.WriteString(styleSubtle.Render(fmt.Sprintf("verse %d (%d of %d)", v.VerseNumber, v.VerseIndex+1, v.VerseCount)))
	b.WriteString("\n")
	words := make([]string, len(v.Words))
	for i, w := range v.Words {
		switch {
		case w.Solved:
			words[i] = styleCorrect.Render(w.Text)
		case w.Current:
			words[i] = styleBlank.Render(w.Text)
		case w.Blank:
			words[i] = styleSubtle.Render(w.Text)
		default:
			words[i] = w.Text
		}
	}
	b.WriteString(styleBox.Render(strings.Join(words, " ")))
	b.WriteString("\n")

	switch {
	case v.CanContinue:
		b.WriteString("Nothing to fill in here.\n")
		b.WriteString(styleSubtle.Render("enter continue · esc quit"))
	case v.MultipleChoice:
		renderOptions(b, v.Options)
		b.WriteString(styleSubtle.Render("1–4 choose · tab type instead · esc quit"))
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(styleSubtle.Render("enter answer · tab multiple choice · esc quit"))
	}
	b.WriteString("\n")
}

func (m *Model) viewAscent(b *strings.Builder, v *game.AscentView) {
	var row strings.Builder
	for i, c := range v.Board {
		cell := "·"
		switch c {
		case game.CellLadder:
			cell = styleLadder.Render("L")
		case game.CellStumble:
			cell = styleStumble.Render("S")
		}
		if i == v.Position {
			cell = stylePlayer.Render("@")
		}
		row.WriteString(cell + " ")
	}
	b.WriteString(styleBox.Render(row.String()))
	b.WriteString("\n")
	if v.Position < 0 {
		b.WriteString("Not on the board yet.\n")
	} else {
		b.WriteString(fmt.Sprintf("cell %d of %d\n", v.Position+1, len(v.Board)))
	}

	if q := v.Question; q != nil {
		b.WriteString(fmt.Sprintf("\nverse %d: %s\n", q.VerseNumber, q.Text))
		renderOptions(b, q.Options)
		b.WriteString(styleSubtle.Render("1–4 answer · esc quit"))
	} else if v.CanRoll {
		b.WriteString(styleSubtle.Render("r roll · esc quit"))
	}
	b.WriteString("\n")
}

func (m *Model) viewWeaver(b *strings.Builder, v *game.WeaverView) {
	b.WriteString(styleSubtle.Render(fmt.Sprintf("verse %d (%d of %d)", v.VerseNumber, v.VerseIndex+1, v.VerseCount)))
	b.WriteString("\n")
	b.WriteString("answer: " + m.tokens(v.Answer, !m.inBank) + "\n")
	b.WriteString("bank:   " + m.tokens(v.Bank, m.inBank) + "\n")
	if v.ClueUsed {
		b.WriteString(styleSubtle.Render("clue: "+v.Clue) + "\n")
	}
	hint := "tab switch · ←/→ move · enter place · c clue · esc quit"
	if v.CanSubmit {
		hint = "s submit · " + hint
	}
	b.WriteString(styleSubtle.Render(hint))
	b.WriteString("\n")
}

func (m *Model) tokens(list []string, focused bool) string {
	out := make([]string, len(list))
	for i, t := range list {
		if focused && i == m.cursor {
			out[i] = styleCursor.Render("[" + t + "]")
		} else {
			out[i] = t
		}
	}
	return strings.Join(out, " ")
}

func (m *Model) viewGameOver(b *strings.Builder) {
	mode, _ := game.ParseMode(m.view.Mode)
	b.WriteString(styleHeader.Render("Section complete!"))
	b.WriteString("\n")
	b.WriteString(styleSubtle.Render(fmt.Sprintf("%s · %s", m.view.Section, mode.Title())))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Final score: %s\n", styleCorrect.Render(fmt.Sprint(m.view.Score))))
	if m.view.Best > 0 {
		b.WriteString(styleSubtle.Render(fmt.Sprintf("Best: %d", m.view.Best)) + "\n")
	}
	b.WriteString("\n")
	keys := "p play again"
	if !m.view.IsLastLevel {
		keys += " · n next level"
	}
	keys += " · m menu · h home"
	b.WriteString(styleSubtle.Render(keys))
}

func renderOptions(b *strings.Builder, options []string) {
	for i, o := range options {
		b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, o))
	}
}

func renderFeedback(f game.Feedback, message string) string {
	switch f {
	case game.FeedbackCorrect:
		return styleCorrect.Render("Correct!")
	case game.FeedbackIncorrect:
		return styleIncorrect.Render("Not quite, try again.")
	}
	if message != "" && message != string(game.OutcomeCorrect) && message != string(game.OutcomeIncorrect) {
		return styleSubtle.Render(message)
	}
	return ""
}
