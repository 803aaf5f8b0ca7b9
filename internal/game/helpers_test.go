package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/internal/game/gametest"
	"github.com/robalobadob/versequest/internal/verses"
)

func section(texts ...string) verses.Section {
	s := verses.Section{Label: "Test", StartVerse: 1, EndVerse: len(texts)}
	for i, t := range texts {
		s.Verses = append(s.Verses, verses.Verse{Number: i + 1, Text: t})
	}
	return s
}

// recorder captures engine callbacks.
type recorder struct {
	overs []int
	quits int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnGameOver: func(score int) { r.overs = append(r.overs, score) },
		OnQuit:     func() { r.quits++ },
	}
}

func deps(r Rand, s *gametest.Scheduler) Deps {
	return Deps{Rand: r, Scheduler: s}
}

func requireNonNegative(t *testing.T, e Engine) {
	t.Helper()
	require.GreaterOrEqual(t, e.Score(), 0)
}
