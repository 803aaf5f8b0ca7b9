package game

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/internal/game/gametest"
)

const lampVerse = "Thy word is a lamp unto"

func newWeaver(t *testing.T, texts ...string) (*WordWeaver, *gametest.Scheduler, *recorder) {
	t.Helper()
	sched := &gametest.Scheduler{}
	rec := &recorder{}
	g := NewWordWeaver(section(texts...), deps(gametest.Seq(), sched), rec.hooks())
	g.Start()
	return g, sched, rec
}

// solve places the bank tokens in verse order.
func solve(t *testing.T, g *WordWeaver) {
	t.Helper()
	for _, want := range g.correct {
		i := slices.Index(g.Bank(), want)
		require.GreaterOrEqual(t, i, 0, want)
		require.True(t, g.PickFromBank(i))
	}
}

func sorted(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	slices.Sort(out)
	return out
}

func TestWordWeaverKeepsTokens(t *testing.T) {
	sched := &gametest.Scheduler{}
	rng := NewRand(7)
	g := NewWordWeaver(section(lampVerse), deps(rng, sched), Hooks{})
	g.Start()
	want := sorted(Tokenize(lampVerse))

	for i := 0; i < 200; i++ {
		if rng.IntN(2) == 0 && len(g.Bank()) > 0 {
			g.PickFromBank(rng.IntN(len(g.Bank())))
		} else if len(g.Answer()) > 0 {
			g.ReturnToBank(rng.IntN(len(g.Answer())))
		}
		require.Equal(t, want, sorted(g.Bank(), g.Answer()))
		require.Equal(t, len(g.Bank()) == 0, g.CanSubmit())
	}
}

func TestWordWeaverOutOfRangeMoves(t *testing.T) {
	g, _, _ := newWeaver(t, lampVerse)
	require.False(t, g.PickFromBank(-1))
	require.False(t, g.PickFromBank(len(g.Bank())))
	require.False(t, g.ReturnToBank(0))
}

func TestWordWeaverCorrectSubmission(t *testing.T) {
	g, sched, rec := newWeaver(t, lampVerse, "and a light unto my path")

	require.Equal(t, OutcomeIgnored, g.Submit())
	solve(t, g)
	require.Equal(t, OutcomeCorrect, g.Submit())
	require.Equal(t, 25, g.Score())
	require.Equal(t, FeedbackCorrect, g.Snapshot().Feedback)

	// Edits wait for the advance.
	require.False(t, g.ReturnToBank(0))
	require.Equal(t, OutcomeIgnored, g.Submit())

	sched.Advance(1199 * time.Millisecond)
	require.Equal(t, 0, g.Snapshot().Weaver.VerseIndex)
	sched.Advance(time.Millisecond)

	snap := g.Snapshot()
	require.Equal(t, 1, snap.Weaver.VerseIndex)
	require.Empty(t, snap.Weaver.Answer)
	require.Len(t, snap.Weaver.Bank, 6)
	require.False(t, snap.Weaver.ClueUsed)
	require.Equal(t, FeedbackNone, snap.Feedback)

	solve(t, g)
	g.Submit()
	require.Empty(t, rec.overs)
	sched.Flush()
	require.Equal(t, []int{50}, rec.overs)
	require.True(t, g.Done())
}

func TestWordWeaverIncorrectSubmission(t *testing.T) {
	g, sched, _ := newWeaver(t, lampVerse)
	g.bank = slices.Clone(g.correct)
	slices.Reverse(g.bank)
	for len(g.Bank()) > 0 {
		g.PickFromBank(0)
	}

	require.Equal(t, OutcomeIncorrect, g.Submit())
	require.Equal(t, 0, g.Score())
	require.Len(t, g.Answer(), 6)
	require.Equal(t, FeedbackIncorrect, g.Snapshot().Feedback)

	sched.Advance(1000 * time.Millisecond)
	require.Equal(t, FeedbackNone, g.Snapshot().Feedback)
	require.Len(t, g.Answer(), 6)

	require.True(t, g.ReturnToBank(0))
	require.Len(t, g.Bank(), 1)
	require.False(t, g.CanSubmit())
}

func TestWordWeaverClue(t *testing.T) {
	g, sched, _ := newWeaver(t, lampVerse, lampVerse)
	solve(t, g)
	g.Submit()
	sched.Flush()
	require.Equal(t, 25, g.Score())

	require.Equal(t, "Thy word is...", g.UseClue())
	require.Equal(t, 15, g.Score())
	require.Equal(t, "Thy word is...", g.UseClue())
	require.Equal(t, 15, g.Score())

	snap := g.Snapshot()
	require.True(t, snap.Weaver.ClueUsed)
	require.Equal(t, "Thy word is...", snap.Weaver.Clue)
}

func TestWordWeaverClueFloorsScore(t *testing.T) {
	g, _, _ := newWeaver(t, "Blessed are the undefiled")
	g.UseClue()
	require.Equal(t, 0, g.Score())
}

func TestWordWeaverClueIgnoredWhileAdvancing(t *testing.T) {
	g, sched, rec := newWeaver(t, lampVerse)
	solve(t, g)
	require.Equal(t, OutcomeCorrect, g.Submit())

	require.Equal(t, "", g.UseClue())
	require.Equal(t, 25, g.Score())
	require.False(t, g.Snapshot().Weaver.ClueUsed)

	sched.Flush()
	require.Equal(t, []int{25}, rec.overs)
}
