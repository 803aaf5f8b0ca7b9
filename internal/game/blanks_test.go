package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/internal/game/gametest"
)

func newBlanks(t *testing.T, minLen int, texts ...string) (*FillInTheBlanks, *gametest.Scheduler, *recorder) {
	t.Helper()
	sched := &gametest.Scheduler{}
	rec := &recorder{}
	g := NewFillInTheBlanks(section(texts...), deps(gametest.Seq(), sched), rec.hooks())
	g.prep.MinLen = minLen
	g.Start()
	return g, sched, rec
}

func TestFillInTheBlanksCorrectAnswerAdvances(t *testing.T) {
	g, sched, rec := newBlanks(t, 4, "The law of the LORD is perfect", "I am a man")

	require.Equal(t, "perfect", g.Target())
	require.Equal(t, OutcomeIgnored, g.SubmitText("   "))
	require.Equal(t, OutcomeCorrect, g.SubmitText(" Perfect "))
	require.Equal(t, 10, g.Score())

	snap := g.Snapshot()
	require.Equal(t, FeedbackCorrect, snap.Feedback)
	require.True(t, snap.Blanks.Words[6].Solved)
	require.Equal(t, "perfect", snap.Blanks.Words[6].Text)

	// Feedback blocks further answers.
	require.Equal(t, OutcomeIgnored, g.SubmitText("perfect"))

	sched.Advance(799 * time.Millisecond)
	require.Equal(t, 0, g.Snapshot().Blanks.VerseIndex)
	sched.Advance(time.Millisecond)

	snap = g.Snapshot()
	require.Equal(t, 1, snap.Blanks.VerseIndex)
	require.Equal(t, FeedbackNone, snap.Feedback)
	require.True(t, snap.Blanks.CanContinue)
	require.Empty(t, rec.overs)

	require.True(t, g.Continue())
	require.True(t, g.Done())
	require.Equal(t, []int{10}, rec.overs)
	require.False(t, g.Continue())
}

func TestFillInTheBlanksIncorrectKeepsBlank(t *testing.T) {
	g, sched, _ := newBlanks(t, 4, "The law of the LORD is perfect")

	require.Equal(t, OutcomeIncorrect, g.SubmitText("pure"))
	require.Equal(t, 0, g.Score())
	require.Equal(t, FeedbackIncorrect, g.Snapshot().Feedback)

	sched.Advance(800 * time.Millisecond)
	require.Equal(t, FeedbackNone, g.Snapshot().Feedback)
	require.Equal(t, "perfect", g.Target())

	require.Equal(t, OutcomeCorrect, g.SubmitText("perfect"))
	sched.Flush()
	require.True(t, g.Done())
	require.Equal(t, 10, g.Score())
}

func TestFillInTheBlanksScoreFloor(t *testing.T) {
	g, sched, _ := newBlanks(t, 4, "The law of the LORD is perfect")
	for i := 0; i < 5; i++ {
		require.Equal(t, OutcomeIncorrect, g.SubmitText("wrong"))
		requireNonNegative(t, g)
		sched.Flush()
	}
	require.Equal(t, 0, g.Score())
}

func TestFillInTheBlanksTwoBlanks(t *testing.T) {
	g, sched, rec := newBlanks(t, DefaultMinLen, "The law of the LORD is perfect")

	require.Equal(t, "LORD", g.Target())
	snap := g.Snapshot()
	require.Equal(t, 2, snap.Blanks.BlankCount)
	require.True(t, snap.Blanks.Words[4].Current)
	require.Equal(t, maskText, snap.Blanks.Words[6].Text)

	require.Equal(t, OutcomeCorrect, g.SubmitText("lord"))
	sched.Flush()
	require.Equal(t, "perfect", g.Target())

	snap = g.Snapshot()
	require.True(t, snap.Blanks.Words[4].Solved)
	require.True(t, snap.Blanks.Words[6].Current)

	require.Equal(t, OutcomeCorrect, g.SubmitText("perfect"))
	sched.Flush()
	require.Equal(t, []int{20}, rec.overs)
	require.False(t, g.Continue())
}

func TestFillInTheBlanksMultipleChoice(t *testing.T) {
	g, sched, _ := newBlanks(t, 4, "The law of the LORD is perfect, converting the soul")

	require.Equal(t, OutcomeIgnored, g.ChooseOption("perfect"))

	g.ToggleMultipleChoice()
	require.True(t, g.MultipleChoice())
	require.Contains(t, g.Options(), g.Target())
	require.LessOrEqual(t, len(g.Options()), DistractorCount+1)

	target := g.Target()
	require.Equal(t, OutcomeCorrect, g.ChooseOption(target))
	sched.Flush()

	g.ToggleMultipleChoice()
	require.False(t, g.MultipleChoice())
	require.Empty(t, g.Options())
}

func TestFillInTheBlanksQuitCancelsPendingTransition(t *testing.T) {
	g, sched, rec := newBlanks(t, 4, "The law of the LORD is perfect", "Thy word is a lamp")

	require.Equal(t, OutcomeCorrect, g.SubmitText("perfect"))
	g.Quit()
	require.Equal(t, 1, rec.quits)

	sched.Flush()
	require.Equal(t, 0, g.verseIdx)
	require.Empty(t, rec.overs)
	require.Equal(t, OutcomeIgnored, g.SubmitText("lamp"))

	g.Quit()
	require.Equal(t, 1, rec.quits)
}
