package game

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/assets"
	"github.com/robalobadob/versequest/internal/game/gametest"
	"github.com/robalobadob/versequest/internal/verses"
)

func TestNormalizeAndEligible(t *testing.T) {
	tests := []struct {
		word     string
		minLen   int
		norm     string
		eligible bool
	}{
		{"perfect.", 3, "perfect", true},
		{"LORD:", 3, "LORD", true},
		{"LORD:", 4, "LORD", false},
		{"way?", 2, "way?", false},
		{"heart,", 4, "heart", true},
		{"the", 3, "the", false},
		{"thine;", 3, "thine", true},
		{"O", 0, "O", true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			require.Equal(t, tt.norm, Normalize(tt.word))
			require.Equal(t, tt.eligible, Eligible(tt.word, tt.minLen))
		})
	}
}

func TestPrepareChoosesOnlyEligibleBlank(t *testing.T) {
	v := verses.Verse{Number: 7, Text: "The law of the LORD is perfect"}
	pv := Preparer{MinLen: 4, MaxBlanks: BlanksPerVerse}.Prepare(v, gametest.Seq())

	require.Equal(t, []string{"perfect"}, pv.Blanks())
	require.Len(t, pv.Tokens, 7)
	require.True(t, pv.Tokens[6].Blank)
	require.Equal(t, "The law of the LORD is _______", pv.Masked())
}

func TestPrepareKeepsTokenOrder(t *testing.T) {
	v := verses.Verse{Number: 7, Text: "The law of the LORD is perfect,"}
	// Draw "perfect" first, then "LORD".
	pv := DefaultPreparer.Prepare(v, gametest.Seq(1))

	require.Equal(t, []string{"LORD", "perfect"}, pv.Blanks())
	require.Equal(t, "perfect,", pv.Tokens[6].Display)
	require.Equal(t, "perfect", pv.Tokens[6].Answer)
}

func TestPrepareWithoutCandidates(t *testing.T) {
	pv := DefaultPreparer.Prepare(verses.Verse{Number: 1, Text: "I am a man"}, gametest.Seq())
	require.Empty(t, pv.Blanks())
	require.Equal(t, "I am a man", pv.Masked())
}

func TestPrepareBlankBoundsAcrossContent(t *testing.T) {
	list, err := verses.Parse(strings.NewReader(assets.Psalm119))
	require.NoError(t, err)

	for seed := uint64(1); seed <= 20; seed++ {
		rng := NewRand(seed)
		for _, s := range list {
			for _, v := range s.Verses {
				pv := DefaultPreparer.Prepare(v, rng)
				blanks := pv.Blanks()
				require.LessOrEqual(t, len(blanks), BlanksPerVerse)
				for _, b := range blanks {
					require.Greater(t, len([]rune(b)), DefaultMinLen, b)
					for _, r := range b {
						require.True(t, unicode.IsLetter(r), b)
					}
				}
			}
		}
	}
}
