package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/internal/game/gametest"
)

func TestOptionsFromSectionPool(t *testing.T) {
	pool := Tokenize("The law of the LORD is perfect, converting the soul: the testimony of the LORD is sure, making wise the simple.")

	for seed := uint64(1); seed <= 50; seed++ {
		opts := Options("perfect", pool, DefaultMinLen, NewRand(seed))
		require.Len(t, opts, 4)

		seen := map[string]bool{}
		targets := 0
		for _, o := range opts {
			key := strings.ToLower(o)
			require.False(t, seen[key], "duplicate option %q", o)
			seen[key] = true
			if o == "perfect" {
				targets++
				continue
			}
			require.True(t, Eligible(o, DefaultMinLen), o)
		}
		require.Equal(t, 1, targets)
	}
}

func TestOptionsDegrade(t *testing.T) {
	tests := []struct {
		name string
		pool []string
		want []string
	}{
		{"two distractors", []string{"perfect", "grace", "mercy"}, []string{"grace", "mercy", "perfect"}},
		{"target excluded case-insensitively", []string{"Perfect", "PERFECT.", "truth"}, []string{"truth", "perfect"}},
		{"duplicates collapse", []string{"Truth", "truth", "truth.", "the"}, []string{"Truth", "perfect"}},
		{"empty pool", nil, []string{"perfect"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options("perfect", tt.pool, DefaultMinLen, gametest.Seq())
			require.ElementsMatch(t, tt.want, opts)
		})
	}
}

func TestSectionWords(t *testing.T) {
	s := section("Thy word is", "a lamp")
	require.Equal(t, []string{"Thy", "word", "is", "a", "lamp"}, SectionWords(s))
}
