package game

import (
	"strings"

	"github.com/robalobadob/versequest/internal/verses"
)

// DistractorCount is how many wrong answers accompany the target.
const DistractorCount = 3

// SectionWords flattens every token of a section, in verse order.
func SectionWords(s verses.Section) []string {
	var out []string
	for _, v := range s.Verses {
		out = append(out, Tokenize(v.Text)...)
	}
	return out
}

// Options builds a multiple-choice set: up to DistractorCount distractors
// from pool plus target, in random order. A small pool yields fewer options.
func Options(target string, pool []string, minLen int, rng Rand) []string {
	seen := map[string]struct{}{strings.ToLower(target): {}}
	var candidates []string
	for _, w := range pool {
		if !Eligible(w, minLen) {
			continue
		}
		w = Normalize(w)
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, w)
	}

	opts := append(sample(rng, candidates, DistractorCount), target)
	shuffle(rng, opts)
	return opts
}
