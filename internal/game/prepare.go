package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/versequest/internal/verses"
)

const (
	// BlanksPerVerse caps how many tokens of a verse are hidden.
	BlanksPerVerse = 2
	// DefaultMinLen is the exclusive minimum answer length for a blank.
	DefaultMinLen = 3

	maskText = "_______"
)

// Token is one whitespace-separated word of a verse.
type Token struct {
	Display string `json:"display"` // surface form, punctuation intact
	Answer  string `json:"answer"`  // Display with . , ; : stripped
	Blank   bool   `json:"blank"`
}

// PreparedVerse is a verse split into tokens with its blanks chosen.
type PreparedVerse struct {
	Source verses.Verse
	Tokens []Token
}

// Blanks returns the answers of the blank tokens in token order.
func (p PreparedVerse) Blanks() []string {
	var out []string
	for _, t := range p.Tokens {
		if t.Blank {
			out = append(out, t.Answer)
		}
	}
	return out
}

// Masked renders the verse with every blank replaced by a placeholder.
func (p PreparedVerse) Masked() string {
	words := make([]string, len(p.Tokens))
	for i, t := range p.Tokens {
		if t.Blank {
			words[i] = maskText
		} else {
			words[i] = t.Display
		}
	}
	return strings.Join(words, " ")
}

// Preparer chooses blanks. MinLen is exclusive: a candidate's answer must be
// longer than MinLen runes.
type Preparer struct {
	MinLen    int
	MaxBlanks int
}

// DefaultPreparer is the FillInTheBlanks configuration.
var DefaultPreparer = Preparer{MinLen: DefaultMinLen, MaxBlanks: BlanksPerVerse}

// Prepare tokenizes v and marks up to p.MaxBlanks eligible tokens as blanks,
// drawn uniformly without replacement from rng.
func (p Preparer) Prepare(v verses.Verse, rng Rand) PreparedVerse {
	words := Tokenize(v.Text)
	tokens := make([]Token, len(words))
	var candidates []int
	for i, w := range words {
		tokens[i] = Token{Display: w, Answer: Normalize(w)}
		if Eligible(w, p.MinLen) {
			candidates = append(candidates, i)
		}
	}
	for _, i := range sample(rng, candidates, p.MaxBlanks) {
		tokens[i].Blank = true
	}
	return PreparedVerse{Source: v, Tokens: tokens}
}

// Tokenize splits text on runs of whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

var punctuation = strings.NewReplacer(".", "", ",", "", ";", "", ":", "")

// Normalize strips the punctuation ignored when comparing answers.
func Normalize(word string) string {
	return punctuation.Replace(word)
}

// Eligible reports whether word, once normalized, is longer than minLen
// runes and made only of letters.
func Eligible(word string, minLen int) bool {
	w := Normalize(word)
	if utf8.RuneCountInString(w) <= minLen {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// answerMatches compares a submission with the target, ignoring case and
// surrounding whitespace.
func answerMatches(input, target string) bool {
	return strings.EqualFold(strings.TrimSpace(input), target)
}
