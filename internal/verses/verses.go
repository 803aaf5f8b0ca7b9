// internal/verses/verses.go
//
// Provides the static verse content for the game engines.
//
// Responsibilities:
//   - Load the section list from an environment-provided file or fall back to the embedded text.
//   - Keep sections in canonical order; "next" and "is last" are derived from position.
//   - Supply lookups used by the session controller (Find, Index, Next, IsLast).
//
// Content format (one record per line):
//   # comment
//   [ALEPH]            opens a new section labelled "Aleph"
//   1 Blessed are ...  verse number followed by its text
//
// Environment variables:
//   VERSES_FILE=/path/to/content.txt
//
// Constraints:
//   - Every section has at least one verse.
//   - Verse numbers are positive, text is non-empty.
//   - Initialization is run once (sync.Once).

package verses

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/versequest/assets"
)

// Verse is a single numbered line of scripture.
type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Section is a contiguous, named group of verses played as one level.
type Section struct {
	Label      string  `json:"label"`
	StartVerse int     `json:"startVerse"`
	EndVerse   int     `json:"endVerse"`
	Verses     []Verse `json:"verses"`
}

var (
	initOnce   sync.Once
	library    *Library
	initialErr error
)

// Init loads the content exactly once.
// Returns an error if the content is missing or malformed.
func Init() error {
	initOnce.Do(func() {
		var (
			list []Section
			err  error
		)
		if path := os.Getenv("VERSES_FILE"); path != "" {
			list, err = readFile(path)
		} else {
			list, err = Parse(strings.NewReader(assets.Psalm119))
		}
		if err != nil {
			initialErr = fmt.Errorf("verses: %w", err)
			return
		}
		library = NewLibrary(list)
	})
	return initialErr
}

// Default returns the library loaded by Init (nil before a successful Init).
func Default() *Library {
	return library
}

func readFile(path string) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads sections in the content format described above.
func Parse(r io.Reader) ([]Section, error) {
	var out []Section
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			label := strings.TrimSpace(s[1 : len(s)-1])
			if label == "" {
				return nil, fmt.Errorf("line %d: empty section label", line)
			}
			out = append(out, Section{Label: titleCase(label)})
			continue
		}

		if len(out) == 0 {
			return nil, fmt.Errorf("line %d: verse before any section", line)
		}
		num, text, ok := strings.Cut(s, " ")
		n, err := strconv.Atoi(num)
		if !ok || err != nil || n <= 0 {
			return nil, fmt.Errorf("line %d: expected \"<number> <text>\"", line)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("line %d: verse %d has no text", line, n)
		}

		sec := &out[len(out)-1]
		if len(sec.Verses) == 0 {
			sec.StartVerse = n
		} else if n <= sec.EndVerse {
			return nil, fmt.Errorf("line %d: verse %d out of order", line, n)
		}
		sec.EndVerse = n
		sec.Verses = append(sec.Verses, Verse{Number: n, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return nil, errors.New("no sections")
	}
	for _, s := range out {
		if len(s.Verses) == 0 {
			return nil, fmt.Errorf("section %q has no verses", s.Label)
		}
	}
	return out, nil
}

// titleCase turns "ALEPH" into "Aleph".
func titleCase(s string) string {
	s = strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Library is an ordered, read-only set of sections.
type Library struct {
	sections []Section
	byLabel  map[string]int // lowercased label -> index
}

// NewLibrary indexes list; the slice order is the canonical level order.
func NewLibrary(list []Section) *Library {
	l := &Library{sections: list, byLabel: make(map[string]int, len(list))}
	for i, s := range list {
		l.byLabel[strings.ToLower(s.Label)] = i
	}
	return l
}

// Sections returns all sections in canonical order.
func (l *Library) Sections() []Section {
	return l.sections
}

// Find returns the section with the given label (case-insensitive).
func (l *Library) Find(label string) (Section, bool) {
	i := l.Index(label)
	if i < 0 {
		return Section{}, false
	}
	return l.sections[i], true
}

// Index reports the position of label, or -1.
func (l *Library) Index(label string) int {
	if i, ok := l.byLabel[strings.ToLower(label)]; ok {
		return i
	}
	return -1
}

// Next returns the section after label, if there is one.
func (l *Library) Next(label string) (Section, bool) {
	i := l.Index(label)
	if i < 0 || i >= len(l.sections)-1 {
		return Section{}, false
	}
	return l.sections[i+1], true
}

// IsLast reports whether label is the final section.
func (l *Library) IsLast(label string) bool {
	i := l.Index(label)
	return i >= 0 && i == len(l.sections)-1
}

// Stats returns counts of loaded content: (sections, verses).
func (l *Library) Stats() (sectionCount int, verseCount int) {
	for _, s := range l.sections {
		verseCount += len(s.Verses)
	}
	return len(l.sections), verseCount
}
