package verses

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/assets"
)

func TestParseEmbeddedContent(t *testing.T) {
	list, err := Parse(strings.NewReader(assets.Psalm119))
	require.NoError(t, err)
	require.Len(t, list, 22)

	lib := NewLibrary(list)
	sections, verses := lib.Stats()
	require.Equal(t, 22, sections)
	require.Equal(t, 176, verses)

	first := list[0]
	require.Equal(t, "Aleph", first.Label)
	require.Equal(t, 1, first.StartVerse)
	require.Equal(t, 8, first.EndVerse)
	require.Len(t, first.Verses, 8)
	require.Equal(t, "Tau", list[21].Label)
	require.Equal(t, 176, list[21].EndVerse)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"empty", "# nothing\n", "no sections"},
		{"verse before section", "1 Blessed\n", "before any section"},
		{"bad number", "[ALEPH]\nx Blessed\n", "<number> <text>"},
		{"zero number", "[ALEPH]\n0 Blessed\n", "<number> <text>"},
		{"missing text", "[ALEPH]\n1\n", "<number> <text>"},
		{"out of order", "[ALEPH]\n2 Blessed\n1 Blessed\n", "out of order"},
		{"empty section", "[ALEPH]\n[BETH]\n9 Wherewithal\n", "has no verses"},
		{"empty label", "[ ]\n1 Blessed\n", "empty section label"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ALEPH", "Aleph"},
		{"beth", "Beth"},
		{"ÄLEPH", "Äleph"},
		{"ΣΑΜΕΧ", "Σαμεχ"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			list, err := Parse(strings.NewReader("[" + tt.raw + "]\n1 Blessed\n"))
			require.NoError(t, err)
			require.Equal(t, tt.want, list[0].Label)
			require.True(t, utf8.ValidString(list[0].Label))
		})
	}
}

func TestLibraryNavigation(t *testing.T) {
	lib := NewLibrary([]Section{
		{Label: "Aleph", Verses: []Verse{{1, "a"}}},
		{Label: "Beth", Verses: []Verse{{9, "b"}}},
		{Label: "Gimel", Verses: []Verse{{17, "c"}}},
	})

	s, ok := lib.Find("beth")
	require.True(t, ok)
	require.Equal(t, "Beth", s.Label)
	_, ok = lib.Find("Daleth")
	require.False(t, ok)

	require.Equal(t, 2, lib.Index("GIMEL"))
	require.Equal(t, -1, lib.Index(""))

	next, ok := lib.Next("Aleph")
	require.True(t, ok)
	require.Equal(t, "Beth", next.Label)
	_, ok = lib.Next("Gimel")
	require.False(t, ok)

	require.True(t, lib.IsLast("Gimel"))
	require.False(t, lib.IsLast("Beth"))
	require.False(t, lib.IsLast("Daleth"))
}

func TestInitFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.txt")
	require.NoError(t, os.WriteFile(path, []byte("[ONE]\n1 In the beginning\n"), 0o600))
	t.Setenv("VERSES_FILE", path)

	require.NoError(t, Init())
	sections, verses := Default().Stats()
	require.Equal(t, 1, sections)
	require.Equal(t, 1, verses)
}
