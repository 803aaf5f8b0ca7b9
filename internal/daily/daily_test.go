package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/internal/verses"
)

func library(t *testing.T) *verses.Library {
	t.Helper()
	require.NoError(t, verses.Init())
	return verses.Default()
}

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 1, 5, 0, 0, 0, loc)
	require.Equal(t, "2026-02-28", DateKey(ts))
}

func TestForIsStableWithinADay(t *testing.T) {
	lib := library(t)
	day := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	a, ok := For(day, "salt", lib)
	require.True(t, ok)
	b, _ := For(day.Add(10*time.Hour), "salt", lib)
	require.Equal(t, a, b)

	require.Equal(t, "2026-10-15", a.Date)
	require.Equal(t, lib.Index(a.Section.Label), a.Index)
	require.Equal(t, lib.Sections()[a.Index].Label, a.Section.Label)
}

func TestForSpreadsAcrossSections(t *testing.T) {
	lib := library(t)
	seen := map[string]bool{}
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		p, _ := For(day.AddDate(0, 0, i), "local_dev_salt", lib)
		seen[p.Section.Label] = true
	}
	require.Greater(t, len(seen), 15)
}

func TestForDependsOnSalt(t *testing.T) {
	lib := library(t)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differ := false
	for i := 0; i < 30 && !differ; i++ {
		d := day.AddDate(0, 0, i)
		a, _ := For(d, "one", lib)
		b, _ := For(d, "two", lib)
		differ = a.Index != b.Index
	}
	require.True(t, differ)
}

func TestForEmptyLibrary(t *testing.T) {
	_, ok := For(time.Now(), "salt", verses.NewLibrary(nil))
	require.False(t, ok)
}
