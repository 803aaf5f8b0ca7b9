// internal/daily/daily.go
//
// Section of the day.
// Every player with the same salt gets the same section on a given UTC date:
// the HMAC-SHA256 of the date key selects a position in the library's
// canonical order.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/versequest/internal/verses"
)

// Pick is the section chosen for one date.
type Pick struct {
	Date    string         `json:"date"`
	Index   int            `json:"index"` // position in the library's order
	Section verses.Section `json:"-"`
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// For picks the section of the day for t. ok is false for an empty library.
func For(t time.Time, salt string, lib *verses.Library) (p Pick, ok bool) {
	sections := lib.Sections()
	if len(sections) == 0 {
		return Pick{}, false
	}
	key := DateKey(t)
	i := position(key, salt, len(sections))
	return Pick{Date: key, Index: i, Section: sections[i]}, true
}

// position reduces HMAC(salt, key) into [0, n).
func position(key, salt string, n int) int {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(key))
	v := binary.BigEndian.Uint64(h.Sum(nil)[:8])
	return int(v % uint64(n))
}
