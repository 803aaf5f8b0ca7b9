// internal/store/memory.go
//
// In-memory results history.
// Every finished game is recorded here so menus can show recent play and the
// best score per section and mode.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Recent() returns newest first.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/versequest/internal/game"
)

// ErrInvalidResult is returned by Save for a result without a section.
var ErrInvalidResult = errors.New("result has no section")

// Result is one completed game.
type Result struct {
	SessionID string    `json:"sessionId"`
	Section   string    `json:"section"`
	Mode      game.Mode `json:"mode"`
	Score     int       `json:"score"`
	At        time.Time `json:"at"`
}

// Results is the history interface the session controller writes to.
type Results interface {
	// Save appends a result.
	Save(ctx context.Context, r Result) error

	// Best returns the highest score for section and mode; ok is false when
	// nothing has been recorded.
	Best(ctx context.Context, section string, mode game.Mode) (best Result, ok bool, err error)

	// Recent returns up to limit results, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]Result, error)
}

type bestKey struct {
	section string
	mode    game.Mode
}

// memory is an in-memory Results implementation.
type memory struct {
	mu      sync.RWMutex       // guards results and best
	results []Result           // append order
	best    map[bestKey]Result // highest score per section/mode
}

// NewMemoryStore constructs an empty in-memory Results.
func NewMemoryStore() Results {
	return &memory{best: make(map[bestKey]Result)}
}

func (m *memory) Save(ctx context.Context, r Result) error {
	if r.Section == "" {
		return ErrInvalidResult
	}
	if r.At.IsZero() {
		r.At = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	k := bestKey{r.Section, r.Mode}
	if cur, ok := m.best[k]; !ok || r.Score > cur.Score {
		m.best[k] = r
	}
	return nil
}

func (m *memory) Best(ctx context.Context, section string, mode game.Mode) (Result, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.best[bestKey{section, mode}]
	return r, ok, nil
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.results)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Result, 0, n)
	for i := len(m.results) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.results[i])
	}
	return out, nil
}
