// internal/httpserver/routes_info.go
//
// Read-only endpoints.
//   - GET /sections -> ordered sections with verse ranges
//   - GET /state    -> current controller view
//   - GET /daily    -> today's section (HMAC of date + salt)
//   - GET /scores   -> recent results and the best score per section/mode

package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/robalobadob/versequest/internal/daily"
	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/session"
	"github.com/robalobadob/versequest/internal/store"
)

const defaultRecent = 20

type dailyRes struct {
	Date    string              `json:"date"`
	Index   int                 `json:"index"`
	Section session.SectionInfo `json:"section"`
}

type bestRow struct {
	Section string    `json:"section"`
	Mode    game.Mode `json:"mode"`
	Score   int       `json:"score"`
}

type scoresRes struct {
	Recent []store.Result `json:"recent"`
	Best   []bestRow      `json:"best"`
}

// handleSections lists the sections; the library is read-only so no loop hop is needed.
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.Sections())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v, err := s.view(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleDaily picks the section of the day.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	p, ok := daily.For(time.Now(), s.opts.DailySalt, s.ctrl.Library())
	if !ok {
		writeError(w, http.StatusNotFound, "no_sections")
		return
	}
	writeJSON(w, http.StatusOK, dailyRes{Date: p.Date, Index: p.Index, Section: session.Summarize(p.Section)})
}

// handleScores returns ?limit= recent results (default 20) and per-section bests.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecent
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}

	ctx := r.Context()
	recent, err := s.results.Recent(ctx, limit)
	if err != nil {
		writeFailure(w, err)
		return
	}
	res := scoresRes{Recent: recent, Best: []bestRow{}}
	for _, sec := range s.ctrl.Sections() {
		for _, m := range game.Modes() {
			b, ok, err := s.results.Best(ctx, sec.Label, m)
			if err != nil {
				writeFailure(w, err)
				return
			}
			if ok {
				res.Best = append(res.Best, bestRow{Section: sec.Label, Mode: m, Score: b.Score})
			}
		}
	}
	writeJSON(w, http.StatusOK, res)
}
