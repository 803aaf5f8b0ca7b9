// internal/httpserver/routes_nav.go
//
// Screen navigation under /nav. Every endpoint answers with the new state view.
//   - POST /nav/start, /back, /home                -> Welcome / selection screens
//   - POST /nav/level {label}, /mode {mode}        -> choose section, start a game
//   - POST /nav/quit, /play-again, /next-level, /menu

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/session"
)

type levelReq struct {
	Label string `json:"label"`
}

type modeReq struct {
	Mode string `json:"mode"` // "fill-in-the-blanks" | "verse-ascent" | "word-weaver"
}

// mountNav registers the /nav routes.
func (s *Server) mountNav(r chi.Router) {
	r.Post("/start", s.navigate(func(c *session.Controller) error { return c.Start() }))
	r.Post("/back", s.navigate(func(c *session.Controller) error { return c.Back() }))
	r.Post("/home", s.navigate(func(c *session.Controller) error {
		c.GoHome()
		return nil
	}))
	r.Post("/quit", s.navigate(func(c *session.Controller) error { return c.Quit() }))
	r.Post("/play-again", s.navigate(func(c *session.Controller) error { return c.PlayAgain() }))
	r.Post("/next-level", s.navigate(func(c *session.Controller) error { return c.NextLevel() }))
	r.Post("/menu", s.navigate(func(c *session.Controller) error { return c.GoToMenu() }))

	r.Post("/level", func(w http.ResponseWriter, r *http.Request) {
		var req levelReq
		if !decode(w, r, &req) {
			return
		}
		s.navigate(func(c *session.Controller) error { return c.SelectLevel(req.Label) })(w, r)
	})
	r.Post("/mode", func(w http.ResponseWriter, r *http.Request) {
		var req modeReq
		if !decode(w, r, &req) {
			return
		}
		m, ok := game.ParseMode(req.Mode)
		if !ok {
			m = game.Mode(-1) // lets the controller degrade to LevelSelect
		}
		s.navigate(func(c *session.Controller) error { return c.SelectMode(m) })(w, r)
	})
}

// navigate runs fn on the loop and answers with the resulting view.
func (s *Server) navigate(fn func(c *session.Controller) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			actErr error
			v      session.View
		)
		if err := s.loop.Do(r.Context(), func() {
			actErr = fn(s.ctrl)
			v = s.ctrl.View()
		}); err != nil {
			writeFailure(w, err)
			return
		}
		if actErr != nil {
			writeFailure(w, actErr)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}
