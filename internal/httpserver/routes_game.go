// internal/httpserver/routes_game.go
//
// In-game actions under /game. Each targets one engine type; calling an action
// for a mode that is not running answers 409.
//
//   FillInTheBlanks: POST /text {text}, /option {option}, /toggle-choice, /continue
//   VerseAscent:     POST /roll, /answer {option}
//   WordWeaver:      POST /pick {index}, /return {index}, /clue, /submit
//
// Responses carry the action result next to the updated state view.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/session"
)

type textReq struct {
	Text string `json:"text"`
}

type optionReq struct {
	Option string `json:"option"`
}

type indexReq struct {
	Index int `json:"index"`
}

// actionRes is the body of every /game response.
type actionRes struct {
	Outcome game.Outcome `json:"outcome,omitempty"`
	Roll    int          `json:"roll,omitempty"`
	Moved   *bool        `json:"moved,omitempty"`
	Clue    string       `json:"clue,omitempty"`
	State   session.View `json:"state"`
}

// mountGame registers the /game routes.
func (s *Server) mountGame(r chi.Router) {
	// FillInTheBlanks
	r.Post("/text", func(w http.ResponseWriter, r *http.Request) {
		var req textReq
		if !decode(w, r, &req) {
			return
		}
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Blanks()
			if err != nil {
				return err
			}
			res.Outcome = g.SubmitText(req.Text)
			return nil
		})
	})
	r.Post("/option", func(w http.ResponseWriter, r *http.Request) {
		var req optionReq
		if !decode(w, r, &req) {
			return
		}
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Blanks()
			if err != nil {
				return err
			}
			res.Outcome = g.ChooseOption(req.Option)
			return nil
		})
	})
	r.Post("/toggle-choice", func(w http.ResponseWriter, r *http.Request) {
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Blanks()
			if err != nil {
				return err
			}
			g.ToggleMultipleChoice()
			return nil
		})
	})
	r.Post("/continue", func(w http.ResponseWriter, r *http.Request) {
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Blanks()
			if err != nil {
				return err
			}
			res.Moved = ptr(g.Continue())
			return nil
		})
	})

	// VerseAscent
	r.Post("/roll", func(w http.ResponseWriter, r *http.Request) {
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Ascent()
			if err != nil {
				return err
			}
			res.Roll = g.Roll()
			return nil
		})
	})
	r.Post("/answer", func(w http.ResponseWriter, r *http.Request) {
		var req optionReq
		if !decode(w, r, &req) {
			return
		}
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Ascent()
			if err != nil {
				return err
			}
			res.Outcome = g.Answer(req.Option)
			return nil
		})
	})

	// WordWeaver
	r.Post("/pick", func(w http.ResponseWriter, r *http.Request) {
		var req indexReq
		if !decode(w, r, &req) {
			return
		}
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Weaver()
			if err != nil {
				return err
			}
			res.Moved = ptr(g.PickFromBank(req.Index))
			return nil
		})
	})
	r.Post("/return", func(w http.ResponseWriter, r *http.Request) {
		var req indexReq
		if !decode(w, r, &req) {
			return
		}
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Weaver()
			if err != nil {
				return err
			}
			res.Moved = ptr(g.ReturnToBank(req.Index))
			return nil
		})
	})
	r.Post("/clue", func(w http.ResponseWriter, r *http.Request) {
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Weaver()
			if err != nil {
				return err
			}
			res.Clue = g.UseClue()
			return nil
		})
	})
	r.Post("/submit", func(w http.ResponseWriter, r *http.Request) {
		s.play(w, r, func(c *session.Controller, res *actionRes) error {
			g, err := c.Weaver()
			if err != nil {
				return err
			}
			res.Outcome = g.Submit()
			return nil
		})
	})
}

// play runs fn against the controller on the loop and writes the result.
func (s *Server) play(w http.ResponseWriter, r *http.Request, fn func(c *session.Controller, res *actionRes) error) {
	var (
		res    actionRes
		actErr error
	)
	if err := s.loop.Do(r.Context(), func() {
		actErr = fn(s.ctrl, &res)
		res.State = s.ctrl.View()
	}); err != nil {
		writeFailure(w, err)
		return
	}
	if actErr != nil {
		writeFailure(w, actErr)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func ptr[T any](v T) *T { return &v }
