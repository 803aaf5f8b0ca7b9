// internal/httpserver/server.go
//
// HTTP server wiring for the VerseQuest local API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/sections", "/daily", "/scores".
//   - Navigation endpoints: POST /nav/* drive the session controller.
//   - Game endpoints: POST /game/* act on the running engine.
//   - State: GET /state, plus a WebSocket feed at /ws.
//
// Notes:
//   - Every controller or engine call runs on the event loop (loop.Do), so
//     handlers never touch game state from their own goroutine.
//   - /ws is mounted outside the Timeout middleware; it lives until the client
//     leaves, the loop stops or the server shuts down.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/versequest/internal/loop"
	"github.com/robalobadob/versequest/internal/session"
	"github.com/robalobadob/versequest/internal/store"
)

// Options configure a Server.
type Options struct {
	ClientOrigin string // CORS origin
	DailySalt    string // HMAC salt for /daily
}

// Server bundles the router with the loop-owned controller.
type Server struct {
	r        *chi.Mux
	loop     *loop.Loop
	ctrl     *session.Controller
	results  store.Results
	opts     Options
	upgrader websocket.Upgrader

	closing   chan struct{} // closed on shutdown; ends live feeds
	closeOnce sync.Once
}

// New constructs a Server, installs middleware, and registers routes.
// ctrl must only be touched through l.
func New(l *loop.Loop, ctrl *session.Controller, results store.Results, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), loop: l, ctrl: ctrl, results: results, opts: opts, closing: make(chan struct{})}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)         // add X-Request-ID
	s.r.Use(chimw.RealIP)            // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)         // recover from panics
	s.r.Use(jsonContentType)         // default JSON responses
	s.r.Use(cors(opts.ClientOrigin)) // single-origin CORS

	// --- live feed (no timeout) ---
	s.r.Get("/ws", s.handleWS)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"versequest","endpoints":["/health","/sections","/state","POST /nav/*","POST /game/*","/daily","/scores","/ws"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		r.Get("/sections", s.handleSections)
		r.Get("/state", s.handleState)
		r.Get("/daily", s.handleDaily)
		r.Get("/scores", s.handleScores)

		r.Route("/nav", s.mountNav)
		r.Route("/game", s.mountGame)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	// Shutdown does not track hijacked connections.
	srv.RegisterOnShutdown(s.closeFeeds)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// closeFeeds ends every open WebSocket feed.
func (s *Server) closeFeeds() {
	s.closeOnce.Do(func() { close(s.closing) })
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeFailure maps controller and loop errors to HTTP statuses.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotAvailable):
		writeError(w, http.StatusConflict, "not_available")
	case errors.Is(err, session.ErrUnknownSection):
		writeError(w, http.StatusNotFound, "unknown_section")
	case errors.Is(err, session.ErrUnknownMode):
		writeError(w, http.StatusBadRequest, "unknown_mode")
	case errors.Is(err, loop.ErrStopped):
		writeError(w, http.StatusServiceUnavailable, "shutting_down")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

// decode reads a JSON body into v, answering 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}

// view reads the controller view on the loop.
func (s *Server) view(ctx context.Context) (session.View, error) {
	var v session.View
	err := s.loop.Query(ctx, func() { v = s.ctrl.View() })
	return v, err
}
