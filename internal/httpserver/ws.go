// internal/httpserver/ws.go
//
// WebSocket state feed. The client receives the current view on connect and a
// fresh view after every change processed by the event loop, including
// timer-driven ones (feedback clearing, delayed advances). Client messages are
// read only to notice disconnects. The feed closes with a going-away frame
// when the loop stops or the server shuts down.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/versequest/internal/loop"
)

const wsWriteWait = 5 * time.Second

// checkOrigin accepts same-host pages, the configured client origin and
// non-browser clients.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.opts.ClientOrigin {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && u.Host == r.Host
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	updates, unsubscribe := s.loop.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		v, err := s.view(ctx)
		if err != nil {
			if errors.Is(err, loop.ErrStopped) {
				goAway(conn)
			}
			return false
		}
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(v); err != nil {
			log.Debug().Err(err).Msg("websocket write")
			return false
		}
		return true
	}

	if !send() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.loop.Done():
			goAway(conn)
			return
		case <-s.closing:
			goAway(conn)
			return
		case <-updates:
			if !send() {
				return
			}
		}
	}
}

// goAway tells the client the server is going away.
func goAway(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(wsWriteWait))
}
