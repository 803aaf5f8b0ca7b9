// main.go
//
// VerseQuest API server: the session controller behind a local JSON and
// WebSocket API (internal/httpserver). The terminal front end lives in cmd/tui.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/versequest/internal/config"
	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/httpserver"
	"github.com/robalobadob/versequest/internal/loop"
	"github.com/robalobadob/versequest/internal/session"
	"github.com/robalobadob/versequest/internal/store"
	"github.com/robalobadob/versequest/internal/verses"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.SetupLogging(nil)

	if err := verses.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load verses")
	}
	lib := verses.Default()
	sections, count := lib.Stats()
	log.Info().Int("sections", sections).Int("verses", count).Str("file", cfg.VersesFile).Msg("verses loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := loop.New()
	go func() { _ = l.Run(ctx) }()

	results := store.NewMemoryStore()
	ctrl := session.New(lib, results, game.Deps{
		Rand:      game.NewRand(cfg.RNGSeed),
		Scheduler: l,
		Delays:    cfg.Delays(),
	})

	srv := httpserver.New(l, ctrl, results, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
	})
	log.Info().Str("port", cfg.Port).Msg("starting versequest api")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
