// cmd/tui/main.go
//
// VerseQuest in the terminal. Logs go to LOG_FILE when set, otherwise nowhere,
// so they never draw over the UI.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/versequest/internal/config"
	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/loop"
	"github.com/robalobadob/versequest/internal/session"
	"github.com/robalobadob/versequest/internal/store"
	"github.com/robalobadob/versequest/internal/tui"
	"github.com/robalobadob/versequest/internal/verses"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	cfg.LogPretty = false
	cfg.SetupLogging(logOut)

	if err := verses.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("failed to load verses")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := loop.New()
	go func() { _ = l.Run(ctx) }()

	ctrl := session.New(verses.Default(), store.NewMemoryStore(), game.Deps{
		Rand:      game.NewRand(cfg.RNGSeed),
		Scheduler: l,
		Delays:    cfg.Delays(),
	})
	m := tui.New(ctx, l, ctrl, tui.Options{DailySalt: cfg.DailySalt})
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("tui exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
