package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/jask/sprintdeck/internal/board"
	"github.com/jask/sprintdeck/internal/cache"
	"github.com/jask/sprintdeck/internal/config"
	"github.com/jask/sprintdeck/internal/logging"
	"github.com/jask/sprintdeck/internal/service"
	"github.com/jask/sprintdeck/internal/taskapi"
	"github.com/jask/sprintdeck/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.Init(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0o755); err != nil {
		log.Fatalf("mkdir cache dir: %v", err)
	}
	snapCache, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		log.Fatalf("open cache: %v", err)
	}
	defer snapCache.Close()

	token := cfg.ResolveToken()
	if token == "" {
		fmt.Fprintf(os.Stderr, "warning: no API token set (export %s); remote calls will fail\n", cfg.API.TokenEnv)
	}
	client := taskapi.New(cfg.API.BaseURL, token, &http.Client{Timeout: 15 * time.Second}, logger)

	clock := clockwork.NewRealClock()
	store := board.NewStore(logger)
	pending := service.NewPendingSet()
	notifier := service.NewNotifier(clock, cfg.Notify.TTL)

	coord := &service.Coordinator{
		Store:    store,
		API:      client,
		Pending:  pending,
		Notifier: notifier,
		Log:      logger,
	}
	worker := &service.Reconciler{
		Store:   store,
		API:     client,
		Pending: pending,
		Cache:   snapCache,
		Log:     logger,
		Project: cfg.API.Project,
	}

	m := tui.New(cfg, tui.Deps{
		Store:    store,
		Coord:    coord,
		Worker:   worker,
		Notifier: notifier,
		Pending:  pending,
		Cache:    snapCache,
		Log:      logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
