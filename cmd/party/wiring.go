package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/fogoseda/party-api/internal/config"
	"github.com/fogoseda/party-api/internal/content"
	"github.com/fogoseda/party-api/internal/pkg/clock"
	"github.com/fogoseda/party-api/internal/pkg/idgen"
	"github.com/fogoseda/party-api/internal/pkg/roller"
	"github.com/fogoseda/party-api/internal/redis"
	"github.com/fogoseda/party-api/internal/render"
	"github.com/fogoseda/party-api/internal/repositories/boardsession"
	"github.com/fogoseda/party-api/internal/repositories/cardsession"
	"github.com/fogoseda/party-api/internal/repositories/collection"
)

// deps bundles the shared wiring both commands build on
type deps struct {
	cfg         *config.Config
	balance     config.Balance
	library     *content.Library
	renderer    render.Renderer
	roller      roller.Roller
	clock       clock.Clock
	cardRepo    cardsession.Repository
	boardRepo   boardsession.Repository
	collections collection.Repository
}

// buildDeps wires configuration, content, and storage. An empty
// REDIS_ADDR selects the in-memory repositories.
func buildDeps() (*deps, error) {
	cfg, balance, err := config.Load()
	if err != nil {
		return nil, err
	}

	setupLogging(cfg.LogLevel)

	library, err := content.Load()
	if err != nil {
		return nil, err
	}
	for _, problem := range library.Problems {
		log.Printf("content: %s", problem)
	}

	d := &deps{
		cfg:      cfg,
		balance:  balance,
		library:  library,
		renderer: render.NewSlog(slog.Default()),
		roller:   roller.NewToolkit(),
		clock:    clock.New(),
	}

	if cfg.RedisAddr == "" {
		d.cardRepo = cardsession.NewInMemoryRepository()
		d.boardRepo = boardsession.NewInMemoryRepository()
		d.collections = collection.NewInMemoryRepository()
		return d, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	d.cardRepo, err = cardsession.NewRedisRepository(&cardsession.Config{
		Client: client,
		Clock:  d.clock,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		return nil, err
	}
	d.boardRepo, err = boardsession.NewRedisRepository(&boardsession.Config{
		Client: client,
		Clock:  d.clock,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		return nil, err
	}
	d.collections, err = collection.NewRedisRepository(&collection.Config{Client: client})
	if err != nil {
		return nil, err
	}

	return d, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func newIDGen(prefix string) idgen.Generator {
	return idgen.NewUUID(prefix)
}
