// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/okalpak/wordmines/internal/cache"
	"github.com/okalpak/wordmines/internal/config"
	"github.com/okalpak/wordmines/internal/database"
	"github.com/okalpak/wordmines/internal/dictionary"
	"github.com/okalpak/wordmines/internal/game"
	"github.com/okalpak/wordmines/internal/handlers"
	"github.com/okalpak/wordmines/internal/memstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	if err := dictionary.Init(cfg.DictionaryPath); err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}
	logger.Infof("Dictionary loaded: %d words", dictionary.Default().Len())

	var store game.Store
	switch cfg.Storage {
	case "memory":
		logger.Warn("Using in-memory storage; state is lost on restart")
		store = memstore.New()
	default:
		pg, err := database.Connect(context.Background(), cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pg.Close()
		store = pg
	}

	if cfg.RedisEnabled {
		if err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		logger.Infof("Action history queue connected at %s", cfg.RedisAddr)
	}

	engine := game.NewEngine(store, dictionary.Default())
	srv := handlers.NewServer(engine, logger)

	logger.Infof("Running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv.Router()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
