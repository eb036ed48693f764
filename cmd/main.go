package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/daevanion/legionboard/config"
	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/storage"
	"github.com/daevanion/legionboard/pkg/logger"
)

// legionboard prepares the relational store for the legion planner: it
// migrates the full schema and seeds the static quest catalogue. The web
// API and Discord auth live in separate services that share this module.
func main() {
	cfg, err := config.LoadConfig("./config.toml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Close()

	dsn := storage.BuildDSN(cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.DBName)
	db, err := storage.InitPostgres(dsn, cfg.Postgres.MaxIdleConns, cfg.Postgres.MaxOpenConns)
	if err != nil {
		zlog.Fatal("failed to init postgres", zap.Error(err))
	}

	zlog.Info("schema migrated",
		zap.Int("tables", len(model.AllModels())),
		zap.Int("enums", len(model.Enums())),
	)

	if cfg.Seed.QuestDefinitions {
		if err := storage.SeedQuestDefinitions(context.Background(), db); err != nil {
			zlog.Fatal("failed to seed quest definitions", zap.Error(err))
		}
		zlog.Info("quest definitions seeded",
			zap.Int("count", len(storage.QuestDefinitions())),
		)
	}
}
