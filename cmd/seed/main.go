package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"AlmanacSeed/internal/config"
	mdb "AlmanacSeed/internal/mongo"
	"AlmanacSeed/internal/seed"
)

func init() {
	// .env is optional; real environment wins
	_ = godotenv.Load()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	slog.SetDefault(newLogger(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mc, err := mdb.NewClient(ctx, cfg)
	if err != nil {
		slog.Error("mongo unreachable", "err", err)
		return 1
	}
	defer mc.Close(context.Background())
	slog.Info("connected", "db", cfg.MongoDB)

	res, err := seed.Run(ctx, cfg, mc)
	if err != nil {
		slog.Error("seed failed", "err", err)
		return 1
	}
	slog.Info("seed done",
		"db", res.Database,
		"collection", res.Collection,
		"created", res.Created,
		"existing", res.Existing,
		"inserted", res.Inserted,
		"skipped", res.Skipped)
	return 0
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
