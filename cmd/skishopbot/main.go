package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/skishopbot/core/bootstrap"
	"github.com/m3rciful/skishopbot/core/logger"
	coretelegram "github.com/m3rciful/skishopbot/core/telegram"
	"github.com/m3rciful/skishopbot/skishop/bot"

	"log/slog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("skishopbot: %v", err)
	}
}

func run() error {
	// Missing .env is fine: containers inject the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := bot.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()
	defer func() {
		if err := res.DB.Close(); err != nil {
			logger.DB.Warn("close failed", slog.String("err", err.Error()))
		}
	}()

	app := bot.New(cfg, res.DB)

	startedAt := time.Now()
	runOpts := app.RunOptions()
	runOpts.OnStart = func(context.Context, *tele.Bot) error {
		logger.L.With("component", "app").Info("app ready",
			slog.String("event", "ready"),
			slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
		)
		return nil
	}
	runOpts.OnStop = func(context.Context, *tele.Bot) error {
		logger.L.With("component", "app").Info("shutting down...",
			slog.String("event", "shutdown"),
		)
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := coretelegram.RunTelegram(ctx, runOpts); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
