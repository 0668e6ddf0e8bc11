package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lojasmm/kakaoskill/internal/bot"
	"github.com/lojasmm/kakaoskill/internal/config"
	"github.com/lojasmm/kakaoskill/internal/logger"
	"github.com/lojasmm/kakaoskill/internal/schema"
	"github.com/lojasmm/kakaoskill/internal/session"
	"github.com/lojasmm/kakaoskill/internal/skill"
	"github.com/lojasmm/kakaoskill/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatal("logger", "err", err)
	}
	logg = logg.WithPrefix("skillserver")

	db, err := store.NewBoltStore(cfg.DBPath(), cfg.HistoryMaxTurns)
	if err != nil {
		logg.Fatal("store", "err", err)
	}
	defer db.Close()

	var validator *schema.Validator
	if cfg.ValidateResponses {
		validator, err = schema.NewValidator()
		if err != nil {
			logg.Fatal("schema", "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := session.NewManager()
	go sessions.Run(ctx, 30*time.Minute, time.Hour)

	botHandler := bot.NewHandler(db, sessions, logg)
	skillHandler := skill.NewHandler(botHandler.Respond, validator, logg)
	var historyHandler *skill.HistoryHandler
	if cfg.HistoryAPIToken != "" {
		historyHandler = skill.NewHistoryHandler(db, logg)
	} else {
		logg.Info("history endpoints disabled", "reason", "HISTORY_API_TOKEN not set")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      skill.NewRouter(skillHandler, historyHandler, cfg.CORSAllowedOrigins, cfg.HistoryAPIToken),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logg.Info("listening", "addr", srv.Addr, "validate", cfg.ValidateResponses)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server", "err", err)
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown", "err", err)
	}
	logg.Info("stopped")
}
