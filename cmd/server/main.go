package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/fintechx/casino/internal/config"
	"github.com/fintechx/casino/internal/logging"
	"github.com/fintechx/casino/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, concierge requests will fail")
	}

	s := server.New(cfg)

	go func() {
		log.WithField("address", cfg.Address()).Info("casino listening")
		if err := s.Listen(cfg.Address()); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	if err := s.Shutdown(); err != nil {
		log.Errorf("shutdown failed: %v", err)
	}
}
