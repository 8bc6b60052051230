package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Vladislav-tech/cryptolive/config"
	"github.com/Vladislav-tech/cryptolive/internal/collector"
	"github.com/Vladislav-tech/cryptolive/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// run the ingestion pipeline
	col, err := collector.Start(cfg, log)
	if err != nil {
		log.Fatal("collector failed", zap.Error(err))
	}

	// Flush timer and socket must be released on the way out.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	col.Stop()
}
