package main

import (
	"os"
	"time"

	"github.com/BrickByte/lms_service/config"
	"github.com/BrickByte/lms_service/internal/api"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.Env != "prod" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	api.StartServer(cfg)
}
