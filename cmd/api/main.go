package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"grampanchayat/internal/config"
	httpapi "grampanchayat/internal/http"
	"grampanchayat/internal/http/common"
	"grampanchayat/internal/repo/postgres"
)

func main() {
	cfg := config.FromEnv()
	zerolog.SetGlobalLevel(common.ParseLevel(cfg.LogLevel))
	log.Logger = log.Output(os.Stderr)
	common.SetDevelopment(cfg.Development())

	store, err := postgres.NewStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init store")
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	srv, err := httpapi.NewServer(cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init server")
	}
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
