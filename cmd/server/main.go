package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"janoubco-monitor/internal/config"
	"janoubco-monitor/internal/database"
	"janoubco-monitor/internal/inventory"
	"janoubco-monitor/internal/logger"
	"janoubco-monitor/internal/server"
	"janoubco-monitor/internal/users"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	store, err := users.NewStore(cfg.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("credential store init failed")
	}
	usersSvc, err := users.NewService(store, cfg.AvatarsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("user service init failed")
	}
	if err := usersSvc.EnsureSuperAdmin(cfg.AdminUsername, cfg.AdminPassword, "", ""); err != nil {
		log.Fatal().Err(err).Msg("super admin seed failed")
	}

	inv := inventory.New(db)

	r := server.NewRouter(cfg, usersSvc, inv)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
