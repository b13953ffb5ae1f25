package main

import (
	"vietravel/config"
	"vietravel/di"
	"vietravel/docs"
	"vietravel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Vietravel API
// @version 1.0
// @description Destination catalog and tour booking service.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg)

	docs.SwaggerInfo.BasePath = cfg.App.BasePath

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
