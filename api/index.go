package handler

import (
	"net/http"
	"sync"

	"vietravel/config"
	"vietravel/di"
	"vietravel/shared/logger"
	transportHttp "vietravel/transport/http"
	"vietravel/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service *transportHttp.HTTP
	initErr error
)

// Handler serves the API from a serverless function, building the service once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.SetLogLevel(cfg)

		service, initErr = di.InitializeService()
		if initErr == nil {
			service.Setup()
		}
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("service initialization failed")
		response.WithUnhealthy(w)

		return
	}

	service.ServeHTTP(w, r)
}
