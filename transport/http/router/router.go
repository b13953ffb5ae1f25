package router

import (
	"net/http"

	"vietravel/config"
	"vietravel/internal/handlers/admin"
	"vietravel/internal/handlers/booking"
	"vietravel/internal/handlers/destination"
	"vietravel/internal/handlers/health"
	"vietravel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vietravel/docs"
)

type DomainHandlers struct {
	Health      health.Handler
	Destination destination.Handler
	Booking     booking.Handler
	Admin       admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	router.Use(r.App.RequestID)
	router.Use(r.App.Tracing)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route(r.basePath(), func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Destination.Router(routerGroup)

		routerGroup.Group(func(limited chi.Router) {
			limited.Use(r.App.RateLimit())
			limited.Use(r.Auth.BearerToken)

			r.DomainHandlers.Booking.Router(limited)
			r.DomainHandlers.Admin.Router(limited)
		})
	})
}

func (r *Router) basePath() string {
	if r.Config.App.BasePath == "" {
		return "/"
	}

	return r.Config.App.BasePath
}

func (r *Router) corsOptions() cors.Options {
	cfg := r.Config.App.CORS

	options := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAgeSeconds,
	}

	if len(options.AllowedOrigins) == 0 {
		options.AllowedOrigins = []string{"*"}
	}

	if len(options.AllowedMethods) == 0 {
		options.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}

	return options
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
		Config:         cfg,
	}
}
