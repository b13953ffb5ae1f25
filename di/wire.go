//go:build wireinject
// +build wireinject

package di

import (
	"vietravel/config"
	"vietravel/infras/jwt"
	"vietravel/infras/kafka"
	"vietravel/infras/otel"
	"vietravel/infras/redis"
	"vietravel/shared/cache"
	"vietravel/transport/http"
	"vietravel/transport/http/middleware"
	"vietravel/transport/http/router"
	"vietravel/transport/http/state"

	adminService "vietravel/internal/domains/admin/service"
	bookingService "vietravel/internal/domains/booking/service"
	destinationRepository "vietravel/internal/domains/destination/repository"
	destinationService "vietravel/internal/domains/destination/service"

	adminHandler "vietravel/internal/handlers/admin"
	bookingHandler "vietravel/internal/handlers/booking"
	destinationHandler "vietravel/internal/handlers/destination"
	healthHandler "vietravel/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	state.New,
)

var destinationDomain = wire.NewSet(
	destinationRepository.New,
	destinationService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var bookingDomain = wire.NewSet(
	provideBookingRepository,
	bookingService.NewCodeGenerator,
	bookingService.New,
)

var domains = wire.NewSet(
	destinationDomain,
	adminDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	destinationHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
