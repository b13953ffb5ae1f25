package di

import (
	"vietravel/config"
	"vietravel/infras/otel"
	bookingRepository "vietravel/internal/domains/booking/repository"
)

func provideBookingRepository(cfg *config.Config, otl otel.Otel) bookingRepository.Booking {
	return bookingRepository.New(otl, cfg.Booking.UniqueCodes)
}
