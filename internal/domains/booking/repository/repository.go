package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"vietravel/infras/otel"
	"vietravel/internal/domains/booking/model"
	gDto "vietravel/shared/dto"
	gRepo "vietravel/shared/repository"
)

// ErrDuplicateCode is returned by Insert when the booking code is already stored.
var ErrDuplicateCode = gRepo.ErrDuplicate

type Booking interface {
	Insert(ctx context.Context, build gRepo.Builder[model.Booking]) (model.Booking, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	*gRepo.Repository[model.Booking]
}

// New creates the process-lifetime booking store. With uniqueCodes the store
// refuses a second booking under an already issued code.
func New(otel otel.Otel, uniqueCodes bool) Booking {
	var unique []string
	if uniqueCodes {
		unique = append(unique, model.FieldBookingCode)
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.FieldID, otel, unique...),
	}
}
