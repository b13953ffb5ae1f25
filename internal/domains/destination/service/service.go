package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Destination=MockDestinationService

import (
	"context"
	"fmt"
	"strconv"

	"vietravel/config"
	"vietravel/infras/otel"
	"vietravel/internal/domains/destination/model"
	"vietravel/internal/domains/destination/model/dto"
	"vietravel/internal/domains/destination/pricing"
	"vietravel/internal/domains/destination/repository"
	"vietravel/shared"
	"vietravel/shared/cache"
	"vietravel/shared/constant"
	gDto "vietravel/shared/dto"
	"vietravel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDestination    = "destination:get"
	cacheGetAllDestination = "destination:gets"

	MessageNotFound = "Destination not found"
)

type Destination interface {
	List(ctx context.Context, search string, limit *int) (dto.GetDestinationsResponse, error)
	Get(ctx context.Context, id string) (dto.DestinationDetail, error)
	Exist(ctx context.Context, id string) (bool, error)
	Quote(ctx context.Context, id string, adults, children int) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo  repository.Destination
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Destination, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Destination {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// SearchFilter matches destinations whose name, description or location contains search, ignoring case.
func SearchFilter(search string) gDto.FilterGroup {
	if search == "" {
		return gDto.FilterGroup{}
	}

	filters := make([]any, 0, 3)
	for _, field := range []string{model.FieldName, model.FieldDescription, model.FieldLocation} {
		filters = append(filters, gDto.Filter{Field: field, Value: search, Operator: gDto.FilterOperatorLike})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorOr}
}

func (s *serviceImpl) List(ctx context.Context, search string, limit *int) (res dto.GetDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if limit != nil && *limit == 0 {
		res.FromModels(nil)

		return res, nil
	}

	params := gDto.QueryParams{}
	if limit != nil {
		params.Limit = *limit
	}

	filter := SearchFilter(search)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDestination, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destinations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destinations")

		return res, fmt.Errorf("failed to get destinations: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destinations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DestinationDetail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	destination, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(destination)

	return res, nil
}

func (s *serviceImpl) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exist")
	defer scope.End()

	destinationID, ok := parseID(id)
	if !ok {
		return false, nil
	}

	exists, err := s.repo.Exist(ctx, shared.FilterByID(destinationID, model.FieldID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check if destination exists")

		return false, fmt.Errorf("failed to check if destination exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) Quote(ctx context.Context, id string, adults, children int) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	destination, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	quote, err := pricing.Calculate(destination.PriceAmount, adults, children, pricing.Rates{
		Child: s.cfg.Booking.ChildRate,
		Tax:   s.cfg.Booking.TaxRate,
	})
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.DestinationID = destination.ID
	res.Name = destination.Name
	res.Quote = quote

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Destination, error) {
	destinationID, ok := parseID(id)
	if !ok {
		return model.Destination{}, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetDestination, strconv.FormatInt(destinationID, 10))

	var destination model.Destination

	if err := s.cache.Get(ctx, cacheKey, &destination); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destination")

		return destination, nil
	}

	destination, err := s.repo.Get(ctx, shared.FilterByID(destinationID, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination")

		return destination, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == 0 {
		return destination, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, destination, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination to cache")
		}
	}()

	return destination, nil
}

// parseID accepts only the canonical decimal form, so "01", "+1" and " 1" do not address destination 1.
func parseID(id string) (int64, bool) {
	destinationID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || destinationID <= 0 || strconv.FormatInt(destinationID, 10) != id {
		return 0, false
	}

	return destinationID, true
}
