package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"vietravel/config"
	"vietravel/infras/kafka"
	"vietravel/infras/otel"
	adminDto "vietravel/internal/domains/admin/model/dto"
	adminService "vietravel/internal/domains/admin/service"
	"vietravel/internal/domains/booking/code"
	"vietravel/internal/domains/booking/model"
	"vietravel/internal/domains/booking/model/dto"
	"vietravel/internal/domains/booking/repository"
	destinationService "vietravel/internal/domains/destination/service"
	"vietravel/shared"
	"vietravel/shared/constant"
	gDto "vietravel/shared/dto"
	"vietravel/shared/failure"
	"vietravel/shared/timezone"
	"vietravel/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	maxCodeAttempts = 5

	MessageBookingNotFound = "Booking not found"
	MessageInvalidSortBy   = "invalid sort_by parameter"
)

var errCodeExhausted = errors.New("could not issue a unique booking code")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetByCode(ctx context.Context, bookingCode string) (dto.BookingResponse, error)
	ListAll(ctx context.Context, credential adminDto.Credential, params gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	destinations destinationService.Destination
	admin        adminService.Admin
	codes        code.Generator
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(
	repo repository.Booking,
	destinations destinationService.Destination,
	admin adminService.Admin,
	codes code.Generator,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		destinations: destinations,
		admin:        admin,
		codes:        codes,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
		now:          timezone.Now,
	}
}

// NewCodeGenerator picks the monotonic generator when unique codes are enabled and the raw clock-based one otherwise.
func NewCodeGenerator(cfg *config.Config) code.Generator {
	if cfg.Booking.UniqueCodes {
		return code.NewMonotonic(cfg.Booking.CodePrefix, time.Now)
	}

	log.Warn().Msg("unique booking codes disabled, codes issued within the same millisecond will collide")

	return code.NewLegacy(cfg.Booking.CodePrefix, time.Now)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}

	totalAmount := req.TotalAmount

	if s.cfg.IsProduction() {
		totalAmount, err = s.checkProduction(ctx, req)
		if err != nil {
			return res, err
		}
	}

	var booking model.Booking

	for attempt := 1; ; attempt++ {
		booking, err = s.repo.Insert(ctx, func(seq int64) (model.Booking, error) {
			return req.ToModel(seq, s.codes.Next(), totalAmount, s.now()), nil
		})
		if err == nil {
			break
		}

		if !errors.Is(err, repository.ErrDuplicateCode) {
			log.Error().Err(err).Msg("failed to create booking")

			return res, fmt.Errorf("failed to create booking: %w", err)
		}

		log.Warn().Int("attempt", attempt).Msg("booking code already issued, retrying")

		if attempt == maxCodeAttempts {
			log.Error().Int("attempts", attempt).Msg("failed to issue a unique booking code")

			return res, failure.InternalError(fmt.Errorf("failed to create booking: %w", errCodeExhausted)) // nolint:wrapcheck
		}
	}

	scope.SetAttribute("booking.code", booking.BookingCode)
	log.Info().
		Int64("id", booking.ID).
		Str("bookingCode", booking.BookingCode).
		Str("destinationId", booking.DestinationID).
		Msg("booking created")

	go s.publishCreated(context.WithoutCancel(ctx), booking)

	res.BookingCode = booking.BookingCode
	res.Message = s.cfg.Booking.ConfirmationMessage

	return res, nil
}

// checkProduction applies the checks the training mode deliberately skips and returns the server-side total.
func (s *serviceImpl) checkProduction(ctx context.Context, req dto.CreateBookingRequest) (float64, error) {
	destinationID := string(req.DestinationID)

	exists, err := s.destinations.Exist(ctx, destinationID)
	if err != nil {
		return 0, fmt.Errorf("failed to check destination: %w", err)
	}

	if !exists {
		return 0, failure.BadRequestFromString("destinationId does not match any destination") // nolint:wrapcheck
	}

	departure, err := timezone.Parse(constant.CalendarDate, req.DepartureDate)
	if err != nil {
		return 0, failure.BadRequestFromString("departureDate must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if departure.Before(timezone.StartOfDay(s.now())) {
		return 0, failure.BadRequestFromString("departureDate must not be in the past") // nolint:wrapcheck
	}

	if req.Adults < 1 {
		return 0, failure.BadRequestFromString("adults must be at least 1") // nolint:wrapcheck
	}

	if req.Children < 0 {
		return 0, failure.BadRequestFromString("children must not be negative") // nolint:wrapcheck
	}

	if !gDto.WithinPartySize(req.Adults, req.Children) {
		return 0, failure.BadRequestFromString(fmt.Sprintf("party size must be at most %d travellers", constant.RequestMaxPartySize)) // nolint:wrapcheck
	}

	if err = validator.ValidateVar(req.CustomerInfo.Email, "email"); err != nil {
		return 0, failure.BadRequestFromString("customerInfo.email must be a valid email address") // nolint:wrapcheck
	}

	if len([]rune(req.SpecialRequests)) > constant.RequestMaxSpecialLength {
		return 0, failure.BadRequestFromString(fmt.Sprintf("specialRequests must be at most %d characters", constant.RequestMaxSpecialLength)) // nolint:wrapcheck
	}

	quote, err := s.destinations.Quote(ctx, destinationID, req.Adults, req.Children)
	if err != nil {
		return 0, fmt.Errorf("failed to quote booking: %w", err)
	}

	if req.TotalAmount != 0 && req.TotalAmount != float64(quote.Total) {
		log.Warn().
			Float64("submitted", req.TotalAmount).
			Int64("computed", quote.Total).
			Msg("client total differs from server quote, using server quote")
	}

	return float64(quote.Total), nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking model.Booking) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
	defer scope.End()

	var event dto.BookingCreatedEvent

	event.FromModel(uuid.NewString(), booking)

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCreated, kafka.Message{
		Key:   booking.BookingCode,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingCode", booking.BookingCode).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetByCode(ctx context.Context, bookingCode string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingCode, model.FieldBookingCode))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound(MessageBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// ListAll returns bookings in creation order unless params ask for a sort. Total counts every stored booking.
func (s *serviceImpl) ListAll(ctx context.Context, credential adminDto.Credential, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.admin.Authenticate(ctx, credential); err != nil {
		return res, err //nolint:wrapcheck
	}

	if params.SortBy != "" && !slices.Contains(model.SortableFields, params.SortBy) {
		return res, failure.BadRequestFromString(MessageInvalidSortBy) // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.FromModels(models)
	res.Total = total

	return res, nil
}
