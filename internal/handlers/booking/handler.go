package booking

import (
	"net/http"

	"vietravel/infras/otel"
	adminDto "vietravel/internal/domains/admin/model/dto"
	"vietravel/internal/domains/booking/model/dto"
	"vietravel/internal/domains/booking/service"
	"vietravel/shared/constant"
	gDto "vietravel/shared/dto"
	"vietravel/shared/validator"
	"vietravel/transport/http/middleware"
	"vietravel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Stores a pending booking and returns its booking code.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	body := http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes)
	if err := validator.Validate(body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected booking request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + res.BookingCode)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings looks up one booking by code, or lists every booking for an administrator.
// @Summary Get bookings
// @Description With code, returns that booking. Without it, admin credentials or an admin bearer token are required and all bookings are returned.
// @Tags Booking
// @Produce json
// @Param code query string false "Booking code"
// @Param admin_user query string false "Admin username"
// @Param admin_pass query string false "Admin password"
// @Param pagination query gDto.QueryParams false "Paging and sorting for the admin list"
// @Success 200 {object} response.Data[dto.BookingResponse] "Single booking when code is set"
// @Success 200 {object} response.List[dto.BookingResponse] "All bookings for an administrator"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := request.URL.Query()

	if bookingCode := query.Get(constant.RequestParamCode); bookingCode != "" {
		res, err := handler.service.GetByCode(ctx, bookingCode)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		response.WithJSON(writer, http.StatusOK, res)

		return
	}

	credential := adminDto.Credential{
		Username: query.Get(constant.RequestParamAdminUser),
		Password: query.Get(constant.RequestParamAdminPass),
		Token:    middleware.AccessTokenFromContext(ctx),
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	res, err := handler.service.ListAll(ctx, credential, queryParams)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithList(writer, http.StatusOK, res.Bookings, res.Total)
}
