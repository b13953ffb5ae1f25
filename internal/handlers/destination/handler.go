package destination

import (
	"fmt"
	"net/http"

	"vietravel/infras/otel"
	"vietravel/internal/domains/destination/service"
	"vietravel/shared/constant"
	gDto "vietravel/shared/dto"
	"vietravel/shared/failure"
	"vietravel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	defaultQuoteAdults   = 1
	defaultQuoteChildren = 0
)

type Handler struct {
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDestinations)
		routerGroup.Get("/{id}", handler.GetDestination)
		routerGroup.Get("/{id}/quote", handler.GetQuote)
	})
}

// GetDestinations lists catalog entries.
// @Summary List destinations
// @Description Case-insensitive search over name, description and location, in catalog order.
// @Tags Destination
// @Produce json
// @Param search query string false "Search text"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} response.List[dto.DestinationSummary]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /destinations [get]
func (handler *Handler) GetDestinations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	limit, err := gDto.ParseLimit(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	search := request.URL.Query().Get(constant.RequestParamSearch)

	res, err := handler.service.List(ctx, search, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list destinations")

		response.WithError(writer, err)

		return
	}

	response.WithList(writer, http.StatusOK, res.Destinations, res.Total)
}

// GetDestination returns one destination with its full detail.
// @Summary Get a destination
// @Tags Destination
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Data[dto.DestinationDetail]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /destinations/{id} [get]
func (handler *Handler) GetDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestination")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetQuote prices a trip for the given party.
// @Summary Quote a trip
// @Description Adults pay the unit price, children the child rate, tax is added on top. Amounts are VND.
// @Tags Destination
// @Produce json
// @Param id path string true "Destination ID"
// @Param adults query int false "Number of adults (default 1)"
// @Param children query int false "Number of children (default 0)"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /destinations/{id}/quote [get]
func (handler *Handler) GetQuote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	adults, err := gDto.ParseCount(request, constant.RequestParamAdults, defaultQuoteAdults)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	children, err := gDto.ParseCount(request, constant.RequestParamChildren, defaultQuoteChildren)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if !gDto.WithinPartySize(adults, children) {
		err = failure.BadRequestFromString(fmt.Sprintf("party size must be at most %d travellers", constant.RequestMaxPartySize))
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Quote(ctx, chi.URLParam(request, constant.RequestParamID), adults, children)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
