package health

import (
	"net/http"

	"vietravel/transport/http/response"
	"vietravel/transport/http/state"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	state *state.State
}

func New(state *state.State) Handler {
	return Handler{
		state: state,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the server accepts traffic.
// @Summary Health check
// @Description Returns 200 while serving and 503 once shutdown has started.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Error
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	switch handler.state.Get() {
	case state.ServerStateReady:
		response.WithMessage(writer, http.StatusOK, "OK")
	case state.ServerStateInGracePeriod, state.ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(writer)
	default:
		response.WithUnhealthy(writer)
	}
}
