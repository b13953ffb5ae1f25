package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"vietravel/config"
	"vietravel/infras/kafka"
	"vietravel/infras/otel"
	"vietravel/shared/constant"
	"vietravel/transport/http/router"
	"vietravel/transport/http/state"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = 10 * time.Second
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  *state.State
	otel   otel.Otel
	kafka  kafka.Client
	mux    *chi.Mux
	server *http.Server
	once   sync.Once
}

func New(cfg *config.Config, r router.Router, s *state.State, otl otel.Otel, kafkaClient kafka.Client) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		State:  s,
		otel:   otl,
		kafka:  kafkaClient,
	}
}

func (h *HTTP) Serve() {
	h.Setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	log.Info().Str("port", h.Config.Server.Port).Str("mode", h.Config.App.Mode).Msg("Starting up HTTP server.")

	if err := h.run(h.server.ListenAndServe, signals); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// Setup builds the routes once and marks the server ready. Safe for concurrent use.
func (h *HTTP) Setup() {
	h.once.Do(h.setup)
}

// ServeHTTP lets the routes run behind another server, e.g. a serverless entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Setup()

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()
	h.Router.SetupRoutes(h.mux)
	h.State.Set(state.ServerStateReady)
}

// run blocks until serve has stopped and, after a shutdown signal, until cleanup has finished.
func (h *HTTP) run(serve func() error, signals <-chan os.Signal) error {
	done := make(chan struct{})

	go func() {
		defer close(done)

		h.respondToSigterm(signals)
	}()

	if err := serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done

	return nil
}

func (h *HTTP) respondToSigterm(signals <-chan os.Signal) {
	<-signals

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.State.Set(state.ServerStateInGracePeriod)

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

		log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")
	}

	h.State.Set(state.ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) cleanup(ctx context.Context) {
	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to drain HTTP server")
		}
	}

	if err := h.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close kafka writer")
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
