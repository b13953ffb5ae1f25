package http

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"vietravel/config"
	kafkaMocks "vietravel/infras/kafka/mocks"
	"vietravel/infras/otel/mocks"
	healthHandler "vietravel/internal/handlers/health"
	"vietravel/shared/cache"
	"vietravel/shared/constant"
	"vietravel/transport/http/middleware"
	"vietravel/transport/http/router"
	"vietravel/transport/http/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHTTP(t *testing.T) (*HTTP, *kafkaMocks.MockClient) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.BasePath = "/api"
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Server.Shutdown.CleanupPeriodSeconds = 2

	otl := mocks.NewOtel()
	serverState := state.New()

	r := router.New(
		router.DomainHandlers{Health: healthHandler.New(serverState)},
		middleware.NewAppMiddleware(otl, cfg, cache.NewRedisCache(nil, otl)),
		middleware.NewAuthMiddleware(otl),
		cfg,
	)

	kafkaClient := kafkaMocks.NewMockClient(gomock.NewController(t))

	return New(cfg, r, serverState, otl, kafkaClient), kafkaClient
}

func TestHTTP_ServeHTTP_ConcurrentFirstRequests(t *testing.T) {
	h, _ := newTestHTTP(t)

	const workers = 8

	var (
		wg    sync.WaitGroup
		codes [workers]int
	)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			codes[i] = rec.Code
		}()
	}

	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	assert.Equal(t, state.ServerStateReady, h.State.Get())
}

func TestHTTP_Run_WaitsForCleanup(t *testing.T) {
	h, kafkaClient := newTestHTTP(t)
	h.Setup()

	var closed atomic.Bool

	kafkaClient.EXPECT().Close().DoAndReturn(func() error {
		time.Sleep(50 * time.Millisecond)
		closed.Store(true)

		return nil
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h.server = &http.Server{Handler: h.mux, ReadHeaderTimeout: readHeaderTimeout}

	signals := make(chan os.Signal, 1)

	go func() {
		time.Sleep(20 * time.Millisecond)
		signals <- syscall.SIGTERM
	}()

	err = h.run(func() error { return h.server.Serve(listener) }, signals)

	require.NoError(t, err)
	assert.True(t, closed.Load(), "run returned before the kafka writer was closed")
	assert.Equal(t, state.ServerStateInCleanupPeriod, h.State.Get())
}

func TestHTTP_Run_ServeError(t *testing.T) {
	h, _ := newTestHTTP(t)

	err := h.run(func() error { return net.ErrClosed }, make(chan os.Signal))

	assert.ErrorIs(t, err, net.ErrClosed)
}
