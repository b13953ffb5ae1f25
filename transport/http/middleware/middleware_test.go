package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vietravel/config"
	"vietravel/infras/otel/mocks"
	"vietravel/shared/cache"
	cacheMocks "vietravel/shared/cache/mocks"
	"vietravel/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func limitedConfig(maxRequests int, redis bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.Cache.Redis.Enable = redis

	return cfg
}

func TestRequestID(t *testing.T) {
	otl := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otl, &config.Config{}, cache.NewRedisCache(nil, otl))

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	t.Run("issues a new id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("X-Request-ID", "req-42")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	})
}

func TestTracing_PassesThrough(t *testing.T) {
	otl := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otl, &config.Config{}, cache.NewRedisCache(nil, otl))

	handler := app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/destinations", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	otl := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otl, &config.Config{}, cache.NewRedisCache(nil, otl))
	handler := app.RateLimit()(okHandler())

	for range 20 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_Local(t *testing.T) {
	otl := mocks.NewOtel()
	cfg := limitedConfig(3, false)
	cfg.App.RateLimiter.TrustProxy = true
	app := middleware.NewAppMiddleware(otl, cfg, cache.NewRedisCache(nil, otl))
	handler := app.RateLimit()(okHandler())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	for range 3 {
		assert.Equal(t, http.StatusOK, send("203.0.113.7"))
	}

	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"))
}

func TestRateLimit_Local_IgnoresForwardedForByDefault(t *testing.T) {
	otl := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otl, limitedConfig(2, false), cache.NewRedisCache(nil, otl))
	handler := app.RateLimit()(okHandler())

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "192.0.2.9:4000"
		req.Header.Set("X-Forwarded-For", forwardedFor)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusOK, send("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.3"))
}

func TestRateLimit_Shared(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cacheMocks.NewMockRedisCache(ctrl)
	app := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(2, true), store)
	handler := app.RateLimit()(okHandler())

	t.Run("first request starts the counter", func(t *testing.T) {
		store.EXPECT().Get(gomock.Any(), "limiter:192.0.2.1:unknown", gomock.Any()).Return(cache.Nil)
		store.EXPECT().Save(gomock.Any(), "limiter:192.0.2.1:unknown", 1, 60).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "192.0.2.1:5555"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("over the limit", func(t *testing.T) {
		store.EXPECT().Get(gomock.Any(), "limiter:192.0.2.1:unknown", gomock.Any()).
			DoAndReturn(func(_ any, _ string, value any) error {
				*value.(*int) = 2

				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "192.0.2.1:5555"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "192.0.2.1:5555"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBearerToken(t *testing.T) {
	auth := middleware.NewAuthMiddleware(mocks.NewOtel())

	var seen string

	handler := auth.BearerToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.AccessTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		code   int
		token  string
	}{
		{name: "no header", code: http.StatusOK, token: ""},
		{name: "bearer token", header: "Bearer abc.def.ghi", code: http.StatusOK, token: "abc.def.ghi"},
		{name: "wrong scheme", header: "Basic YWRtaW46cGFzcw==", code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.token, seen)
		})
	}
}
