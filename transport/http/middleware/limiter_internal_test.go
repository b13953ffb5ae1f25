package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vietravel/config"
	"vietravel/infras/otel/mocks"
	"vietravel/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestAllowLocal_EvictsIdleClients(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	otl := mocks.NewOtel()
	app := NewAppMiddleware(otl, cfg, cache.NewRedisCache(nil, otl)).(*appMiddleware)

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	app.now = func() time.Time { return clock }

	send := func(ip string) bool {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = ip + ":1234"

		allowed, _ := app.allowLocal(req, 2, 60)

		return allowed
	}

	for i := range 100 {
		send(fmt.Sprintf("198.51.100.%d", i))
	}

	assert.Len(t, app.limiters, 100)

	assert.True(t, send("203.0.113.5"))
	assert.True(t, send("203.0.113.5"))
	assert.False(t, send("203.0.113.5"))

	clock = clock.Add(61 * time.Second)

	assert.True(t, send("203.0.113.5"))
	assert.Len(t, app.limiters, 1)
}
