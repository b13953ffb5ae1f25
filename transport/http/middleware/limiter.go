package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vietravel/shared"
	"vietravel/shared/cache"
	"vietravel/shared/constant"
	"vietravel/transport/http/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client in redis when it is enabled and
// falls back to an in-process token bucket per client otherwise.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			var (
				allowed   bool
				remaining int
			)

			if a.config.Cache.Redis.Enable {
				allowed, remaining = a.allowShared(r, maxReqs, windowSecs)
			} else {
				allowed, remaining = a.allowLocal(r, maxReqs, windowSecs)
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(remaining))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if !allowed {
				log.Ctx(r.Context()).Warn().Str("client", a.clientIP(r)).Msg("request limit exceeded")
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) allowShared(r *http.Request, maxReqs, windowSecs int) (bool, int) {
	cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.clientIP(r), userAgent(r))

	var count int

	err := a.cache.Get(r.Context(), cacheKey, &count)
	if err != nil {
		if !cache.IsMiss(err) {
			// If cache fails, allow the request to continue
			return true, maxReqs
		}

		count = 1
	} else {
		count++
	}

	if count > maxReqs {
		return false, 0
	}

	err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("failed to save rate limit counter")
	}

	return true, max(0, maxReqs-count)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (a *appMiddleware) allowLocal(r *http.Request, maxReqs, windowSecs int) (bool, int) {
	key := a.clientIP(r)
	now := a.now()
	window := time.Duration(max(1, windowSecs)) * time.Second

	a.mu.Lock()

	a.sweep(now, window)

	entry, ok := a.limiters[key]
	if !ok {
		every := window / time.Duration(max(1, maxReqs))
		entry = &clientLimiter{limiter: rate.NewLimiter(rate.Every(every), maxReqs)}
		a.limiters[key] = entry
	}

	entry.lastSeen = now
	allowed := entry.limiter.AllowN(now, 1)
	remaining := max(0, int(entry.limiter.TokensAt(now)))

	a.mu.Unlock()

	return allowed, remaining
}

// sweep drops clients idle for a whole window; their buckets would have refilled anyway. Caller holds a.mu.
func (a *appMiddleware) sweep(now time.Time, window time.Duration) {
	if now.Sub(a.lastSweep) < window {
		return
	}

	for key, entry := range a.limiters {
		if now.Sub(entry.lastSeen) >= window {
			delete(a.limiters, key)
		}
	}

	a.lastSweep = now
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// clientIP prefers the forwarding headers only when the deployment sits behind a trusted proxy.
func (a *appMiddleware) clientIP(r *http.Request) string {
	if a.config.App.RateLimiter.TrustProxy {
		// X-Forwarded-For can contain multiple IPs, take the first one
		if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
			first, _, _ := strings.Cut(xff, ",")

			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
