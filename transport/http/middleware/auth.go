package middleware

import (
	"context"
	"net/http"

	"vietravel/infras/jwt"
	"vietravel/infras/otel"
	"vietravel/shared/constant"
	"vietravel/shared/failure"
	"vietravel/transport/http/response"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	BearerToken(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(otel otel.Otel) Auth {
	return &authImpl{
		otel: otel,
	}
}

// BearerToken lifts an optional bearer token into the request context.
// The token itself is verified by whichever service consumes it; only a malformed header is rejected here.
func (m *authImpl) BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		token, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.SetAttribute("auth.scheme", constant.TokenTypeAuth)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, constant.ContextKeyAccessToken, token)))
	})
}

// AccessTokenFromContext returns the token captured by BearerToken, if any.
func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(constant.ContextKeyAccessToken).(string)

	return token
}
