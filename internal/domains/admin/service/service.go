package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"vietravel/config"
	"vietravel/infras/jwt"
	"vietravel/infras/otel"
	"vietravel/internal/domains/admin/model/dto"
	"vietravel/shared/constant"
	"vietravel/shared/failure"
	"vietravel/shared/password"

	"github.com/rs/zerolog/log"
)

type Admin interface {
	Authenticate(ctx context.Context, credential dto.Credential) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	cfg          *config.Config
	jwt          jwt.JWT
	otel         otel.Otel
	passwordHash string
}

// New builds the admin authenticator. In production mode a plaintext admin password
// is hashed once here so every comparison goes through bcrypt.
func New(cfg *config.Config, jwt jwt.JWT, otel otel.Otel) (Admin, error) {
	svc := &serviceImpl{
		cfg:  cfg,
		jwt:  jwt,
		otel: otel,
	}

	if !cfg.IsProduction() {
		return svc, nil
	}

	switch {
	case cfg.App.Admin.PasswordHash != "":
		if !password.IsHash(cfg.App.Admin.PasswordHash) {
			return nil, errors.New("APP_ADMIN_PASSWORD_HASH is not a bcrypt hash")
		}

		svc.passwordHash = cfg.App.Admin.PasswordHash
	case password.IsHash(cfg.App.Admin.Password):
		svc.passwordHash = cfg.App.Admin.Password
	default:
		log.Warn().Msg("APP_ADMIN_PASSWORD_HASH not set in production mode, hashing the plaintext admin password")

		hash, err := password.Hash(cfg.App.Admin.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}

		svc.passwordHash = hash
	}

	return svc, nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, credential dto.Credential) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if credential.IsEmpty() {
		return failure.InvalidCredentials
	}

	if credential.Token != "" {
		claims, err := s.jwt.ValidateToken(credential.Token)
		if err != nil {
			log.Warn().Err(err).Msg("admin token rejected")

			return failure.InvalidCredentials
		}

		if claims.Role != constant.RoleAdmin {
			log.Warn().Str("role", claims.Role).Msg("token without admin role rejected")

			return failure.InvalidCredentials
		}

		return nil
	}

	if !s.checkPassword(credential.Username, credential.Password) {
		log.Warn().Str("mode", s.cfg.App.Mode).Msg("admin credential check failed")

		return failure.InvalidCredentials
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.Authenticate(ctx, req.ToCredential()); err != nil {
		return res, err
	}

	token, err := s.jwt.GenerateAccessToken(req.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate admin token")

		return res, fmt.Errorf("failed to generate admin token: %w", err)
	}

	res.FromToken(token)

	log.Info().Str("username", req.Username).Msg("admin logged in")

	return res, nil
}

// checkPassword is a plain equality test in training mode and a bcrypt verification in production mode.
func (s *serviceImpl) checkPassword(username, secret string) bool {
	if !s.cfg.IsProduction() {
		return username != "" && username == s.cfg.App.Admin.Username && secret == s.cfg.App.Admin.Password
	}

	if username == "" || secret == "" {
		return false
	}

	userOK := password.Equal(username, s.cfg.App.Admin.Username)

	err := password.Verify(secret, s.passwordHash)
	if err != nil && !errors.Is(err, password.ErrInvalidPassword) {
		log.Error().Err(err).Msg("failed to verify admin password")
	}

	return userOK && err == nil
}
