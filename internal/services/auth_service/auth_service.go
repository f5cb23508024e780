package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pro_portfolio/internal/lib/jwt"
	"pro_portfolio/internal/lib/logger/sl"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks logins against the single configured admin account.
type AuthService struct {
	log          *slog.Logger
	adminEmail   string
	passwordHash string
	secret       string
	tokenTTL     time.Duration
}

func NewAuthService(log *slog.Logger, adminEmail, passwordHash, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		log:          log,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		secret:       secret,
		tokenTTL:     tokenTTL,
	}
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "auth_service.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login admin")

	if email != a.adminEmail {
		log.Warn("unknown admin email")

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(email, a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in successfully")

	return token, nil
}
