package auth

import (
	"context"
	"time"

	autherrors "go-garderie/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

type Service interface {
	// Login verifies the shared admin secret and issues a session token.
	Login(ctx context.Context, password string) (LoginResponse, error)
}

type service struct {
	passwordHash string // bcrypt hash of the admin secret, never the plaintext
	jwtSecret    string
}

func NewService(passwordHash, jwtSecret string) Service {
	return &service{passwordHash: passwordHash, jwtSecret: jwtSecret}
}

func (s *service) Login(ctx context.Context, password string) (LoginResponse, error) {
	if s.passwordHash == "" || s.jwtSecret == "" {
		return LoginResponse{}, autherrors.ErrGateNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidPassword
	}

	expiresAt := time.Now().Add(sessionTTL)
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	}, nil
}
