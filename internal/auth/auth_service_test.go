package auth

import (
	"context"
	"testing"
	"time"

	autherrors "go-garderie/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestService_Login(t *testing.T) {
	svc := NewService(hashFor(t, "sésame"), "test-secret")

	resp, err := svc.Login(context.Background(), "sésame")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
	assert.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now().Add(11*time.Hour)))

	token, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc := NewService(hashFor(t, "sésame"), "test-secret")

	_, err := svc.Login(context.Background(), "ouvre-toi")
	assert.ErrorIs(t, err, autherrors.ErrInvalidPassword)
}

func TestService_Login_NotConfigured(t *testing.T) {
	for _, svc := range []Service{
		NewService("", "test-secret"),
		NewService(hashFor(t, "sésame"), ""),
	} {
		_, err := svc.Login(context.Background(), "sésame")
		assert.ErrorIs(t, err, autherrors.ErrGateNotConfigured)
	}
}
