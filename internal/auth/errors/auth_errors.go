package autherrors

import (
	"net/http"

	"go-garderie/internal/shared/apperror"
)

var (
	ErrInvalidPassword = apperror.New(
		apperror.CodeUnauthorized,
		"incorrect password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid session token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"session expired, please log in again",
		http.StatusUnauthorized,
	)
	ErrNotAdmin = apperror.New(
		apperror.CodeForbidden,
		"administrator access required",
		http.StatusForbidden,
	)
	ErrGateNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"administration access is not configured",
		http.StatusServiceUnavailable,
	)
)
