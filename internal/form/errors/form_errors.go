package formerrors

import (
	"net/http"

	"go-garderie/internal/shared/apperror"
)

var (
	ErrSignatureRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a drawn signature is required before submitting the fiche",
		http.StatusBadRequest,
	)
	ErrInvalidAttendanceCode = apperror.New(
		apperror.CodeInvalidInput,
		"unknown attendance code",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"payment amounts cannot be negative",
		http.StatusBadRequest,
	)
	ErrFormNotFound = apperror.New(
		apperror.CodeNotFound,
		"fiche not found",
		http.StatusNotFound,
	)
	ErrFormAlreadySigned = apperror.New(
		apperror.CodeConflict,
		"fiche is already signed and can no longer be modified",
		http.StatusConflict,
	)
)
