package form

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	formerrors "go-garderie/internal/form/errors"
	"go-garderie/internal/shared/apperror"
	"go-garderie/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// Sign builds a signed fiche from the submission and persists it. A fiche
	// that is already signed is immutable and cannot be re-submitted.
	Sign(ctx context.Context, req SignFormRequest) (FormResponse, error)
	Get(ctx context.Context, id string) (FormResponse, error)
	GetAll(ctx context.Context) ([]FormSummary, error)
	Delete(ctx context.Context, id string) error

	// Record/Records expose the raw rows for the renderer and CSV export.
	Record(ctx context.Context, id string) (*Form, error)
	Records(ctx context.Context) ([]Form, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Sign(ctx context.Context, req SignFormRequest) (FormResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FormResponse{}, storageError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var existing *Form
	if req.ID != "" {
		existing, err = qtx.FindByID(ctx, req.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return FormResponse{}, storageError(err)
		}
	}
	if existing != nil && existing.Signed {
		return FormResponse{}, formerrors.ErrFormAlreadySigned
	}

	f, err := BuildSigned(req, time.Now())
	if err != nil {
		return FormResponse{}, err
	}
	if existing != nil {
		// created_at is set once; the provider signature is reserved for
		// external writers and survives a resubmission untouched.
		if existing.CreatedAt != "" {
			f.CreatedAt = existing.CreatedAt
		}
		f.ProviderSignature = existing.ProviderSignature
	}

	if err := qtx.Save(ctx, f); err != nil {
		return FormResponse{}, storageError(err)
	}
	if err := tx.Commit(); err != nil {
		return FormResponse{}, storageError(err)
	}

	zap.L().Info("fiche signed",
		zap.String("form_id", f.ID),
		zap.String("child", f.ChildName),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)
	return mapToResponse(*f), nil
}

func (s *service) Get(ctx context.Context, id string) (FormResponse, error) {
	f, err := s.Record(ctx, id)
	if err != nil {
		return FormResponse{}, err
	}
	return mapToResponse(*f), nil
}

func (s *service) GetAll(ctx context.Context) ([]FormSummary, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	res := make([]FormSummary, len(rows))
	for i, f := range rows {
		res[i] = mapToSummary(f)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return storageError(err)
	}
	if err := tx.Commit(); err != nil {
		return storageError(err)
	}

	zap.L().Info("fiche deleted",
		zap.String("form_id", id),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)
	return nil
}

func (s *service) Record(ctx context.Context, id string) (*Form, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, formerrors.ErrFormNotFound
		}
		return nil, storageError(err)
	}
	return f, nil
}

func (s *service) Records(ctx context.Context) ([]Form, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return rows, nil
}

func storageError(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeStorageError,
		"The record store is unavailable, please retry the action",
		http.StatusInternalServerError,
	)
}

func mapToResponse(f Form) FormResponse {
	return FormResponse{
		ID:                f.ID,
		Office:            f.Office,
		ChildName:         f.ChildName,
		ParentName:        f.ParentName,
		ProviderName:      f.ProviderName,
		EndDate:           f.EndDate,
		Attendance:        f.Attendance,
		Payments:          f.Payments,
		ParentSignature:   f.ParentSignature,
		ProviderSignature: f.ProviderSignature,
		CreatedAt:         f.CreatedAt,
		Status:            f.Status,
		Signed:            f.Signed,
		SignedAt:          f.SignedAt,
	}
}

func mapToSummary(f Form) FormSummary {
	return FormSummary{
		ID:           f.ID,
		ChildName:    f.ChildName,
		ParentName:   f.ParentName,
		ProviderName: f.ProviderName,
		Office:       f.Office,
		EndDate:      f.EndDate,
		Status:       f.Status,
		CreatedAt:    f.CreatedAt,
		Signed:       f.Signed,
	}
}
