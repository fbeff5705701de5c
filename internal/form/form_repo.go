package form

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// Save upserts by primary key: the whole row is replaced, last write wins.
	Save(ctx context.Context, f *Form) error
	FindByID(ctx context.Context, id string) (*Form, error)
	// FindAll scans every fiche, most recent first; ties on created_at break
	// by id ascending so the listing is deterministic.
	FindAll(ctx context.Context) ([]Form, error)
	// Delete is unconditional; deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Save(ctx context.Context, f *Form) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(f).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Form, error) {
	var f Form
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Form, error) {
	var rows []Form
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Form{}, "id = ?", id).Error
}
