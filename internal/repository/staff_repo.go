package repository

import (
	"context"

	"insygth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRequestRepository is the data access contract for staff approval
// requests.
type StaffRequestRepository interface {
	Create(ctx context.Context, sr *model.StaffRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StaffRequest, error)
	List(ctx context.Context, status string) ([]model.StaffRequest, int64, error)
	UpdateTx(tx *gorm.DB, sr *model.StaffRequest) error
	DB() *gorm.DB
}

type staffRepo struct{ db *gorm.DB }

func NewStaffRequestRepository(db *gorm.DB) StaffRequestRepository { return &staffRepo{db: db} }

func (r *staffRepo) Create(ctx context.Context, sr *model.StaffRequest) error {
	return r.db.WithContext(ctx).Create(sr).Error
}

func (r *staffRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StaffRequest, error) {
	var sr model.StaffRequest
	err := r.db.WithContext(ctx).First(&sr, id).Error
	return &sr, err
}

func (r *staffRepo) List(ctx context.Context, status string) ([]model.StaffRequest, int64, error) {
	var requests []model.StaffRequest
	var total int64

	q := r.db.WithContext(ctx).Model(&model.StaffRequest{})
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at ASC").Find(&requests).Error
	return requests, total, err
}

func (r *staffRepo) UpdateTx(tx *gorm.DB, sr *model.StaffRequest) error {
	return tx.Save(sr).Error
}

func (r *staffRepo) DB() *gorm.DB { return r.db }
