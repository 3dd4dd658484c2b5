package repository

import (
	"context"

	"insygth/internal/dto"
	"insygth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialRepository is the data access contract for raw materials.
type MaterialRepository interface {
	Create(ctx context.Context, m *model.RawMaterial) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RawMaterial, error)
	List(ctx context.Context, filter dto.MaterialFilter) ([]model.RawMaterial, int64, error)
	// ListAll returns every raw material — the cost rollup snapshot fetch.
	ListAll(ctx context.Context) ([]model.RawMaterial, error)
	Update(ctx context.Context, m *model.RawMaterial) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.RawMaterial) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RawMaterial, error) {
	var m model.RawMaterial
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) List(ctx context.Context, filter dto.MaterialFilter) ([]model.RawMaterial, int64, error) {
	var materials []model.RawMaterial
	var total int64

	q := r.db.WithContext(ctx).Model(&model.RawMaterial{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Warehouse != "" {
		q = q.Where("warehouse = ?", filter.Warehouse)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&materials).Error
	return materials, total, err
}

func (r *materialRepo) ListAll(ctx context.Context) ([]model.RawMaterial, error) {
	var materials []model.RawMaterial
	err := r.db.WithContext(ctx).Find(&materials).Error
	return materials, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.RawMaterial) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RawMaterial{}, id).Error
}

func (r *materialRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.RawMaterial{}).Count(&n).Error
	return n, err
}
