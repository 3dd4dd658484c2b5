package repository

import (
	"context"

	"insygth/internal/dto"
	"insygth/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductionRepository is the data access contract for production plans.
type ProductionRepository interface {
	Create(ctx context.Context, p *model.ProductionPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductionPlan, error)
	List(ctx context.Context, filter dto.ProductionPlanFilter) ([]model.ProductionPlan, int64, error)
	Update(ctx context.Context, p *model.ProductionPlan) error
	// SumBatchCostByStatus backs the dashboard planned-cost figure.
	SumBatchCostByStatus(ctx context.Context, status string) (decimal.Decimal, error)
}

type productionRepo struct{ db *gorm.DB }

func NewProductionRepository(db *gorm.DB) ProductionRepository { return &productionRepo{db: db} }

func (r *productionRepo) Create(ctx context.Context, p *model.ProductionPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductionPlan, error) {
	var p model.ProductionPlan
	err := r.db.WithContext(ctx).Preload("Product").First(&p, id).Error
	return &p, err
}

func (r *productionRepo) List(ctx context.Context, filter dto.ProductionPlanFilter) ([]model.ProductionPlan, int64, error) {
	var plans []model.ProductionPlan
	var total int64

	q := r.db.WithContext(ctx).Model(&model.ProductionPlan{})
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Product").Order("start_date ASC").Limit(filter.Limit).Offset(offset).Find(&plans).Error
	return plans, total, err
}

func (r *productionRepo) Update(ctx context.Context, p *model.ProductionPlan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productionRepo) SumBatchCostByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.ProductionPlan{}).
		Where("status = ?", status).
		Select("SUM(batch_cost)").Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}
