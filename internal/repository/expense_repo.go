package repository

import (
	"context"
	"time"

	"insygth/internal/dto"
	"insygth/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseRepository is the data access contract for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, int64, error)
	SumByCategory(ctx context.Context, month *time.Time) ([]dto.ExpenseCategoryTotal, decimal.Decimal, error)
	SumAll(ctx context.Context) (decimal.Decimal, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, int64, error) {
	var expenses []model.Expense
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Month != "" {
		if start, err := time.Parse("2006-01", filter.Month); err == nil {
			q = q.Where("incurred_on >= ? AND incurred_on < ?", start, start.AddDate(0, 1, 0))
		}
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("incurred_on DESC").Limit(filter.Limit).Offset(offset).Find(&expenses).Error
	return expenses, total, err
}

func (r *expenseRepo) SumByCategory(ctx context.Context, month *time.Time) ([]dto.ExpenseCategoryTotal, decimal.Decimal, error) {
	var rows []dto.ExpenseCategoryTotal

	q := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("total DESC")
	if month != nil {
		q = q.Where("incurred_on >= ? AND incurred_on < ?", *month, month.AddDate(0, 1, 0))
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, decimal.Zero, err
	}

	grand := decimal.Zero
	for _, row := range rows {
		grand = grand.Add(row.Total)
	}
	return rows, grand, nil
}

func (r *expenseRepo) SumAll(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Expense{}).Select("SUM(amount)").Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}
