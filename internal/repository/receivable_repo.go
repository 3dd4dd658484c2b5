package repository

import (
	"context"

	"insygth/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceivableRepository is the data access contract for receivables.
type ReceivableRepository interface {
	CreateTx(tx *gorm.DB, rec *model.Receivable) error
	FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*model.Receivable, error)
	List(ctx context.Context, status string) ([]model.Receivable, error)
	UpdateStatusTx(tx *gorm.DB, invoiceID uuid.UUID, status string) error
	SumPending(ctx context.Context) (decimal.Decimal, int64, error)
}

type receivableRepo struct{ db *gorm.DB }

func NewReceivableRepository(db *gorm.DB) ReceivableRepository { return &receivableRepo{db: db} }

func (r *receivableRepo) CreateTx(tx *gorm.DB, rec *model.Receivable) error {
	return tx.Create(rec).Error
}

func (r *receivableRepo) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*model.Receivable, error) {
	var rec model.Receivable
	err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).First(&rec).Error
	return &rec, err
}

func (r *receivableRepo) List(ctx context.Context, status string) ([]model.Receivable, error) {
	var recs []model.Receivable
	q := r.db.WithContext(ctx).Preload("Invoice")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&recs).Error
	return recs, err
}

func (r *receivableRepo) UpdateStatusTx(tx *gorm.DB, invoiceID uuid.UUID, status string) error {
	return tx.Model(&model.Receivable{}).Where("invoice_id = ?", invoiceID).Update("status", status).Error
}

// SumPending returns the outstanding total and the count of pending entries.
func (r *receivableRepo) SumPending(ctx context.Context) (decimal.Decimal, int64, error) {
	var sum decimal.NullDecimal
	var count int64

	q := r.db.WithContext(ctx).Model(&model.Receivable{}).Where("status = ?", model.PaymentPending)
	if err := q.Count(&count).Error; err != nil {
		return decimal.Zero, 0, err
	}
	if err := q.Select("SUM(amount)").Scan(&sum).Error; err != nil {
		return decimal.Zero, 0, err
	}
	if !sum.Valid {
		return decimal.Zero, count, nil
	}
	return sum.Decimal, count, nil
}
