package repository

import (
	"context"

	"insygth/internal/dto"
	"insygth/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceRepository is the data access contract for sale invoices.
// Tx variants run inside a caller-managed transaction — invoice and
// receivable writes must commit together.
type InvoiceRepository interface {
	CreateTx(tx *gorm.DB, inv *model.SaleInvoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SaleInvoice, error)
	List(ctx context.Context, filter dto.InvoiceFilter) ([]model.SaleInvoice, int64, error)
	UpdatePaymentStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	NextInvoiceNumber(ctx context.Context, tx *gorm.DB) (int64, error)
	SumTotalByStatus(ctx context.Context, status string) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
	DB() *gorm.DB
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) CreateTx(tx *gorm.DB, inv *model.SaleInvoice) error {
	return tx.Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SaleInvoice, error) {
	var inv model.SaleInvoice
	err := r.db.WithContext(ctx).Preload("Product").First(&inv, id).Error
	return &inv, err
}

func (r *invoiceRepo) List(ctx context.Context, filter dto.InvoiceFilter) ([]model.SaleInvoice, int64, error) {
	var invoices []model.SaleInvoice
	var total int64

	q := r.db.WithContext(ctx).Model(&model.SaleInvoice{})
	if filter.PaymentStatus != "" && filter.PaymentStatus != "all" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Product").Order("invoice_number DESC").Limit(filter.Limit).Offset(offset).Find(&invoices).Error
	return invoices, total, err
}

func (r *invoiceRepo) UpdatePaymentStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.SaleInvoice{}).Where("id = ?", id).Update("payment_status", status).Error
}

// NextInvoiceNumber draws from the invoice_number_seq sequence created by the
// schema patches (see infra.NewDatabase).
func (r *invoiceRepo) NextInvoiceNumber(ctx context.Context, tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('invoice_number_seq')").Scan(&n).Error
	return n, err
}

func (r *invoiceRepo) SumTotalByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.SaleInvoice{}).
		Where("payment_status = ?", status).
		Select("SUM(total_amount)").Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *invoiceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SaleInvoice{}).Count(&n).Error
	return n, err
}

func (r *invoiceRepo) DB() *gorm.DB { return r.db }
