package service

import (
	"context"
	"strconv"
	"time"

	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRenderer produces a printable document for an invoice.
type InvoiceRenderer interface {
	RenderInvoicePDF(inv *model.SaleInvoice) ([]byte, error)
}

// SalesService manages sale invoices and the receivables ledger.
//
// Invoice and receivable writes always commit together: a pending invoice
// without its receivable (or vice versa) would corrupt the outstanding-money
// figure.
type SalesService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter dto.InvoiceFilter) (*dto.InvoiceListResponse, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	InvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error)
	ListReceivables(ctx context.Context, status string) ([]dto.ReceivableResponse, error)
	ReceivablesSummary(ctx context.Context) (*dto.ReceivablesSummaryResponse, error)
}

type salesService struct {
	invoices    repository.InvoiceRepository
	receivables repository.ReceivableRepository
	products    repository.ProductRepository
	renderer    InvoiceRenderer
	notifier    Notifier
}

func NewSalesService(
	invoices repository.InvoiceRepository,
	receivables repository.ReceivableRepository,
	products repository.ProductRepository,
	renderer InvoiceRenderer,
	notifier Notifier,
) SalesService {
	return &salesService{
		invoices:    invoices,
		receivables: receivables,
		products:    products,
		renderer:    renderer,
		notifier:    notifier,
	}
}

func (s *salesService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrNotFound
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFound(err)
	}

	inv := &model.SaleInvoice{
		ProductID:           productID,
		Quantity:            req.Quantity,
		SellingPricePerUnit: req.SellingPricePerUnit,
		// Total is always computed server-side, never trusted from the client.
		TotalAmount:   req.SellingPricePerUnit.Mul(req.Quantity),
		PaymentStatus: req.PaymentStatus,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	}

	err = runTx(ctx, s.invoices.DB(), func(tx *gorm.DB) error {
		number, err := s.invoices.NextInvoiceNumber(ctx, tx)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number
		if err := s.invoices.CreateTx(tx, inv); err != nil {
			return err
		}
		if inv.PaymentStatus == model.PaymentPending {
			return s.receivables.CreateTx(tx, &model.Receivable{
				InvoiceID: inv.ID,
				Amount:    inv.TotalAmount,
				Status:    model.PaymentPending,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	inv.Product = product

	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    "invoice_created",
		Title:   "Invoice created",
		Message: "Invoice for " + product.Name + ", total " + inv.TotalAmount.String() + " (" + inv.PaymentStatus + ")",
	})
	return invoiceToResponse(inv), nil
}

func (s *salesService) GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return invoiceToResponse(inv), nil
}

func (s *salesService) ListInvoices(ctx context.Context, filter dto.InvoiceFilter) (*dto.InvoiceListResponse, error) {
	invoices, total, err := s.invoices.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, *invoiceToResponse(&invoices[i]))
	}
	return &dto.InvoiceListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// MarkPaid settles a pending invoice: invoice and receivable flip to paid in
// the same transaction. Paid invoices cannot be marked again.
func (s *salesService) MarkPaid(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if inv.PaymentStatus == model.PaymentPaid {
		return nil, ErrInvalidTransition
	}

	err = runTx(ctx, s.invoices.DB(), func(tx *gorm.DB) error {
		if err := s.invoices.UpdatePaymentStatusTx(tx, id, model.PaymentPaid); err != nil {
			return err
		}
		return s.receivables.UpdateStatusTx(tx, id, model.PaymentPaid)
	})
	if err != nil {
		return nil, err
	}
	inv.PaymentStatus = model.PaymentPaid

	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    "invoice_paid",
		Title:   "Invoice paid",
		Message: "Invoice received payment of " + inv.TotalAmount.String(),
	})
	return invoiceToResponse(inv), nil
}

func (s *salesService) InvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, "", notFound(err)
	}
	pdf, err := s.renderer.RenderInvoicePDF(inv)
	if err != nil {
		return nil, "", err
	}
	return pdf, invoiceFileName(inv.InvoiceNumber), nil
}

func invoiceFileName(number int64) string {
	return "invoice-" + strconv.FormatInt(number, 10) + ".pdf"
}

func (s *salesService) ListReceivables(ctx context.Context, status string) ([]dto.ReceivableResponse, error) {
	recs, err := s.receivables.List(ctx, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceivableResponse, 0, len(recs))
	for _, r := range recs {
		item := dto.ReceivableResponse{
			ID:        r.ID.String(),
			InvoiceID: r.InvoiceID.String(),
			Amount:    r.Amount,
			Status:    r.Status,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
		if r.Invoice != nil {
			item.InvoiceNumber = r.Invoice.InvoiceNumber
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *salesService) ReceivablesSummary(ctx context.Context) (*dto.ReceivablesSummaryResponse, error) {
	outstanding, count, err := s.receivables.SumPending(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReceivablesSummaryResponse{Outstanding: outstanding, PendingCount: count}, nil
}

func invoiceToResponse(inv *model.SaleInvoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:                  inv.ID.String(),
		InvoiceNumber:       inv.InvoiceNumber,
		ProductID:           inv.ProductID.String(),
		Quantity:            inv.Quantity,
		SellingPricePerUnit: inv.SellingPricePerUnit,
		TotalAmount:         inv.TotalAmount,
		PaymentStatus:       inv.PaymentStatus,
		CustomerName:        inv.CustomerName,
		CreatedAt:           inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.Product != nil {
		resp.ProductName = inv.Product.Name
	}
	return resp
}
