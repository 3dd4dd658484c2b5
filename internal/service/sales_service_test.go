package service

import (
	"context"
	"testing"

	"insygth/internal/dto"
	"insygth/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSalesFixture(t *testing.T) (SalesService, *stubInvoiceRepo, *stubReceivableRepo, *stubProductRepo) {
	t.Helper()
	invoices := newStubInvoiceRepo()
	receivables := newStubReceivableRepo()
	products := newStubProductRepo()
	svc := NewSalesService(invoices, receivables, products, nil, &recordingNotifier{})
	return svc, invoices, receivables, products
}

func TestCreatePendingInvoiceOpensReceivable(t *testing.T) {
	svc, invoices, receivables, products := newSalesFixture(t)

	productID := products.add("pudding")
	resp, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ProductID:           productID.String(),
		Quantity:            dec("25"),
		SellingPricePerUnit: dec("5"),
		PaymentStatus:       model.PaymentPending,
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(dec("125")))
	assert.Equal(t, int64(1), resp.InvoiceNumber)

	rec, err := receivables.FindByInvoiceID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.True(t, rec.Amount.Equal(dec("125")))
	assert.Equal(t, model.PaymentPending, rec.Status)

	summary, err := svc.ReceivablesSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Outstanding.Equal(dec("125")))
	assert.Equal(t, int64(1), summary.PendingCount)

	_ = invoices
}

func TestCreatePaidInvoiceSkipsReceivable(t *testing.T) {
	svc, _, receivables, products := newSalesFixture(t)

	productID := products.add("pudding")
	resp, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ProductID:           productID.String(),
		Quantity:            dec("2"),
		SellingPricePerUnit: dec("10"),
		PaymentStatus:       model.PaymentPaid,
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(dec("20")))

	assert.Empty(t, receivables.receivables)
	summary, err := svc.ReceivablesSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Outstanding.IsZero())
}

func TestMarkPaidSettlesInvoiceAndReceivable(t *testing.T) {
	svc, invoices, receivables, products := newSalesFixture(t)

	productID := products.add("pudding")
	resp, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ProductID:           productID.String(),
		Quantity:            dec("25"),
		SellingPricePerUnit: dec("5"),
		PaymentStatus:       model.PaymentPending,
	})
	require.NoError(t, err)
	invoiceID := uuid.MustParse(resp.ID)

	paid, err := svc.MarkPaid(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, paid.PaymentStatus)

	stored, err := invoices.FindByID(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, stored.PaymentStatus)

	rec, err := receivables.FindByInvoiceID(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, rec.Status)

	summary, err := svc.ReceivablesSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Outstanding.IsZero())
	assert.Equal(t, int64(0), summary.PendingCount)

	// Paying twice is rejected.
	_, err = svc.MarkPaid(context.Background(), invoiceID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestInvoiceNumbersAreSequential(t *testing.T) {
	svc, _, _, products := newSalesFixture(t)

	productID := products.add("pudding")
	for want := int64(1); want <= 3; want++ {
		resp, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
			ProductID:           productID.String(),
			Quantity:            dec("1"),
			SellingPricePerUnit: dec("1"),
			PaymentStatus:       model.PaymentPaid,
		})
		require.NoError(t, err)
		assert.Equal(t, want, resp.InvoiceNumber)
	}
}

func TestCreateInvoiceUnknownProduct(t *testing.T) {
	svc, invoices, _, _ := newSalesFixture(t)

	_, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ProductID:           uuid.New().String(),
		Quantity:            dec("1"),
		SellingPricePerUnit: dec("1"),
		PaymentStatus:       model.PaymentPending,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, invoices.invoices)
}
