package service

import (
	"context"

	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"
)

// ReportService aggregates the dashboard figures and data exports.
type ReportService interface {
	BusinessSummary(ctx context.Context) (*dto.BusinessSummaryResponse, error)
}

type reportService struct {
	invoices    repository.InvoiceRepository
	receivables repository.ReceivableRepository
	expenses    repository.ExpenseRepository
	production  repository.ProductionRepository
	materials   repository.MaterialRepository
	products    repository.ProductRepository
}

func NewReportService(
	invoices repository.InvoiceRepository,
	receivables repository.ReceivableRepository,
	expenses repository.ExpenseRepository,
	production repository.ProductionRepository,
	materials repository.MaterialRepository,
	products repository.ProductRepository,
) ReportService {
	return &reportService{
		invoices:    invoices,
		receivables: receivables,
		expenses:    expenses,
		production:  production,
		materials:   materials,
		products:    products,
	}
}

func (s *reportService) BusinessSummary(ctx context.Context) (*dto.BusinessSummaryResponse, error) {
	revenue, err := s.invoices.SumTotalByStatus(ctx, model.PaymentPaid)
	if err != nil {
		return nil, err
	}
	pendingRevenue, err := s.invoices.SumTotalByStatus(ctx, model.PaymentPending)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.SumAll(ctx)
	if err != nil {
		return nil, err
	}
	outstanding, _, err := s.receivables.SumPending(ctx)
	if err != nil {
		return nil, err
	}
	plannedCost, err := s.production.SumBatchCostByStatus(ctx, model.ProductionPlanned)
	if err != nil {
		return nil, err
	}
	invoiceCount, err := s.invoices.Count(ctx)
	if err != nil {
		return nil, err
	}
	materialCount, err := s.materials.Count(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.BusinessSummaryResponse{
		Revenue:                revenue,
		PendingRevenue:         pendingRevenue,
		Expenses:               expenses,
		OutstandingReceivables: outstanding,
		PlannedProductionCost:  plannedCost,
		InvoiceCount:           invoiceCount,
		MaterialCount:          materialCount,
		ProductCount:           productCount,
	}, nil
}
