package service

import (
	"context"
	"time"

	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"
)

// ExpenseService records operating expenses and produces spend summaries.
type ExpenseService interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context, filter dto.ExpenseFilter) (*dto.ExpenseListResponse, error)
	Summary(ctx context.Context, month string) (*dto.ExpenseSummaryResponse, error)
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	incurredOn, err := time.Parse("2006-01-02", req.IncurredOn)
	if err != nil {
		return nil, err
	}
	e := &model.Expense{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		IncurredOn:  incurredOn,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) List(ctx context.Context, filter dto.ExpenseFilter) (*dto.ExpenseListResponse, error) {
	expenses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, *expenseToResponse(&expenses[i]))
	}
	return &dto.ExpenseListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Summary groups spend by category, scoped to one month when given
// ("2006-01" format) or all time otherwise.
func (s *expenseService) Summary(ctx context.Context, month string) (*dto.ExpenseSummaryResponse, error) {
	var monthStart *time.Time
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, err
		}
		monthStart = &t
	}

	byCategory, total, err := s.repo.SumByCategory(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	if byCategory == nil {
		byCategory = []dto.ExpenseCategoryTotal{}
	}
	return &dto.ExpenseSummaryResponse{Month: month, Total: total, ByCategory: byCategory}, nil
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID.String(),
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		IncurredOn:  e.IncurredOn.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
