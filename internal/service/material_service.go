package service

import (
	"context"
	"time"

	"insygth/internal/costing"
	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
)

// MaterialService defines the business logic contract for raw materials.
type MaterialService interface {
	Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error)
	List(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialService struct {
	repo     repository.MaterialRepository
	notifier Notifier
}

func NewMaterialService(repo repository.MaterialRepository, notifier Notifier) MaterialService {
	return &materialService{repo: repo, notifier: notifier}
}

func (s *materialService) Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	warehouse := req.Warehouse
	if warehouse == "" {
		warehouse = "main"
	}

	m := &model.RawMaterial{
		Name:       req.Name,
		Category:   req.Category,
		Unit:       req.Unit,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
		// UnitPrice is derived, never taken from the request.
		UnitPrice: costing.UnitPrice(req.TotalPrice, req.Quantity),
		Warehouse: warehouse,
		ExpiresAt: parseDatePtr(req.ExpiresAt),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    "material_added",
		Title:   "Raw material added",
		Message: m.Name + " added to " + m.Warehouse,
	})
	return materialToResponse(m), nil
}

func (s *materialService) Get(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return materialToResponse(m), nil
}

func (s *materialService) List(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error) {
	materials, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		items = append(items, *materialToResponse(&materials[i]))
	}
	return &dto.MaterialListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Update applies the partial request and recomputes the derived unit price
// whenever quantity or total price changed.
func (s *materialService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Category != nil {
		m.Category = *req.Category
	}
	if req.Unit != nil {
		m.Unit = *req.Unit
	}
	if req.Warehouse != nil {
		m.Warehouse = *req.Warehouse
	}
	if req.ExpiresAt != nil {
		m.ExpiresAt = parseDatePtr(req.ExpiresAt)
	}

	priceChanged := false
	if req.Quantity != nil {
		m.Quantity = *req.Quantity
		priceChanged = true
	}
	if req.TotalPrice != nil {
		m.TotalPrice = *req.TotalPrice
		priceChanged = true
	}
	if priceChanged {
		m.UnitPrice = costing.UnitPrice(m.TotalPrice, m.Quantity)
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err)
	}
	return s.repo.Delete(ctx, id)
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func materialToResponse(m *model.RawMaterial) *dto.MaterialResponse {
	var expires *string
	if m.ExpiresAt != nil {
		v := m.ExpiresAt.Format("2006-01-02")
		expires = &v
	}
	return &dto.MaterialResponse{
		ID:         m.ID.String(),
		Name:       m.Name,
		Category:   m.Category,
		Unit:       m.Unit,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		UnitPrice:  m.UnitPrice,
		Warehouse:  m.Warehouse,
		ExpiresAt:  expires,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
