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

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	unit := req.Unit
	if unit == "" {
		unit = "unit"
	}
	p := &model.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		OrderQuantity: req.OrderQuantity,
		TotalCost:     req.TotalCost,
		CostPerUnit:   costing.UnitPrice(req.TotalCost, req.OrderQuantity),
		Unit:          unit,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.SKU != nil {
		p.SKU = req.SKU
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}

	costChanged := false
	if req.OrderQuantity != nil {
		p.OrderQuantity = *req.OrderQuantity
		costChanged = true
	}
	if req.TotalCost != nil {
		p.TotalCost = *req.TotalCost
		costChanged = true
	}
	if costChanged {
		p.CostPerUnit = costing.UnitPrice(p.TotalCost, p.OrderQuantity)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err)
	}
	return s.repo.Delete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		OrderQuantity: p.OrderQuantity,
		TotalCost:     p.TotalCost,
		CostPerUnit:   p.CostPerUnit,
		Unit:          p.Unit,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
