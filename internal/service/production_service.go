package service

import (
	"context"
	"time"

	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
)

// ProductionService schedules and tracks manufacturing batches.
type ProductionService interface {
	Create(ctx context.Context, req dto.CreateProductionPlanRequest) (*dto.ProductionPlanResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductionPlanResponse, error)
	List(ctx context.Context, filter dto.ProductionPlanFilter) (*dto.ProductionPlanListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateProductionStatusRequest) (*dto.ProductionPlanResponse, error)
}

type productionService struct {
	plans    repository.ProductionRepository
	recipes  repository.RecipeRepository
	products repository.ProductRepository
	notifier Notifier
}

func NewProductionService(
	plans repository.ProductionRepository,
	recipes repository.RecipeRepository,
	products repository.ProductRepository,
	notifier Notifier,
) ProductionService {
	return &productionService{plans: plans, recipes: recipes, products: products, notifier: notifier}
}

// Create requires the product to have a recipe. A missing recipe is a hard
// failure (ErrNoRecipe), never a zero-cost batch: the recipe's unit cost and
// the derived batch cost are snapshotted onto the plan at this moment.
func (s *productionService) Create(ctx context.Context, req dto.CreateProductionPlanRequest) (*dto.ProductionPlanResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrNotFound
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFound(err)
	}

	rec, err := s.recipes.FindByProductID(ctx, productID)
	if err != nil {
		if notFound(err) == ErrNotFound {
			return nil, ErrNoRecipe
		}
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, err
	}

	plan := &model.ProductionPlan{
		ProductID:      productID,
		RecipeID:       rec.ID,
		Quantity:       req.Quantity,
		RecipeUnitCost: rec.UnitCost,
		BatchCost:      rec.UnitCost.Mul(req.Quantity),
		Status:         model.ProductionPlanned,
		StartDate:      startDate,
		EndDate:        endDate,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	plan.Product = product

	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    "production_planned",
		Title:   "Production planned",
		Message: req.Quantity.String() + " x " + product.Name + " scheduled, batch cost " + plan.BatchCost.String(),
	})
	return planToResponse(plan), nil
}

func (s *productionService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductionPlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return planToResponse(plan), nil
}

func (s *productionService) List(ctx context.Context, filter dto.ProductionPlanFilter) (*dto.ProductionPlanListResponse, error) {
	plans, total, err := s.plans.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionPlanResponse, 0, len(plans))
	for i := range plans {
		items = append(items, *planToResponse(&plans[i]))
	}
	return &dto.ProductionPlanListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// validProductionTransitions enumerates the allowed status moves. Completed
// and cancelled are terminal.
var validProductionTransitions = map[string][]string{
	model.ProductionPlanned:    {model.ProductionInProgress, model.ProductionCancelled},
	model.ProductionInProgress: {model.ProductionCompleted, model.ProductionCancelled},
}

func canTransition(from, to string) bool {
	for _, t := range validProductionTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func (s *productionService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateProductionStatusRequest) (*dto.ProductionPlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !canTransition(plan.Status, req.Status) {
		return nil, ErrInvalidTransition
	}

	plan.Status = req.Status
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}

	if req.Status == model.ProductionCompleted {
		name := ""
		if plan.Product != nil {
			name = plan.Product.Name
		}
		notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
			Type:    "production_completed",
			Title:   "Production completed",
			Message: "Batch of " + plan.Quantity.String() + " " + name + " completed",
		})
	}
	return planToResponse(plan), nil
}

func planToResponse(p *model.ProductionPlan) *dto.ProductionPlanResponse {
	resp := &dto.ProductionPlanResponse{
		ID:             p.ID.String(),
		ProductID:      p.ProductID.String(),
		Quantity:       p.Quantity,
		RecipeUnitCost: p.RecipeUnitCost,
		BatchCost:      p.BatchCost,
		Status:         p.Status,
		StartDate:      p.StartDate.Format("2006-01-02"),
		EndDate:        p.EndDate.Format("2006-01-02"),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.Product != nil {
		resp.ProductName = p.Product.Name
	}
	return resp
}
