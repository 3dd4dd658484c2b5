package service

import (
	"context"
	"time"

	"insygth/internal/costing"
	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeService manages bills of materials and their cost snapshots.
//
// Every cost figure stored on a recipe reflects raw material prices as of the
// last computation. Material price changes after that do NOT ripple into
// existing recipes; RefreshCost is the explicit recomputation path.
type RecipeService interface {
	Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	GetByProduct(ctx context.Context, productID uuid.UUID) (*dto.RecipeResponse, error)
	List(ctx context.Context) (*dto.RecipeListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	RefreshCost(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeService struct {
	recipes   repository.RecipeRepository
	products  repository.ProductRepository
	materials repository.MaterialRepository
	notifier  Notifier
}

func NewRecipeService(
	recipes repository.RecipeRepository,
	products repository.ProductRepository,
	materials repository.MaterialRepository,
	notifier Notifier,
) RecipeService {
	return &recipeService{recipes: recipes, products: products, materials: materials, notifier: notifier}
}

// snapshot fetches the current unit price of every raw material.
// Components referencing a material absent from the snapshot cost zero; a
// half-finished recipe must not block saving.
func (s *recipeService) snapshot(ctx context.Context) (costing.Snapshot, error) {
	materials, err := s.materials.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snap := make(costing.Snapshot, len(materials))
	for i := range materials {
		snap[materials[i].ID] = materials[i].UnitPrice
	}
	return snap, nil
}

func toComponents(reqs []dto.RecipeComponentRequest) ([]costing.Component, error) {
	components := make([]costing.Component, 0, len(reqs))
	for _, c := range reqs {
		id, err := uuid.Parse(c.MaterialID)
		if err != nil {
			return nil, err
		}
		components = append(components, costing.Component{MaterialID: id, Quantity: c.Quantity})
	}
	return components, nil
}

// applyRollup writes a computed rollup onto the recipe: item snapshot rows in
// declaration order plus the derived totals.
func applyRollup(rec *model.Recipe, rollup costing.Rollup, outputUnits *decimal.Decimal) {
	items := make([]model.RecipeItem, 0, len(rollup.Breakdown))
	for i, b := range rollup.Breakdown {
		items = append(items, model.RecipeItem{
			RecipeID:   rec.ID,
			MaterialID: b.MaterialID,
			Quantity:   b.Quantity,
			UnitCost:   b.UnitCost,
			Cost:       b.Cost,
			Position:   i,
		})
	}
	rec.Items = items
	rec.OutputUnits = outputUnits
	rec.TotalMaterialCost = rollup.Total
	if outputUnits != nil {
		rec.UnitCost = costing.PerUnitCost(rollup.Total, *outputUnits)
	} else {
		rec.UnitCost = rollup.Total
	}
}

func (s *recipeService) Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrNotFound
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFound(err)
	}
	if _, err := s.recipes.FindByProductID(ctx, productID); err == nil {
		return nil, ErrRecipeExists
	} else if notFound(err) != ErrNotFound {
		return nil, err
	}

	components, err := toComponents(req.Components)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	rec := &model.Recipe{ProductID: productID}
	applyRollup(rec, costing.ComputeRollup(components, snap), req.OutputUnits)

	if err := s.recipes.Create(ctx, rec); err != nil {
		return nil, err
	}

	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    "recipe_created",
		Title:   "Recipe created",
		Message: "Recipe for " + product.Name + " costed at " + rec.UnitCost.String() + " per unit",
	})
	return recipeToResponse(rec), nil
}

func (s *recipeService) Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return recipeToResponse(rec), nil
}

func (s *recipeService) GetByProduct(ctx context.Context, productID uuid.UUID) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByProductID(ctx, productID)
	if err != nil {
		return nil, notFound(err)
	}
	return recipeToResponse(rec), nil
}

func (s *recipeService) List(ctx context.Context) (*dto.RecipeListResponse, error) {
	recipes, total, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		items = append(items, *recipeToResponse(&recipes[i]))
	}
	return &dto.RecipeListResponse{Data: items, Total: total}, nil
}

// Update replaces the component set and recomputes costs against current
// material prices in one step.
func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	components, err := toComponents(req.Components)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	applyRollup(rec, costing.ComputeRollup(components, snap), req.OutputUnits)
	if err := s.recipes.Replace(ctx, rec); err != nil {
		return nil, err
	}

	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    "recipe_updated",
		Title:   "Recipe updated",
		Message: "Recipe recomputed, unit cost now " + rec.UnitCost.String(),
	})
	return recipeToResponse(rec), nil
}

// RefreshCost recomputes an unchanged component set against current material
// prices. This is the only path by which a material price change reaches an
// existing recipe.
func (s *recipeService) RefreshCost(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	components := make([]costing.Component, 0, len(rec.Items))
	for _, it := range rec.Items {
		components = append(components, costing.Component{MaterialID: it.MaterialID, Quantity: it.Quantity})
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	applyRollup(rec, costing.ComputeRollup(components, snap), rec.OutputUnits)
	if err := s.recipes.Replace(ctx, rec); err != nil {
		return nil, err
	}

	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    "recipe_cost_refreshed",
		Title:   "Recipe cost refreshed",
		Message: "Unit cost now " + rec.UnitCost.String(),
	})
	return recipeToResponse(rec), nil
}

func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recipes.FindByID(ctx, id); err != nil {
		return notFound(err)
	}
	return s.recipes.Delete(ctx, id)
}

func recipeToResponse(rec *model.Recipe) *dto.RecipeResponse {
	breakdown := make([]dto.BreakdownItemResponse, 0, len(rec.Items))
	for _, it := range rec.Items {
		item := dto.BreakdownItemResponse{
			MaterialID: it.MaterialID.String(),
			UnitCost:   it.UnitCost,
			Quantity:   it.Quantity,
			Cost:       it.Cost,
		}
		if it.Material != nil {
			item.MaterialName = it.Material.Name
		}
		breakdown = append(breakdown, item)
	}
	return &dto.RecipeResponse{
		ID:                rec.ID.String(),
		ProductID:         rec.ProductID.String(),
		OutputUnits:       rec.OutputUnits,
		Breakdown:         breakdown,
		TotalMaterialCost: rec.TotalMaterialCost,
		UnitCost:          rec.UnitCost,
		CreatedAt:         rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         rec.UpdatedAt.Format(time.RFC3339),
	}
}
