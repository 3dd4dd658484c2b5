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

func newProductionFixture(t *testing.T) (ProductionService, *stubProductionRepo, *stubRecipeRepo, *stubProductRepo) {
	t.Helper()
	plans := newStubProductionRepo()
	recipes := newStubRecipeRepo()
	products := newStubProductRepo()
	svc := NewProductionService(plans, recipes, products, &recordingNotifier{})
	return svc, plans, recipes, products
}

func TestProductionCreateSnapshotsBatchCost(t *testing.T) {
	svc, _, recipes, products := newProductionFixture(t)

	productID := products.add("pudding")
	require.NoError(t, recipes.Create(context.Background(), &model.Recipe{
		ProductID: productID,
		UnitCost:  dec("3"),
	}))

	resp, err := svc.Create(context.Background(), dto.CreateProductionPlanRequest{
		ProductID: productID.String(),
		Quantity:  dec("100"),
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})
	require.NoError(t, err)

	assert.True(t, resp.RecipeUnitCost.Equal(dec("3")))
	assert.True(t, resp.BatchCost.Equal(dec("300")))
	assert.Equal(t, model.ProductionPlanned, resp.Status)
}

func TestProductionCreateFailsWithoutRecipe(t *testing.T) {
	svc, plans, _, products := newProductionFixture(t)

	productID := products.add("pudding") // no recipe registered

	_, err := svc.Create(context.Background(), dto.CreateProductionPlanRequest{
		ProductID: productID.String(),
		Quantity:  dec("100"),
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})
	assert.ErrorIs(t, err, ErrNoRecipe)
	// Nothing was persisted.
	assert.Empty(t, plans.plans)
}

func TestProductionBatchCostIgnoresLaterRecipeChanges(t *testing.T) {
	svc, plans, recipes, products := newProductionFixture(t)

	productID := products.add("pudding")
	rec := &model.Recipe{ProductID: productID, UnitCost: dec("3")}
	require.NoError(t, recipes.Create(context.Background(), rec))

	resp, err := svc.Create(context.Background(), dto.CreateProductionPlanRequest{
		ProductID: productID.String(),
		Quantity:  dec("10"),
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
	})
	require.NoError(t, err)

	rec.UnitCost = dec("9")
	stored, err := plans.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.True(t, stored.BatchCost.Equal(dec("30")), "batch cost must stay at creation-time snapshot")
}

func TestProductionStatusTransitions(t *testing.T) {
	svc, _, recipes, products := newProductionFixture(t)

	productID := products.add("pudding")
	require.NoError(t, recipes.Create(context.Background(), &model.Recipe{ProductID: productID, UnitCost: dec("1")}))

	resp, err := svc.Create(context.Background(), dto.CreateProductionPlanRequest{
		ProductID: productID.String(),
		Quantity:  dec("5"),
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
	})
	require.NoError(t, err)
	planID := uuid.MustParse(resp.ID)

	// planned -> completed skips in_progress and is rejected.
	_, err = svc.UpdateStatus(context.Background(), planID, dto.UpdateProductionStatusRequest{Status: model.ProductionCompleted})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	started, err := svc.UpdateStatus(context.Background(), planID, dto.UpdateProductionStatusRequest{Status: model.ProductionInProgress})
	require.NoError(t, err)
	assert.Equal(t, model.ProductionInProgress, started.Status)

	done, err := svc.UpdateStatus(context.Background(), planID, dto.UpdateProductionStatusRequest{Status: model.ProductionCompleted})
	require.NoError(t, err)
	assert.Equal(t, model.ProductionCompleted, done.Status)

	// Completed is terminal.
	_, err = svc.UpdateStatus(context.Background(), planID, dto.UpdateProductionStatusRequest{Status: model.ProductionCancelled})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestProductionUpdateStatusUnknownPlan(t *testing.T) {
	svc, _, _, _ := newProductionFixture(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), dto.UpdateProductionStatusRequest{Status: model.ProductionInProgress})
	assert.ErrorIs(t, err, ErrNotFound)
}
