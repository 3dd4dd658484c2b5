package service

import (
	"context"
	"testing"

	"insygth/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialCreateDerivesUnitPrice(t *testing.T) {
	repo := newStubMaterialRepo()
	svc := NewMaterialService(repo, &recordingNotifier{})

	resp, err := svc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "sugar", Category: "sweetener", Unit: "kg",
		Quantity: dec("50"), TotalPrice: dec("10"),
	})
	require.NoError(t, err)

	assert.True(t, resp.UnitPrice.Equal(dec("0.2")), "got %s", resp.UnitPrice)
	assert.Equal(t, "main", resp.Warehouse)
}

func TestMaterialZeroQuantityYieldsZeroUnitPrice(t *testing.T) {
	repo := newStubMaterialRepo()
	svc := NewMaterialService(repo, &recordingNotifier{})

	resp, err := svc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "salt", Category: "seasoning", Unit: "kg",
		Quantity: dec("0"), TotalPrice: dec("10"),
	})
	require.NoError(t, err)
	assert.True(t, resp.UnitPrice.IsZero())
}

func TestMaterialUpdateRecomputesUnitPrice(t *testing.T) {
	repo := newStubMaterialRepo()
	svc := NewMaterialService(repo, &recordingNotifier{})

	created, err := svc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "sugar", Category: "sweetener", Unit: "kg",
		Quantity: dec("50"), TotalPrice: dec("10"),
	})
	require.NoError(t, err)

	newTotal := dec("20")
	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateMaterialRequest{
		TotalPrice: &newTotal,
	})
	require.NoError(t, err)
	assert.True(t, updated.UnitPrice.Equal(dec("0.4")))

	// A name-only update must not touch the derived price.
	name := "brown sugar"
	renamed, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateMaterialRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "brown sugar", renamed.Name)
	assert.True(t, renamed.UnitPrice.Equal(dec("0.4")))
}

func TestMaterialGetUnknownID(t *testing.T) {
	repo := newStubMaterialRepo()
	svc := NewMaterialService(repo, &recordingNotifier{})

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
