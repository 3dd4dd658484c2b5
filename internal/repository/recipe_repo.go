package repository

import (
	"context"

	"insygth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository is the data access contract for recipes/BOMs.
// Save replaces the item set wholesale — the breakdown is a snapshot, so
// partial item updates are never meaningful.
type RecipeRepository interface {
	Create(ctx context.Context, rec *model.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, int64, error)
	Replace(ctx context.Context, rec *model.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeRepo struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository { return &recipeRepo{db: db} }

func (r *recipeRepo) Create(ctx context.Context, rec *model.Recipe) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Items.Material").
		First(&rec, id).Error
	return &rec, err
}

func (r *recipeRepo) FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("product_id = ?", productID).
		First(&rec).Error
	return &rec, err
}

func (r *recipeRepo) List(ctx context.Context) ([]model.Recipe, int64, error) {
	var recipes []model.Recipe
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Recipe{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, total, err
}

// Replace persists a recomputed recipe: deletes the old item rows and writes
// the new snapshot in one transaction.
func (r *recipeRepo) Replace(ctx context.Context, rec *model.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&model.RecipeItem{}).Error; err != nil {
			return err
		}
		return tx.Save(rec).Error
	})
}

func (r *recipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, id).Error
	})
}
