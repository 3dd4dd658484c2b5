package handler

import (
	"net/http"

	"insygth/internal/apierror"
	"insygth/internal/dto"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecipesHandler struct{ svc service.RecipeService }

func NewRecipesHandler(svc service.RecipeService) *RecipesHandler {
	return &RecipesHandler{svc: svc}
}

// Create godoc
// @Summary      Create a recipe / BOM
// @Description  Costs the component list against current material prices and stores the breakdown snapshot. With output_units set the unit cost is total / output units.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateRecipeRequest true "Product and components"
// @Success      201  {object} dto.RecipeResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/recipes [post]
func (h *RecipesHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Get a recipe with its cost breakdown
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recipe UUID"
// @Success      200 {object} dto.RecipeResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/recipes/{id} [get]
func (h *RecipesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByProduct godoc
// @Summary      Get the recipe of a product
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product UUID"
// @Success      200 {object} dto.RecipeResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/products/{id}/recipe [get]
func (h *RecipesHandler) GetByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.RecipeListResponse
// @Router       /api/recipes [get]
func (h *RecipesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Replace a recipe's components
// @Description  Replaces the component set and recomputes the cost snapshot against current material prices.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "Recipe UUID"
// @Param        body body dto.UpdateRecipeRequest true "New components"
// @Success      200  {object} dto.RecipeResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/recipes/{id} [put]
func (h *RecipesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateRecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RefreshCost godoc
// @Summary      Recompute a recipe's costs
// @Description  Re-prices the unchanged component set against current material prices. This is the only way stored recipe costs follow a material price change.
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recipe UUID"
// @Success      200 {object} dto.RecipeResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/recipes/{id}/refresh-cost [post]
func (h *RecipesHandler) RefreshCost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.RefreshCost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete a recipe
// @Tags         recipes
// @Security     BearerAuth
// @Param        id path string true "Recipe UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/recipes/{id} [delete]
func (h *RecipesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
