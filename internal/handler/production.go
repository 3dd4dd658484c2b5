package handler

import (
	"net/http"

	"insygth/internal/apierror"
	"insygth/internal/dto"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductionHandler struct{ svc service.ProductionService }

func NewProductionHandler(svc service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// Create godoc
// @Summary      Plan a production batch
// @Description  Requires the product to have a recipe; batch cost = recipe unit cost x quantity, snapshotted at creation.
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateProductionPlanRequest true "Batch details"
// @Success      201  {object} dto.ProductionPlanResponse
// @Failure      422  {object} apierror.APIError "No recipe exists for this product"
// @Router       /api/production [post]
func (h *ProductionHandler) Create(c *gin.Context) {
	var req dto.CreateProductionPlanRequest
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
// @Summary      Get a production plan
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Plan UUID"
// @Success      200 {object} dto.ProductionPlanResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/production/{id} [get]
func (h *ProductionHandler) Get(c *gin.Context) {
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

// List godoc
// @Summary      List production plans
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "planned | in_progress | completed | cancelled | all"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Page size (default 50)"
// @Success      200 {object} dto.ProductionPlanListResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *gin.Context) {
	var filter dto.ProductionPlanFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Move a production plan through its lifecycle
// @Description  planned -> in_progress -> completed, with cancellation allowed before completion. Invalid moves get 409.
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                            true "Plan UUID"
// @Param        body body dto.UpdateProductionStatusRequest true "Target status"
// @Success      200  {object} dto.ProductionPlanResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/production/{id}/status [patch]
func (h *ProductionHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateProductionStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
