package handler

import (
	"net/http"

	"insygth/internal/apierror"
	"insygth/internal/dto"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaterialsHandler struct{ svc service.MaterialService }

func NewMaterialsHandler(svc service.MaterialService) *MaterialsHandler {
	return &MaterialsHandler{svc: svc}
}

// Create godoc
// @Summary      Add a raw material
// @Description  Registers a raw material; unit price is derived from total price / quantity.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateMaterialRequest true "Material details"
// @Success      201  {object} dto.MaterialResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /api/materials [post]
func (h *MaterialsHandler) Create(c *gin.Context) {
	var req dto.CreateMaterialRequest
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
// @Summary      Get a raw material
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Material UUID"
// @Success      200 {object} dto.MaterialResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/materials/{id} [get]
func (h *MaterialsHandler) Get(c *gin.Context) {
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
// @Summary      List raw materials
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        name      query string false "Name substring filter"
// @Param        category  query string false "Category filter"
// @Param        warehouse query string false "Warehouse filter"
// @Param        page      query int    false "Page (default 1)"
// @Param        limit     query int    false "Page size (default 50)"
// @Success      200 {object} dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *MaterialsHandler) List(c *gin.Context) {
	var filter dto.MaterialFilter
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

// Update godoc
// @Summary      Update a raw material
// @Description  Partial update; changing quantity or total price re-derives the unit price.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Material UUID"
// @Param        body body dto.UpdateMaterialRequest true "Fields to change"
// @Success      200  {object} dto.MaterialResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/materials/{id} [patch]
func (h *MaterialsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateMaterialRequest
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

// Delete godoc
// @Summary      Delete a raw material
// @Tags         materials
// @Security     BearerAuth
// @Param        id path string true "Material UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/materials/{id} [delete]
func (h *MaterialsHandler) Delete(c *gin.Context) {
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
