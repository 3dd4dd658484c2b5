package handler

import (
	"net/http"

	"insygth/internal/apierror"
	"insygth/internal/middleware"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StaffHandler struct{ svc service.StaffService }

func NewStaffHandler(svc service.StaffService) *StaffHandler { return &StaffHandler{svc: svc} }

// List godoc
// @Summary      List staff approval requests
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending | active | rejected | all"
// @Success      200 {object} dto.StaffRequestListResponse
// @Router       /api/staff-requests [get]
func (h *StaffHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Approve godoc
// @Summary      Approve a staff request
// @Description  Owner only. Activates the staff account atomically with the request.
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request UUID"
// @Success      200 {object} dto.StaffRequestResponse
// @Failure      403 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /api/staff-requests/{id}/approve [post]
func (h *StaffHandler) Approve(c *gin.Context) {
	h.review(c, true)
}

// Reject godoc
// @Summary      Reject a staff request
// @Description  Owner only. The account stays inactive.
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request UUID"
// @Success      200 {object} dto.StaffRequestResponse
// @Failure      403 {object} apierror.APIError
// @Router       /api/staff-requests/{id}/reject [post]
func (h *StaffHandler) Reject(c *gin.Context) {
	h.review(c, false)
}

func (h *StaffHandler) review(c *gin.Context, approve bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	reviewerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid token subject"))
		return
	}

	var resp interface{}
	if approve {
		resp, err = h.svc.Approve(c.Request.Context(), id, reviewerID, claims.Role)
	} else {
		resp, err = h.svc.Reject(c.Request.Context(), id, reviewerID, claims.Role)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
