package handler

import (
	"net/http"

	"insygth/internal/apierror"
	"insygth/internal/dto"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpensesHandler struct{ svc service.ExpenseService }

func NewExpensesHandler(svc service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{svc: svc}
}

// Create godoc
// @Summary      Record an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateExpenseRequest true "Expense details"
// @Success      201  {object} dto.ExpenseResponse
// @Router       /api/expenses [post]
func (h *ExpensesHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
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

// List godoc
// @Summary      List expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Category filter"
// @Param        month    query string false "Month YYYY-MM"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Page size (default 50)"
// @Success      200 {object} dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpensesHandler) List(c *gin.Context) {
	var filter dto.ExpenseFilter
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

// Summary godoc
// @Summary      Expense totals by category
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        month query string false "Month YYYY-MM (all time when omitted)"
// @Success      200 {object} dto.ExpenseSummaryResponse
// @Router       /api/expenses/summary [get]
func (h *ExpensesHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context(), c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid month, expected YYYY-MM"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
