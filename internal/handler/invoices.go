package handler

import (
	"net/http"

	"insygth/internal/apierror"
	"insygth/internal/dto"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoicesHandler struct{ svc service.SalesService }

func NewInvoicesHandler(svc service.SalesService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// Create godoc
// @Summary      Create a sale invoice
// @Description  Total is computed server-side. A pending invoice opens a receivable in the same transaction.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInvoiceRequest true "Sale details"
// @Success      201  {object} dto.InvoiceResponse
// @Router       /api/invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/invoices/{id} [get]
func (h *InvoicesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        payment_status query string false "pending | paid | all"
// @Param        page           query int    false "Page (default 1)"
// @Param        limit          query int    false "Page size (default 50)"
// @Success      200 {object} dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoicesHandler) List(c *gin.Context) {
	var filter dto.InvoiceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkPaid godoc
// @Summary      Mark an invoice as paid
// @Description  Settles the invoice and its receivable atomically. Already-paid invoices get 409.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "Invoice UUID"
// @Param        body body dto.UpdatePaymentStatusRequest true "New payment status"
// @Success      200  {object} dto.InvoiceResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/invoices/{id}/payment [patch]
func (h *InvoicesHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdatePaymentStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadPDF godoc
// @Summary      Download an invoice PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoicesHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	pdf, filename, err := h.svc.InvoicePDF(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ListReceivables godoc
// @Summary      List receivables
// @Tags         receivables
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending | paid | all"
// @Success      200 {array} dto.ReceivableResponse
// @Router       /api/receivables [get]
func (h *InvoicesHandler) ListReceivables(c *gin.Context) {
	resp, err := h.svc.ListReceivables(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReceivablesSummary godoc
// @Summary      Outstanding receivables summary
// @Tags         receivables
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ReceivablesSummaryResponse
// @Router       /api/receivables/summary [get]
func (h *InvoicesHandler) ReceivablesSummary(c *gin.Context) {
	resp, err := h.svc.ReceivablesSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
