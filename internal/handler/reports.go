package handler

import (
	"context"
	"net/http"

	"insygth/internal/service"

	"github.com/gin-gonic/gin"
)

// InventoryExporter produces the raw materials workbook download.
// Implemented in infra with excelize.
type InventoryExporter interface {
	InventoryWorkbook(ctx context.Context) ([]byte, error)
}

type ReportsHandler struct {
	svc      service.ReportService
	exporter InventoryExporter
}

func NewReportsHandler(svc service.ReportService, exporter InventoryExporter) *ReportsHandler {
	return &ReportsHandler{svc: svc, exporter: exporter}
}

// Summary godoc
// @Summary      Business dashboard summary
// @Description  Revenue, pending revenue, expenses, outstanding receivables, planned production cost and entity counts.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.BusinessSummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportsHandler) Summary(c *gin.Context) {
	resp, err := h.svc.BusinessSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// InventoryExport godoc
// @Summary      Download the raw material inventory as XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200 {file} binary
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportsHandler) InventoryExport(c *gin.Context) {
	data, err := h.exporter.InventoryWorkbook(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventory.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
