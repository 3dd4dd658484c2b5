package infra

// pdf.go — invoice PDF generation using go-pdf/fpdf.
// A5 landscape invoice with business header, invoice number and date,
// line detail (product, quantity, unit price) and a bold total.

import (
	"bytes"
	"fmt"

	"insygth/internal/model"

	"github.com/go-pdf/fpdf"
)

// InvoiceRenderer renders sale invoices as PDF documents.
type InvoiceRenderer struct {
	businessName string
}

func NewInvoiceRenderer(businessName string) *InvoiceRenderer {
	if businessName == "" {
		businessName = "Insygth"
	}
	return &InvoiceRenderer{businessName: businessName}
}

// RenderInvoicePDF produces the printable invoice document in memory.
func (r *InvoiceRenderer) RenderInvoicePDF(inv *model.SaleInvoice) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, r.businessName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Sale Invoice", "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Invoice #%d", inv.InvoiceNumber), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 6, inv.CreatedAt.Format("02 Jan 2006"), "", 1, "R", false, 0, "")

	if inv.CustomerName != nil && *inv.CustomerName != "" {
		pdf.CellFormat(contentW, 5, "Billed to: "+*inv.CustomerName, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	// ── Line detail ──────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // product
	col2 := contentW * 0.18 // quantity
	col3 := contentW * 0.18 // unit price
	col4 := contentW * 0.18 // amount

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Unit price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Amount", "B", 1, "R", false, 0, "")

	name := ""
	if inv.Product != nil {
		name = inv.Product.Name
	}
	if len(name) > 40 {
		name = name[:39] + "…"
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, inv.Quantity.String(), "", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, inv.SellingPricePerUnit.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, inv.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	// ── Total and status ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 8, inv.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	status := "Payment pending"
	if inv.PaymentStatus == model.PaymentPaid {
		status = "Paid"
	}
	pdf.CellFormat(contentW, 6, status, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
