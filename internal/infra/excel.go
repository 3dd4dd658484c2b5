package infra

import (
	"bytes"
	"context"
	"fmt"

	"insygth/internal/repository"

	"github.com/xuri/excelize/v2"
)

// InventoryExporter builds the raw material inventory workbook.
type InventoryExporter struct {
	materials repository.MaterialRepository
}

func NewInventoryExporter(materials repository.MaterialRepository) *InventoryExporter {
	return &InventoryExporter{materials: materials}
}

// InventoryWorkbook renders every raw material to a single-sheet XLSX file.
func (e *InventoryExporter) InventoryWorkbook(ctx context.Context) ([]byte, error) {
	materials, err := e.materials.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"name",
		"category",
		"unit",
		"quantity",
		"total_price",
		"unit_price",
		"warehouse",
		"expires_at",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: header row: %w", err)
	}

	row := 2
	for _, m := range materials {
		expires := ""
		if m.ExpiresAt != nil {
			expires = m.ExpiresAt.Format("2006-01-02")
		}
		excelRow := []interface{}{
			m.Name,
			m.Category,
			m.Unit,
			m.Quantity.String(),
			m.TotalPrice.StringFixed(2),
			m.UnitPrice.String(),
			m.Warehouse,
			expires,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: row %d: %w", row, err)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
