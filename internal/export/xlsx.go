package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

const sheetName = "Claims"

// WriteXLSX writes the claims as a single-sheet Excel workbook.
func WriteXLSX(w io.Writer, claims []domain.Claim, details map[string]*domain.ClaimDetail) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	for i := range claims {
		row := claimToRow(&claims[i], details[claims[i].ClaimID])
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}
