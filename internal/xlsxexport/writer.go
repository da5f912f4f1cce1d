// Package xlsxexport renders the filings overview as an Excel workbook.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ustva/internal/domain"
)

const sheetName = "Voranmeldungen"

// columns defines the header row of the overview sheet.
var columns = []string{
	"Report ID",
	"Company Name",
	"Jahr",
	"Zeitraum",
	"Kz81",
	"Kz86",
	"Kz43",
	"Kz89",
	"Kz61",
	"Berechnete USt",
	"Status",
}

// Write builds an xlsx workbook with one row per report and returns the
// serialized file.
func Write(rows []domain.VatReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsxexport: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, fmt.Errorf("xlsxexport: write header: %w", err)
		}
	}

	for r, row := range rows {
		values := []interface{}{
			row.ID.String(),
			row.CompanyName,
			row.Year,
			row.PeriodCode,
			row.Kz81.StringFixed(2),
			row.Kz86.StringFixed(2),
			row.Kz43.StringFixed(2),
			row.Kz89.StringFixed(2),
			row.Kz61.StringFixed(2),
			row.CalculatedVat.StringFixed(2),
			string(row.Status),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("xlsxexport: cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsxexport: write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsxexport: serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
