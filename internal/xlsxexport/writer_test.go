package xlsxexport_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ustva/internal/domain"
	"ustva/internal/xlsxexport"
)

func TestWrite_HeaderAndRows(t *testing.T) {
	rows := []domain.VatReportRow{
		{
			ID:            uuid.New(),
			CompanyName:   "Acme GmbH",
			Year:          2024,
			PeriodCode:    "41",
			Kz81:          decimal.RequireFromString("1000"),
			CalculatedVat: decimal.RequireFromString("230"),
			Status:        domain.ReportStatusDraft,
		},
	}

	out, err := xlsxexport.Write(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue("Voranmeldungen", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Report ID", header)

	company, err := f.GetCellValue("Voranmeldungen", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", company)

	kz81, err := f.GetCellValue("Voranmeldungen", "E2")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", kz81)

	vat, err := f.GetCellValue("Voranmeldungen", "J2")
	require.NoError(t, err)
	assert.Equal(t, "230.00", vat)
}

func TestWrite_EmptyOverviewStillHasHeader(t *testing.T) {
	out, err := xlsxexport.Write(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Voranmeldungen")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Status", rows[0][len(rows[0])-1])
}
