package elster_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ustva/internal/domain"
	"ustva/internal/elster"
)

func testClient() *domain.Client {
	return &domain.Client{
		CompanyName:  "Acme GmbH",
		Street:       "Hauptstraße",
		StreetNumber: "12a",
		Postcode:     "10115",
		City:         "Berlin",
		TaxNumber:    "12/345/67890",
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildUStVA_Structure(t *testing.T) {
	report := &domain.VatReport{
		Year:       2024,
		PeriodCode: "41",
		Kz81:       d("1000"),
		Kz86:       d("500"),
		Kz89:       d("10"),
		Kz61:       d("5"),
	}
	createdAt := time.Date(2024, 7, 15, 9, 30, 0, 0, time.UTC)

	out, err := elster.BuildUStVA(testClient(), report, createdAt)
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, "<?xml"), "missing XML declaration")
	assert.Contains(t, doc, "<Elster>")
	assert.Contains(t, doc, "<Erstellungsdatum>20240715</Erstellungsdatum>")
	assert.Contains(t, doc, "<Bezeichnung>Acme GmbH</Bezeichnung>")
	assert.Contains(t, doc, "<Str>Hauptstraße</Str>")
	assert.Contains(t, doc, "<Hausnummer>12a</Hausnummer>")
	assert.Contains(t, doc, "<Ort>Berlin</Ort>")
	assert.Contains(t, doc, "<PLZ>10115</PLZ>")
	assert.Contains(t, doc, "<Land>Spanien</Land>")
	assert.Contains(t, doc, "<Jahr>2024</Jahr>")
	assert.Contains(t, doc, "<Zeitraum>41</Zeitraum>")
}

func TestBuildUStVA_TwoDecimalFormatting(t *testing.T) {
	report := &domain.VatReport{
		Year:       2024,
		PeriodCode: "41",
		Kz81:       d("1000"),
		Kz86:       d("500"),
		Kz89:       d("10"),
		Kz61:       d("5"),
	}

	out, err := elster.BuildUStVA(testClient(), report, time.Now())
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "<Kz81>1000.00</Kz81>")
	assert.Contains(t, doc, "<Kz86>500.00</Kz86>")
	assert.Contains(t, doc, "<Kz89>10.00</Kz89>")
	assert.Contains(t, doc, "<Kz61>5.00</Kz61>")
}

func TestBuildUStVA_OmitsZeroKennziffern(t *testing.T) {
	report := &domain.VatReport{
		Year:       2024,
		PeriodCode: "03",
		Kz81:       d("100.00"),
	}

	out, err := elster.BuildUStVA(testClient(), report, time.Now())
	require.NoError(t, err)
	doc := string(out)

	assert.Equal(t, 1, strings.Count(doc, "<Kz81>"), "exactly one Kz81 element expected")
	assert.Contains(t, doc, "<Kz81>100.00</Kz81>")
	assert.NotContains(t, doc, "<Kz86>")
	assert.NotContains(t, doc, "<Kz43>")
	assert.NotContains(t, doc, "<Kz89>")
	assert.NotContains(t, doc, "<Kz61>")
}

func TestBuildUStVA_RoundsHalfAwayFromZero(t *testing.T) {
	report := &domain.VatReport{
		Year:       2024,
		PeriodCode: "01",
		Kz81:       d("0.125"),
		Kz61:       d("0.135"),
	}

	out, err := elster.BuildUStVA(testClient(), report, time.Now())
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "<Kz81>0.13</Kz81>")
	assert.Contains(t, doc, "<Kz61>0.14</Kz61>")
}

func TestBuildUStVA_NegativeFigureIsEmitted(t *testing.T) {
	report := &domain.VatReport{
		Year:       2024,
		PeriodCode: "02",
		Kz89:       d("-3.5"),
	}

	out, err := elster.BuildUStVA(testClient(), report, time.Now())
	require.NoError(t, err)

	assert.Contains(t, string(out), "<Kz89>-3.50</Kz89>")
}
