package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client represents a legal entity the office files VAT pre-filings for.
type Client struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyName  string    `db:"company_name" json:"company_name"`
	Street       string    `db:"street" json:"street"`
	StreetNumber string    `db:"street_number" json:"street_number"`
	Postcode     string    `db:"postcode" json:"postcode"`
	City         string    `db:"city" json:"city"`
	TaxNumber    string    `db:"tax_number" json:"tax_number"`
	VatID        string    `db:"vat_id" json:"vat_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ClientRef is the shortened client record returned by name search.
type ClientRef struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CompanyName string    `db:"company_name" json:"company_name"`
}

// VatReport holds one filing period's Kennziffer figures for one client.
// A report is immutable once created; at most one exists per
// (client_id, year, period_code).
type VatReport struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	Year          int             `db:"year" json:"year"`
	PeriodCode    string          `db:"period_code" json:"period_code"`
	Kz81          decimal.Decimal `db:"kz81" json:"kz81"`
	Kz86          decimal.Decimal `db:"kz86" json:"kz86"`
	Kz43          decimal.Decimal `db:"kz43" json:"kz43"`
	Kz89          decimal.Decimal `db:"kz89" json:"kz89"`
	Kz61          decimal.Decimal `db:"kz61" json:"kz61"`
	CalculatedVat decimal.Decimal `db:"calculated_vat" json:"calculated_vat"`
	Status        ReportStatus    `db:"status" json:"status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// VatReportRow is one row of the report overview, joined with the
// owning client's name.
type VatReportRow struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	CompanyName   string          `db:"company_name" json:"company_name"`
	Year          int             `db:"year" json:"year"`
	PeriodCode    string          `db:"period_code" json:"period_code"`
	Kz81          decimal.Decimal `db:"kz81" json:"kz81"`
	Kz86          decimal.Decimal `db:"kz86" json:"kz86"`
	Kz43          decimal.Decimal `db:"kz43" json:"kz43"`
	Kz89          decimal.Decimal `db:"kz89" json:"kz89"`
	Kz61          decimal.Decimal `db:"kz61" json:"kz61"`
	CalculatedVat decimal.Decimal `db:"calculated_vat" json:"calculated_vat"`
	Status        ReportStatus    `db:"status" json:"status"`
}
