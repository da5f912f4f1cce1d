package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ustva/internal/config"
	"ustva/internal/domain"
	"ustva/internal/elster"
	"ustva/internal/port"
	"ustva/internal/vat"
	"ustva/internal/xlsxexport"
)

// CreateVatReportInput is the DTO for creating a VAT report.
type CreateVatReportInput struct {
	ClientID   uuid.UUID       `json:"client_id" binding:"required"`
	Year       int             `json:"year" binding:"required"`
	PeriodCode string          `json:"period_code" binding:"required"`
	Kz81       decimal.Decimal `json:"kz81"`
	Kz86       decimal.Decimal `json:"kz86"`
	Kz43       decimal.Decimal `json:"kz43"`
	Kz89       decimal.Decimal `json:"kz89"`
	Kz61       decimal.Decimal `json:"kz61"`
}

// CreateOrGetResult is the outcome of an idempotent report creation.
type CreateOrGetResult struct {
	ID            uuid.UUID       `json:"id"`
	Created       bool            `json:"created"`
	CalculatedVat decimal.Decimal `json:"calculated_vat"`
}

// VatReportService defines the VAT report lifecycle contract.
type VatReportService interface {
	CreateOrGet(ctx context.Context, input CreateVatReportInput) (*CreateOrGetResult, error)
	List(ctx context.Context) ([]domain.VatReportRow, error)
	ExportXML(ctx context.Context, reportID uuid.UUID) ([]byte, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type vatReportService struct {
	reportRepo port.VatReportRepository
	clientRepo port.ClientRepository
	archive    port.ObjectStorage
	exportCfg  *config.ExportConfig
}

// NewVatReportService creates a new VatReportService implementation.
// archive may be nil, in which case exported documents are not archived.
func NewVatReportService(
	reportRepo port.VatReportRepository,
	clientRepo port.ClientRepository,
	archive port.ObjectStorage,
	exportCfg *config.ExportConfig,
) VatReportService {
	return &vatReportService{
		reportRepo: reportRepo,
		clientRepo: clientRepo,
		archive:    archive,
		exportCfg:  exportCfg,
	}
}

// CreateOrGet validates the period code, derives the VAT total, and inserts
// the report. When the (client, year, period) key already exists the stored
// report is returned unchanged with Created=false.
func (s *vatReportService) CreateOrGet(ctx context.Context, input CreateVatReportInput) (*CreateOrGetResult, error) {
	if !domain.IsValidPeriodCode(input.PeriodCode) {
		return nil, domain.ErrInvalidPeriodCode
	}

	report := &domain.VatReport{
		ClientID:      input.ClientID,
		Year:          input.Year,
		PeriodCode:    input.PeriodCode,
		Kz81:          input.Kz81,
		Kz86:          input.Kz86,
		Kz43:          input.Kz43,
		Kz89:          input.Kz89,
		Kz61:          input.Kz61,
		CalculatedVat: vat.Calculate(input.Kz81, input.Kz86, input.Kz89, input.Kz61),
		Status:        domain.ReportStatusDraft,
	}

	stored, created, err := s.reportRepo.CreateOrGet(ctx, report)
	if err != nil {
		return nil, err
	}
	return &CreateOrGetResult{
		ID:            stored.ID,
		Created:       created,
		CalculatedVat: stored.CalculatedVat,
	}, nil
}

func (s *vatReportService) List(ctx context.Context) ([]domain.VatReportRow, error) {
	return s.reportRepo.List(ctx)
}

// ExportXML renders the Elster document for one report. The Erstellungsdatum
// is the export moment, not the report's creation time.
func (s *vatReportService) ExportXML(ctx context.Context, reportID uuid.UUID) ([]byte, error) {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.GetByID(ctx, report.ClientID)
	if err != nil {
		return nil, err
	}

	doc, err := elster.BuildUStVA(client, report, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	// Archive failures must not fail the export.
	if s.archive != nil {
		key := fmt.Sprintf("%s/%s/%d-%s.xml", s.exportCfg.Prefix, report.ClientID, report.Year, report.PeriodCode)
		if err := s.archive.Upload(ctx, port.UploadInput{
			Bucket:      s.exportCfg.Bucket,
			Key:         key,
			ContentType: "application/xml",
			Body:        bytes.NewReader(doc),
		}); err != nil {
			log.Printf("archiving export %s: %v", reportID, err)
		}
	}

	return doc, nil
}

func (s *vatReportService) ExportXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return xlsxexport.Write(rows)
}
