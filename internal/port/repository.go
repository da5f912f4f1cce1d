package port

import (
	"context"

	"github.com/google/uuid"

	"ustva/internal/domain"
)

// ClientRepository defines the contract for client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	SearchByName(ctx context.Context, query string, limit int) ([]domain.ClientRef, error)
}

// VatReportRepository defines the contract for VAT report persistence.
type VatReportRepository interface {
	// CreateOrGet inserts report keyed by (client_id, year, period_code).
	// If a report for that key already exists, the stored report is returned
	// unchanged with created=false; the figures in report are discarded.
	// The uniqueness check and the insert are a single atomic statement.
	CreateOrGet(ctx context.Context, report *domain.VatReport) (*domain.VatReport, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VatReport, error)
	List(ctx context.Context) ([]domain.VatReportRow, error)
}
