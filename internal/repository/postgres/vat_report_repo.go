package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ustva/internal/domain"
	"ustva/internal/port"
)

type vatReportRepo struct {
	db *sqlx.DB
}

// NewVatReportRepo creates a new PostgreSQL-backed VatReportRepository.
func NewVatReportRepo(db *sqlx.DB) port.VatReportRepository {
	return &vatReportRepo{db: db}
}

// CreateOrGet resolves the (client_id, year, period_code) uniqueness race
// inside the database: ON CONFLICT DO NOTHING makes the insert attempt atomic,
// so of two concurrent calls exactly one creates the row and the other falls
// through to the lookup of the stored report.
func (r *vatReportRepo) CreateOrGet(ctx context.Context, report *domain.VatReport) (*domain.VatReport, bool, error) {
	report.ID = uuid.New()
	report.CreatedAt = time.Now().UTC()

	query := `INSERT INTO vat_reports (id, client_id, year, period_code, kz81, kz86, kz43, kz89, kz61, calculated_vat, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (client_id, year, period_code) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query,
		report.ID, report.ClientID, report.Year, report.PeriodCode,
		report.Kz81, report.Kz86, report.Kz43, report.Kz89, report.Kz61,
		report.CalculatedVat, report.Status, report.CreatedAt)
	if err == nil {
		return report, true, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		// The key already exists. The stored report wins; the figures
		// supplied in this call are discarded.
		var existing domain.VatReport
		err := r.db.GetContext(ctx, &existing,
			`SELECT * FROM vat_reports WHERE client_id = $1 AND year = $2 AND period_code = $3`,
			report.ClientID, report.Year, report.PeriodCode)
		if err != nil {
			return nil, false, fmt.Errorf("vatReportRepo.CreateOrGet lookup: %w", err)
		}
		return &existing, false, nil
	}

	if strings.Contains(err.Error(), "foreign key") {
		return nil, false, domain.ErrUnknownClient
	}
	return nil, false, fmt.Errorf("vatReportRepo.CreateOrGet: %w", err)
}

func (r *vatReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VatReport, error) {
	var report domain.VatReport
	err := r.db.GetContext(ctx, &report, "SELECT * FROM vat_reports WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("vatReportRepo.GetByID: %w", err)
	}
	return &report, nil
}

func (r *vatReportRepo) List(ctx context.Context) ([]domain.VatReportRow, error) {
	var rows []domain.VatReportRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT v.id, c.company_name, v.year, v.period_code,
			v.kz81, v.kz86, v.kz43, v.kz89, v.kz61,
			v.calculated_vat, v.status
		FROM vat_reports v
		JOIN clients c ON c.id = v.client_id
		ORDER BY v.created_at, v.id`)
	if err != nil {
		return nil, fmt.Errorf("vatReportRepo.List: %w", err)
	}
	return rows, nil
}
