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

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	client.ID = uuid.New()
	client.CreatedAt = time.Now().UTC()

	query := `INSERT INTO clients (id, company_name, street, street_number, postcode, city, tax_number, vat_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		client.ID, client.CompanyName, client.Street, client.StreetNumber,
		client.Postcode, client.City, client.TaxNumber, client.VatID, client.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "company_name") {
			return domain.ErrDuplicateCompanyName
		}
		return fmt.Errorf("clientRepo.Create: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.SelectContext(ctx, &clients, "SELECT * FROM clients ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("clientRepo.List: %w", err)
	}
	return clients, nil
}

func (r *clientRepo) SearchByName(ctx context.Context, query string, limit int) ([]domain.ClientRef, error) {
	var refs []domain.ClientRef
	err := r.db.SelectContext(ctx, &refs,
		`SELECT id, company_name FROM clients
		WHERE company_name ILIKE '%' || $1 || '%'
		ORDER BY company_name
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("clientRepo.SearchByName: %w", err)
	}
	return refs, nil
}
