package service

import (
	"context"

	"ustva/internal/domain"
	"ustva/internal/port"
)

// searchLimit caps the number of name-search results.
const searchLimit = 10

// RegisterClientInput is the DTO for registering a client.
type RegisterClientInput struct {
	CompanyName  string `json:"company_name" binding:"required"`
	Street       string `json:"street" binding:"required"`
	StreetNumber string `json:"street_number" binding:"required"`
	Postcode     string `json:"postcode" binding:"required"`
	City         string `json:"city" binding:"required"`
	TaxNumber    string `json:"tax_number" binding:"required"`
	VatID        string `json:"vat_id"`
}

// ClientService defines the client registry contract.
type ClientService interface {
	Register(ctx context.Context, input RegisterClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Search(ctx context.Context, query string) ([]domain.ClientRef, error)
}

type clientService struct {
	repo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(repo port.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

// Register creates a client. A duplicate company name is a hard failure,
// deliberately asymmetric with the idempotent report creation.
func (s *clientService) Register(ctx context.Context, input RegisterClientInput) (*domain.Client, error) {
	client := &domain.Client{
		CompanyName:  input.CompanyName,
		Street:       input.Street,
		StreetNumber: input.StreetNumber,
		Postcode:     input.Postcode,
		City:         input.City,
		TaxNumber:    input.TaxNumber,
		VatID:        input.VatID,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Search(ctx context.Context, query string) ([]domain.ClientRef, error) {
	return s.repo.SearchByName(ctx, query, searchLimit)
}
