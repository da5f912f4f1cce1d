package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ustva/internal/domain"
)

// MockVatReportRepo is a mock implementation of port.VatReportRepository.
type MockVatReportRepo struct {
	mock.Mock
}

func (m *MockVatReportRepo) CreateOrGet(ctx context.Context, report *domain.VatReport) (*domain.VatReport, bool, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.VatReport), args.Bool(1), args.Error(2)
}

func (m *MockVatReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VatReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatReport), args.Error(1)
}

func (m *MockVatReportRepo) List(ctx context.Context) ([]domain.VatReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatReportRow), args.Error(1)
}
