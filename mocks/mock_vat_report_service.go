package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ustva/internal/domain"
	"ustva/internal/service"
)

// MockVatReportService is a mock implementation of service.VatReportService.
type MockVatReportService struct {
	mock.Mock
}

func (m *MockVatReportService) CreateOrGet(ctx context.Context, input service.CreateVatReportInput) (*service.CreateOrGetResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreateOrGetResult), args.Error(1)
}

func (m *MockVatReportService) List(ctx context.Context) ([]domain.VatReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatReportRow), args.Error(1)
}

func (m *MockVatReportService) ExportXML(ctx context.Context, reportID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockVatReportService) ExportXLSX(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
