package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/port"
	"github.com/Zoh007/claims-management-system/internal/service"
)

// MockClaimService is a mock implementation of service.ClaimService.
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) List(ctx context.Context, filter port.ClaimFilter, page, pageSize int) (*service.ClaimPage, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClaimPage), args.Error(1)
}

func (m *MockClaimService) Get(ctx context.Context, claimID string) (*service.ClaimView, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClaimView), args.Error(1)
}

func (m *MockClaimService) FilterOptions(ctx context.Context) (*service.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FilterOptions), args.Error(1)
}

func (m *MockClaimService) ExportData(ctx context.Context) ([]domain.Claim, map[string]*domain.ClaimDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Claim), args.Get(1).(map[string]*domain.ClaimDetail), args.Error(2)
}
