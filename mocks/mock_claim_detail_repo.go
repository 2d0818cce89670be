package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// MockClaimDetailRepo is a mock implementation of port.ClaimDetailRepository.
type MockClaimDetailRepo struct {
	mock.Mock
}

func (m *MockClaimDetailRepo) Create(ctx context.Context, detail *domain.ClaimDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockClaimDetailRepo) GetByClaimID(ctx context.Context, claimID uuid.UUID) (*domain.ClaimDetail, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimDetail), args.Error(1)
}

func (m *MockClaimDetailRepo) Update(ctx context.Context, detail *domain.ClaimDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockClaimDetailRepo) ListByClaimIDs(ctx context.Context, claimIDs []uuid.UUID) ([]domain.ClaimDetail, error) {
	args := m.Called(ctx, claimIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimDetail), args.Error(1)
}

func (m *MockClaimDetailRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
