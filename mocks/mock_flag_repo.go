package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// MockFlagRepo is a mock implementation of port.FlagRepository.
type MockFlagRepo struct {
	mock.Mock
}

func (m *MockFlagRepo) Create(ctx context.Context, flag *domain.Flag) error {
	args := m.Called(ctx, flag)
	return args.Error(0)
}

func (m *MockFlagRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flag), args.Error(1)
}

func (m *MockFlagRepo) ListByClaim(ctx context.Context, claimID uuid.UUID) ([]domain.Flag, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flag), args.Error(1)
}

func (m *MockFlagRepo) ListRecent(ctx context.Context, limit int) ([]domain.Flag, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flag), args.Error(1)
}

func (m *MockFlagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlagRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
