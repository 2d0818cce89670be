package service

import (
	"context"
	"fmt"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/port"
)

// StatsService provides aggregate figures for the dashboard.
type StatsService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.GetStats: %w", err)
	}
	return stats, nil
}
