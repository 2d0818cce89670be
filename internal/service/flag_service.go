package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/events"
	"github.com/Zoh007/claims-management-system/internal/port"
)

// CreateFlagInput is the DTO for flagging a claim.
type CreateFlagInput struct {
	Reason string `json:"reason" binding:"required"`
}

// FlagService defines flag lifecycle operations.
type FlagService interface {
	Create(ctx context.Context, claimID string, userID uuid.UUID, input CreateFlagInput) (*domain.Flag, error)
	ListByClaim(ctx context.Context, claimID string) ([]domain.Flag, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Flag, error)
	Delete(ctx context.Context, flagID uuid.UUID) error
}

type flagService struct {
	flagRepo  port.FlagRepository
	claimRepo port.ClaimRepository
	hub       *events.Hub
}

// NewFlagService creates a new FlagService implementation.
func NewFlagService(flagRepo port.FlagRepository, claimRepo port.ClaimRepository, hub *events.Hub) FlagService {
	return &flagService{flagRepo: flagRepo, claimRepo: claimRepo, hub: hub}
}

func (s *flagService) Create(ctx context.Context, claimID string, userID uuid.UUID, input CreateFlagInput) (*domain.Flag, error) {
	claim, err := s.claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	flag := &domain.Flag{
		ClaimID: claim.ID,
		UserID:  userID,
		Reason:  input.Reason,
	}
	if err := s.flagRepo.Create(ctx, flag); err != nil {
		return nil, fmt.Errorf("flag.Create: %w", err)
	}

	s.hub.Publish(events.Event{
		Type:    events.TypeFlagAdded,
		ClaimID: claim.ClaimID,
		FlagID:  flag.ID,
		Message: input.Reason,
	})
	return flag, nil
}

func (s *flagService) ListByClaim(ctx context.Context, claimID string) ([]domain.Flag, error) {
	claim, err := s.claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	flags, err := s.flagRepo.ListByClaim(ctx, claim.ID)
	if err != nil {
		return nil, fmt.Errorf("flag.ListByClaim: %w", err)
	}
	return flags, nil
}

const defaultRecentFlagLimit = 20

func (s *flagService) ListRecent(ctx context.Context, limit int) ([]domain.Flag, error) {
	if limit < 1 {
		limit = defaultRecentFlagLimit
	}
	flags, err := s.flagRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("flag.ListRecent: %w", err)
	}
	return flags, nil
}

func (s *flagService) Delete(ctx context.Context, flagID uuid.UUID) error {
	flag, err := s.flagRepo.GetByID(ctx, flagID)
	if err != nil {
		return err
	}
	if err := s.flagRepo.Delete(ctx, flagID); err != nil {
		return fmt.Errorf("flag.Delete: %w", err)
	}

	// Removal events carry the external claim ID clients know.
	event := events.Event{Type: events.TypeFlagRemoved, FlagID: flag.ID}
	if claim, err := s.claimRepo.GetByID(ctx, flag.ClaimID); err == nil {
		event.ClaimID = claim.ClaimID
	}
	s.hub.Publish(event)
	return nil
}
