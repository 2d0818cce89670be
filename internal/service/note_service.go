package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/port"
)

// CreateNoteInput is the DTO for annotating a claim.
type CreateNoteInput struct {
	Content string `json:"content" binding:"required"`
}

// NoteService defines note lifecycle operations.
type NoteService interface {
	Create(ctx context.Context, claimID string, userID uuid.UUID, input CreateNoteInput) (*domain.Note, error)
	ListByClaim(ctx context.Context, claimID string) ([]domain.Note, error)
	Delete(ctx context.Context, noteID, userID uuid.UUID, isAdmin bool) error
}

type noteService struct {
	noteRepo  port.NoteRepository
	claimRepo port.ClaimRepository
}

// NewNoteService creates a new NoteService implementation.
func NewNoteService(noteRepo port.NoteRepository, claimRepo port.ClaimRepository) NoteService {
	return &noteService{noteRepo: noteRepo, claimRepo: claimRepo}
}

func (s *noteService) Create(ctx context.Context, claimID string, userID uuid.UUID, input CreateNoteInput) (*domain.Note, error) {
	claim, err := s.claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		ClaimID: claim.ID,
		UserID:  userID,
		Content: input.Content,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("note.Create: %w", err)
	}
	return note, nil
}

func (s *noteService) ListByClaim(ctx context.Context, claimID string) ([]domain.Note, error) {
	claim, err := s.claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.ListByClaim(ctx, claim.ID)
	if err != nil {
		return nil, fmt.Errorf("note.ListByClaim: %w", err)
	}
	return notes, nil
}

func (s *noteService) Delete(ctx context.Context, noteID, userID uuid.UUID, isAdmin bool) error {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	// Only the author or an admin may remove a note.
	if note.UserID != userID && !isAdmin {
		return domain.ErrNotNoteOwner
	}
	if err := s.noteRepo.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("note.Delete: %w", err)
	}
	return nil
}
