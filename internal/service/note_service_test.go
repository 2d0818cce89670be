package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/service"
	"github.com/Zoh007/claims-management-system/mocks"
)

func TestNoteService_Create(t *testing.T) {
	noteRepo := new(mocks.MockNoteRepo)
	claimRepo := new(mocks.MockClaimRepo)
	svc := service.NewNoteService(noteRepo, claimRepo)

	claim := &domain.Claim{ID: uuid.New(), ClaimID: "30001"}
	userID := uuid.New()
	claimRepo.On("GetByClaimID", mock.Anything, "30001").Return(claim, nil)
	noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Note) bool {
		return n.ClaimID == claim.ID && n.UserID == userID && n.Content == "call insurer"
	})).Return(nil)

	note, err := svc.Create(context.Background(), "30001", userID, service.CreateNoteInput{Content: "call insurer"})
	require.NoError(t, err)
	assert.Equal(t, "call insurer", note.Content)
	noteRepo.AssertExpectations(t)
}

func TestNoteService_Delete_OwnerOnly(t *testing.T) {
	noteRepo := new(mocks.MockNoteRepo)
	claimRepo := new(mocks.MockClaimRepo)
	svc := service.NewNoteService(noteRepo, claimRepo)

	owner := uuid.New()
	other := uuid.New()
	note := &domain.Note{ID: uuid.New(), UserID: owner}
	noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil)

	err := svc.Delete(context.Background(), note.ID, other, false)
	assert.ErrorIs(t, err, domain.ErrNotNoteOwner)
	noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNoteService_Delete_AdminOverride(t *testing.T) {
	noteRepo := new(mocks.MockNoteRepo)
	claimRepo := new(mocks.MockClaimRepo)
	svc := service.NewNoteService(noteRepo, claimRepo)

	note := &domain.Note{ID: uuid.New(), UserID: uuid.New()}
	noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil)
	noteRepo.On("Delete", mock.Anything, note.ID).Return(nil)

	err := svc.Delete(context.Background(), note.ID, uuid.New(), true)
	assert.NoError(t, err)
	noteRepo.AssertExpectations(t)
}
