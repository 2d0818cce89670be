package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// ClaimFilter narrows claim list queries.
type ClaimFilter struct {
	// Search matches patient name, claim ID, or insurer name (case-insensitive substring).
	Search  string
	Status  string
	Insurer string
}

// ClaimRepository defines the contract for claim persistence. Claims are
// reconciled by their external claim ID; a single claim's create or update
// is atomic.
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	GetByClaimID(ctx context.Context, claimID string) (*domain.Claim, error)
	Update(ctx context.Context, claim *domain.Claim) error
	List(ctx context.Context, filter ClaimFilter, offset, limit int) ([]domain.Claim, int, error)
	ListAll(ctx context.Context) ([]domain.Claim, error)
	DistinctStatuses(ctx context.Context) ([]string, error)
	DistinctInsurers(ctx context.Context) ([]string, error)
	DeleteAll(ctx context.Context) error
}

// ClaimDetailRepository defines the contract for claim detail persistence.
// Details reference their parent claim by its internal ID; at most one detail
// row exists per claim.
type ClaimDetailRepository interface {
	Create(ctx context.Context, detail *domain.ClaimDetail) error
	GetByClaimID(ctx context.Context, claimID uuid.UUID) (*domain.ClaimDetail, error)
	Update(ctx context.Context, detail *domain.ClaimDetail) error
	ListByClaimIDs(ctx context.Context, claimIDs []uuid.UUID) ([]domain.ClaimDetail, error)
	DeleteAll(ctx context.Context) error
}

// FlagRepository defines the contract for flag persistence.
type FlagRepository interface {
	Create(ctx context.Context, flag *domain.Flag) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flag, error)
	ListByClaim(ctx context.Context, claimID uuid.UUID) ([]domain.Flag, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Flag, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

// NoteRepository defines the contract for note persistence.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByClaim(ctx context.Context, claimID uuid.UUID) ([]domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// StatsRepository provides aggregate statistics queries.
type StatsRepository interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}
