package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/port"
)

type claimDetailRepo struct {
	db *sqlx.DB
}

// NewClaimDetailRepo creates a new PostgreSQL-backed ClaimDetailRepository.
func NewClaimDetailRepo(db *sqlx.DB) port.ClaimDetailRepository {
	return &claimDetailRepo{db: db}
}

func (r *claimDetailRepo) Create(ctx context.Context, detail *domain.ClaimDetail) error {
	detail.ID = uuid.New()
	now := time.Now().UTC()
	detail.CreatedAt = now
	detail.UpdatedAt = now

	query := `INSERT INTO claim_details (id, claim_id, cpt_codes, denial_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		detail.ID, detail.ClaimID, detail.CPTCodes, detail.DenialReason,
		detail.CreatedAt, detail.UpdatedAt)
	if err != nil {
		return fmt.Errorf("claimDetailRepo.Create: %w", err)
	}
	return nil
}

func (r *claimDetailRepo) GetByClaimID(ctx context.Context, claimID uuid.UUID) (*domain.ClaimDetail, error) {
	var detail domain.ClaimDetail
	err := r.db.GetContext(ctx, &detail,
		"SELECT * FROM claim_details WHERE claim_id = $1", claimID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("claimDetailRepo.GetByClaimID: %w", err)
	}
	return &detail, nil
}

func (r *claimDetailRepo) Update(ctx context.Context, detail *domain.ClaimDetail) error {
	detail.UpdatedAt = time.Now().UTC()
	query := `UPDATE claim_details SET cpt_codes = $1, denial_reason = $2, updated_at = $3
		WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query,
		detail.CPTCodes, detail.DenialReason, detail.UpdatedAt, detail.ID)
	if err != nil {
		return fmt.Errorf("claimDetailRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *claimDetailRepo) ListByClaimIDs(ctx context.Context, claimIDs []uuid.UUID) ([]domain.ClaimDetail, error) {
	if len(claimIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT * FROM claim_details WHERE claim_id IN (?)", claimIDs)
	if err != nil {
		return nil, fmt.Errorf("claimDetailRepo.ListByClaimIDs: %w", err)
	}
	query = r.db.Rebind(query)

	var details []domain.ClaimDetail
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, fmt.Errorf("claimDetailRepo.ListByClaimIDs: %w", err)
	}
	return details, nil
}

func (r *claimDetailRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM claim_details"); err != nil {
		return fmt.Errorf("claimDetailRepo.DeleteAll: %w", err)
	}
	return nil
}
