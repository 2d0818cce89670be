package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/port"
)

type claimRepo struct {
	db *sqlx.DB
}

// NewClaimRepo creates a new PostgreSQL-backed ClaimRepository.
func NewClaimRepo(db *sqlx.DB) port.ClaimRepository {
	return &claimRepo{db: db}
}

func (r *claimRepo) Create(ctx context.Context, claim *domain.Claim) error {
	claim.ID = uuid.New()
	now := time.Now().UTC()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	query := `INSERT INTO claims (id, claim_id, patient_name, insurer_name, billed_amount,
		paid_amount, status, discharge_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		claim.ID, claim.ClaimID, claim.PatientName, claim.InsurerName,
		claim.BilledAmount, claim.PaidAmount, claim.Status, claim.DischargeDate,
		claim.CreatedAt, claim.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateClaimID
		}
		return fmt.Errorf("claimRepo.Create: %w", err)
	}
	return nil
}

func (r *claimRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	var claim domain.Claim
	err := r.db.GetContext(ctx, &claim, "SELECT * FROM claims WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("claimRepo.GetByID: %w", err)
	}
	return &claim, nil
}

func (r *claimRepo) GetByClaimID(ctx context.Context, claimID string) (*domain.Claim, error) {
	var claim domain.Claim
	err := r.db.GetContext(ctx, &claim,
		"SELECT * FROM claims WHERE claim_id = $1", claimID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("claimRepo.GetByClaimID: %w", err)
	}
	return &claim, nil
}

func (r *claimRepo) Update(ctx context.Context, claim *domain.Claim) error {
	claim.UpdatedAt = time.Now().UTC()
	query := `UPDATE claims SET patient_name = $1, insurer_name = $2, billed_amount = $3,
		paid_amount = $4, status = $5, discharge_date = $6, updated_at = $7
		WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		claim.PatientName, claim.InsurerName, claim.BilledAmount, claim.PaidAmount,
		claim.Status, claim.DischargeDate, claim.UpdatedAt, claim.ID)
	if err != nil {
		return fmt.Errorf("claimRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildClaimWhere constructs a dynamic WHERE clause for claim list queries.
// It returns the clause string (possibly empty) and the positional arguments.
func buildClaimWhere(filter port.ClaimFilter) (clause string, args []interface{}) {
	var conditions []string
	argN := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(patient_name ILIKE $%d OR claim_id ILIKE $%d OR insurer_name ILIKE $%d)",
			argN, argN, argN))
		args = append(args, "%"+filter.Search+"%")
		argN++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argN))
		args = append(args, filter.Status)
		argN++
	}
	if filter.Insurer != "" {
		conditions = append(conditions, fmt.Sprintf("insurer_name = $%d", argN))
		args = append(args, filter.Insurer)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *claimRepo) List(ctx context.Context, filter port.ClaimFilter, offset, limit int) ([]domain.Claim, int, error) {
	clause, args := buildClaimWhere(filter)

	var total int
	err := r.db.GetContext(ctx, &total,
		fmt.Sprintf("SELECT COUNT(*) FROM claims %s", clause), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("claimRepo.List count: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM claims %s ORDER BY discharge_date DESC, claim_id LIMIT $%d OFFSET $%d",
		clause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var claims []domain.Claim
	if err := r.db.SelectContext(ctx, &claims, query, args...); err != nil {
		return nil, 0, fmt.Errorf("claimRepo.List: %w", err)
	}
	return claims, total, nil
}

func (r *claimRepo) ListAll(ctx context.Context) ([]domain.Claim, error) {
	var claims []domain.Claim
	err := r.db.SelectContext(ctx, &claims,
		"SELECT * FROM claims ORDER BY discharge_date DESC, claim_id")
	if err != nil {
		return nil, fmt.Errorf("claimRepo.ListAll: %w", err)
	}
	return claims, nil
}

func (r *claimRepo) DistinctStatuses(ctx context.Context) ([]string, error) {
	var statuses []string
	err := r.db.SelectContext(ctx, &statuses,
		"SELECT DISTINCT status FROM claims ORDER BY status")
	if err != nil {
		return nil, fmt.Errorf("claimRepo.DistinctStatuses: %w", err)
	}
	return statuses, nil
}

func (r *claimRepo) DistinctInsurers(ctx context.Context) ([]string, error) {
	var insurers []string
	err := r.db.SelectContext(ctx, &insurers,
		"SELECT DISTINCT insurer_name FROM claims ORDER BY insurer_name")
	if err != nil {
		return nil, fmt.Errorf("claimRepo.DistinctInsurers: %w", err)
	}
	return insurers, nil
}

func (r *claimRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM claims"); err != nil {
		return fmt.Errorf("claimRepo.DeleteAll: %w", err)
	}
	return nil
}
