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

type flagRepo struct {
	db *sqlx.DB
}

// NewFlagRepo creates a new PostgreSQL-backed FlagRepository.
func NewFlagRepo(db *sqlx.DB) port.FlagRepository {
	return &flagRepo{db: db}
}

func (r *flagRepo) Create(ctx context.Context, flag *domain.Flag) error {
	flag.ID = uuid.New()
	flag.CreatedAt = time.Now().UTC()

	query := `INSERT INTO flags (id, claim_id, user_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		flag.ID, flag.ClaimID, flag.UserID, flag.Reason, flag.CreatedAt)
	if err != nil {
		return fmt.Errorf("flagRepo.Create: %w", err)
	}
	return nil
}

func (r *flagRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flag, error) {
	var flag domain.Flag
	err := r.db.GetContext(ctx, &flag, "SELECT * FROM flags WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("flagRepo.GetByID: %w", err)
	}
	return &flag, nil
}

func (r *flagRepo) ListByClaim(ctx context.Context, claimID uuid.UUID) ([]domain.Flag, error) {
	var flags []domain.Flag
	err := r.db.SelectContext(ctx, &flags,
		"SELECT * FROM flags WHERE claim_id = $1 ORDER BY created_at DESC", claimID)
	if err != nil {
		return nil, fmt.Errorf("flagRepo.ListByClaim: %w", err)
	}
	return flags, nil
}

func (r *flagRepo) ListRecent(ctx context.Context, limit int) ([]domain.Flag, error) {
	var flags []domain.Flag
	err := r.db.SelectContext(ctx, &flags,
		"SELECT * FROM flags ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("flagRepo.ListRecent: %w", err)
	}
	return flags, nil
}

func (r *flagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM flags WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("flagRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *flagRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM flags"); err != nil {
		return fmt.Errorf("flagRepo.DeleteAll: %w", err)
	}
	return nil
}
