package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const claimStatsQuery = `SELECT
	COUNT(*) AS total_claims,
	COALESCE(SUM(billed_amount), 0) AS total_billed,
	COALESCE(SUM(paid_amount), 0) AS total_paid,
	COALESCE(SUM(billed_amount - paid_amount), 0) AS total_underpayment,
	COUNT(CASE WHEN status = 'Denied' THEN 1 END) AS status_denied,
	COUNT(CASE WHEN status = 'Under Review' THEN 1 END) AS status_under_review,
	COUNT(CASE WHEN status = 'Paid' THEN 1 END) AS status_paid,
	COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS status_pending
FROM claims`

func (r *statsRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, claimStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats claims: %w", err)
	}

	var flagged int
	if err := r.db.GetContext(ctx, &flagged,
		"SELECT COUNT(DISTINCT claim_id) FROM flags"); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats flags: %w", err)
	}
	stats.FlaggedClaims = flagged

	return &stats, nil
}
